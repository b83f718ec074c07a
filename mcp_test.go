package pardiff_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/gopatchy/pardiff"
	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"
	"github.com/stretchr/testify/require"
)

func startMCP(t *testing.T) (context.Context, *mcp.Client) {
	t.Helper()

	cmd := exec.Command("go", "run", "./cmd/pardiff-mcp/")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("Failed to get stdin pipe: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatalf("Failed to get stdout pipe: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.Fatalf("Failed to get stderr pipe: %v", err)
	}

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	done := make(chan struct{})
	t.Cleanup(func() {
		cmd.Process.Kill()
		cmd.Wait()
		<-done
	})

	go func() {
		defer close(done)

		buf := make([]byte, 1024)
		for {
			n, err := stderr.Read(buf)
			if err != nil {
				return
			}
			if n > 0 {
				t.Logf("pardiff-mcp stderr: %s", buf[:n])
			}
		}
	}()

	transport := stdio.NewStdioServerTransportWithIO(stdout, stdin)
	client := mcp.NewClient(transport)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)

	if _, err := client.Initialize(ctx); err != nil {
		t.Fatalf("Failed to initialize MCP client: %v", err)
	}

	return ctx, client
}

func callTool(ctx context.Context, client *mcp.Client, name string, args map[string]any) (map[string]any, error) {
	result, err := client.CallTool(ctx, name, args)
	if err != nil {
		return nil, err
	}

	for _, content := range result.Content {
		if content.Type != "text" || content.TextContent == nil {
			continue
		}

		text := content.TextContent.Text

		var response map[string]any
		if err := json.Unmarshal([]byte(text), &response); err != nil {
			// Tool errors come back as plain text.
			return nil, fmt.Errorf("%s", text)
		}

		return response, nil
	}

	return nil, fmt.Errorf("no text content in tool response")
}

func TestMCP(t *testing.T) {
	tests, filterTests, excludeTests := getFilteredTests(t)
	ctx, client := startMCP(t)

	for testName, testCase := range tests {
		if skipTest(testName, filterTests, excludeTests) {
			continue
		}

		t.Run(testName, func(t *testing.T) {
			response, err := callTool(ctx, client, "render", map[string]any{
				"diff":  testCase.Input,
				"mode":  testCase.Mode,
				"width": testCase.Width,
			})

			if len(testCase.Errors) > 0 {
				checkErrors(t, testCase.Errors, err, "")
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.Expected, response["output"])
			require.Equal(t, testCase.Mode, response["mode"])
			require.InDelta(t, testCase.Width, response["width"], 0)
		})
	}
}

func TestMCPTools(t *testing.T) {
	ctx, client := startMCP(t)

	tests, err := pardiff.GetTests()
	require.NoError(t, err)

	response, err := callTool(ctx, client, "render", map[string]any{
		"diff": tests["context-two-hunks"].Input,
		"mode": "context",
	})
	require.NoError(t, err)
	require.Equal(t, "a.txt", response["file1"])
	require.Equal(t, "b.txt", response["file2"])
	require.InDelta(t, pardiff.DefaultWidth, response["width"], 0)
	require.InDelta(t, 2, response["hunks"], 0)

	_, err = callTool(ctx, client, "render", map[string]any{
		"diff": deleteDiff,
		"mode": "unified",
	})
	require.ErrorContains(t, err, "unknown mode")

	for _, width := range []any{0, 2.5, 1e12, pardiff.MaxWidth + 1} {
		_, err = callTool(ctx, client, "render", map[string]any{
			"diff":  deleteDiff,
			"width": width,
		})
		require.ErrorContains(t, err, "invalid width", width)
	}

	response, err = callTool(ctx, client, "render", map[string]any{
		"diff":  deleteDiff,
		"width": pardiff.MaxWidth,
	})
	require.NoError(t, err)
	require.InDelta(t, pardiff.MaxWidth, response["width"], 0)

	response, err = callTool(ctx, client, "examples", map[string]any{})
	require.NoError(t, err)

	examples, ok := response["examples"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, examples)

	names := []string{}
	for _, ex := range examples {
		names = append(names, ex.(map[string]any)["name"].(string))
	}
	require.Contains(t, names, "standard-delete")
	require.NotContains(t, names, "context-empty")

	response, err = callTool(ctx, client, "examples", map[string]any{"filter": "CONTEXT-"})
	require.NoError(t, err)
	for _, ex := range response["examples"].([]any) {
		require.True(t, strings.HasPrefix(ex.(map[string]any)["name"].(string), "context-"))
	}

	response, err = callTool(ctx, client, "get_example", map[string]any{"name": "context-bad-header"})
	require.NoError(t, err)
	require.Equal(t, []any{"bad file header"}, response["errors"])

	_, err = callTool(ctx, client, "get_example", map[string]any{"name": "no-such-example"})
	require.ErrorContains(t, err, "not found")

	response, err = callTool(ctx, client, "version", map[string]any{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(response["version"].(string), "pardiff "))
}
