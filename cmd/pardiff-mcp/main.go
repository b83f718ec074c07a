package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gopatchy/pardiff"
	"github.com/gopatchy/pardiff/pkg/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var tests map[string]*pardiff.TestCase

func main() {
	var err error

	tests, err = pardiff.GetTests()
	if err != nil {
		log.Fatalf("Failed to load examples: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"pardiff-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	renderTool := mcp.NewTool("render",
		mcp.WithDescription("Render diff output as two side-by-side columns"),
		mcp.WithString("diff",
			mcp.Required(),
			mcp.Description("Output of diff (normal format) or diff -c (context format)"),
		),
		mcp.WithString("mode",
			mcp.Description("Input format: 'standard' (default) or 'context'"),
		),
		mcp.WithNumber("width",
			mcp.Description(fmt.Sprintf("Output width in columns, 1 to %d (default %d)", pardiff.MaxWidth, pardiff.DefaultWidth)),
		),
	)
	mcpServer.AddTool(renderTool, renderHandler)

	examplesTool := mcp.NewTool("examples",
		mcp.WithDescription("List example inputs with their descriptions, modes and widths"),
		mcp.WithString("filter",
			mcp.Description("Only list examples whose name contains this substring"),
		),
	)
	mcpServer.AddTool(examplesTool, examplesHandler)

	getExampleTool := mcp.NewTool("get_example",
		mcp.WithDescription("Get one example, including its expected output or errors"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the example, as listed by the examples tool"),
		),
	)
	mcpServer.AddTool(getExampleTool, getExampleHandler)

	versionTool := mcp.NewTool("version",
		mcp.WithDescription("Get version and build information for pardiff"),
	)
	mcpServer.AddTool(versionTool, versionHandler)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func renderHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diff, err := request.RequireString("diff")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("Invalid arguments format"), nil
	}

	mode, err := pardiff.ParseMode(parseOptionalString(args, "mode", "standard"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	width, err := parseOptionalWidth(args, "width", pardiff.DefaultWidth)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := &bytes.Buffer{}

	result, err := pardiff.Render(out, strings.NewReader(diff), pardiff.Options{Mode: mode, Width: width})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Render failed: %v", err)), nil
	}

	response := map[string]any{
		"output": out.String(),
		"mode":   result.Mode.String(),
		"width":  result.Width,
		"hunks":  result.Hunks,
	}

	if result.File1 != "" {
		response["file1"] = result.File1
	}

	if result.File2 != "" {
		response["file2"] = result.File2
	}

	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func examplesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := strings.ToLower(request.GetString("filter", ""))

	names := make([]string, 0, len(tests))
	for name, test := range tests {
		if len(test.Errors) > 0 {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	examples := make([]map[string]any, 0, len(names))
	for _, name := range names {
		test := tests[name]
		examples = append(examples, map[string]any{
			"name":        name,
			"description": test.Description,
			"mode":        test.Mode,
			"width":       test.Width,
			"input":       test.Input,
		})
	}

	resultJSON, err := json.MarshalIndent(map[string]any{
		"examples": examples,
		"count":    len(examples),
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func getExampleHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	test, exists := tests[name]
	if !exists {
		return mcp.NewToolResultError(fmt.Sprintf("Example '%s' not found", name)), nil
	}

	response := map[string]any{
		"name":        name,
		"description": test.Description,
		"mode":        test.Mode,
		"width":       test.Width,
		"input":       test.Input,
	}

	if len(test.Errors) > 0 {
		response["errors"] = test.Errors
	} else {
		response["expected"] = test.Expected
	}

	resultJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func versionHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bi := version.GetVersion()
	if bi == nil {
		return mcp.NewToolResultError("Failed to get build information"), nil
	}

	resultJSON, err := json.MarshalIndent(map[string]any{
		"version":   version.String(),
		"buildInfo": bi,
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func parseOptionalString(args map[string]any, key string, defaultValue string) string {
	if val := args[key]; val != nil {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}
	return defaultValue
}

func parseOptionalWidth(args map[string]any, key string, defaultValue int) (int, error) {
	switch v := args[key].(type) {
	case nil:
		return defaultValue, nil
	case float64:
		if v <= 0 || v > pardiff.MaxWidth || v != float64(int(v)) {
			return 0, fmt.Errorf("%s %v (must be an integer from 1 to %d): %w", key, v, pardiff.MaxWidth, pardiff.ErrInvalidWidth)
		}
		return int(v), nil
	case string:
		return pardiff.ParseWidth(v)
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, v)
	}
}
