package main

import "github.com/gopatchy/pardiff/pkg/wrapper"

func main() {
	wrapper.WrapOrDie("diff")
}
