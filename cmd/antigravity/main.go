// Package main is the entry point for the antigravity CLI
package main

import (
	"github.com/antigravity-core/antigravity/internal/cli"
)

func main() {
	cli.Execute()
}
