// Package main provides the stencil CLI entry point.
package main

import (
	"os"

	"github.com/stencil-labs/stencil/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
