// Command lexscan prints the tokens of a source file.
//
// Usage:
//
//	lexscan scan [--dialect literals|keywords] [--retain-whitespace] [--skip-errors] FILE
//	lexscan version [--json]
package main

import (
	"github.com/orizon-lang/lexscan/internal/cli"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cli.ExitWithError("%v", err)
	}
}
