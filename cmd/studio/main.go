// Command studio checks and previews Bend-the-trendd documents from the
// command line: single JSON documents, NDJSON dataset exports and the
// document type definitions themselves.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	exitOK         = 0
	exitViolations = 1
	exitFailure    = 2
)

// errViolations is returned by commands that found invalid documents. The
// violations themselves have already been printed.
var errViolations = errors.New("documents are not valid")

func main() {
	os.Exit(execRootCmd(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execRootCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errViolations) {
			return exitViolations
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitFailure
	}
	return exitOK
}
