//go:build mage

// Package main provides build targets for the studio tool using Mage.
//
// Usage:
//
//	mage build      Compile the studio binary to bin/
//	mage test       Run all tests
//	mage cover      Run tests with a coverage profile
//	mage lint       Run golangci-lint
//	mage schemas    Export the JSON Schemas of every document type to schemas/
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "studio"
	binaryDir  = "bin"
	cmdDir     = "./cmd/studio"
	schemaDir  = "schemas"
	coverFile  = "coverage.out"
)

var documentTypes = []string{"order", "product"}

func ldflags() string {
	ver, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || ver == "" {
		ver = "dev"
	}
	return "-X main.version=" + ver
}

// Build compiles the studio binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests and writes a coverage profile.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile="+coverFile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+coverFile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Schemas exports every document type as JSON Schema.
func Schemas() error {
	mg.Deps(Build)
	if err := os.MkdirAll(schemaDir, 0o755); err != nil {
		return err
	}
	bin := filepath.Join(binaryDir, binaryName)
	for _, t := range documentTypes {
		out := filepath.Join(schemaDir, t+".schema.json")
		if err := sh.RunV(bin, "schema", "export", t, "-o", out); err != nil {
			return fmt.Errorf("export %s: %w", t, err)
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverFile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return nil
}
