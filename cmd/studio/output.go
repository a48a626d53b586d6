package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/source"
)

// stdinArg names standard input in file arguments.
const stdinArg = "-"

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// readRecord decodes the JSON document in path. Duplicate keys are returned
// as violations.
func readRecord(cmd *cobra.Command, path string) (field.Record, issue.Violations, error) {
	in, err := openInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	rec, dups, err := source.Read(in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, dups, nil
}

// writeJSON indents after a compact Marshal; goccy's MarshalIndent
// multiplies the indentation of nested pointer structs such as
// jsonschema.Schema.
func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return fmt.Errorf("indent output: %w", err)
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func printViolations(w io.Writer, prefix string, vs issue.Violations) {
	for _, v := range vs {
		if v.Message != "" {
			fmt.Fprintf(w, "%s%s: %s\n", prefix, v, v.Message)
			continue
		}
		fmt.Fprintf(w, "%s%s\n", prefix, v)
	}
}
