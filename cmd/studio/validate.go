package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/issue"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

type validateFlags struct {
	prev      string
	unknown   bool
	failFast  bool
	allowDups bool
	strict    bool
}

func (f validateFlags) options() []validate.Option {
	var opts []validate.Option
	if f.failFast {
		opts = append(opts, validate.FailFast())
	}
	if f.unknown {
		opts = append(opts, validate.WithUnknown(validate.UnknownReport))
	}
	if f.strict {
		opts = append(opts, validate.StrictSlugs())
	}
	return opts
}

func newValidateCmd(a *app) *cobra.Command {
	var flags validateFlags
	cmd := &cobra.Command{
		Use:   "validate <type> <file>",
		Short: "Validate a JSON document",
		Long: `Validate checks one JSON document against a document type and prints
every violation. Use "-" to read the document from standard input.

With --prev the document is checked as an update of the stored version:
read-only fields must be unchanged and write-once fields frozen once set.

The exit code is 1 when violations are found.`,
		Example: `  studio validate order order.json
  studio validate product - < product.json
  studio validate order next.json --prev stored.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, args[0], args[1], flags)
		},
	}
	cmd.Flags().StringVar(&flags.prev, "prev", "", "stored version of the document")
	cmd.Flags().BoolVar(&flags.unknown, "unknown-keys", false, "report keys no field declares")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop at the first violation")
	cmd.Flags().BoolVar(&flags.strict, "strict-slugs", false, "require lowercase dash-separated slugs")
	cmd.Flags().BoolVar(&flags.allowDups, "allow-duplicate-keys", false, "accept repeated object keys")
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, docType, path string, flags validateFlags) error {
	doc, err := schema.Lookup(docType)
	if err != nil {
		return err
	}
	rec, vs, err := readRecord(cmd, path)
	if err != nil {
		return err
	}
	if flags.allowDups {
		vs = nil
	}

	if flags.prev != "" {
		prev, _, err := readRecord(cmd, flags.prev)
		if err != nil {
			return err
		}
		vs = issue.Append(vs, validate.Update(doc, prev, rec, flags.options()...)...)
	} else {
		vs = issue.Append(vs, validate.Record(doc, rec, flags.options()...)...)
	}

	out := cmd.OutOrStdout()
	if a.jsonOut {
		if err := writeJSON(out, map[string]any{"type": doc.Name, "valid": vs.OK(), "issues": vs}); err != nil {
			return err
		}
	} else if vs.OK() {
		fmt.Fprintf(out, "%s: valid %s\n", path, doc.Name)
	} else {
		printViolations(out, path+": ", vs)
	}
	if !vs.OK() {
		return errViolations
	}
	return nil
}
