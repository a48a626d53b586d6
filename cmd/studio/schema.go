package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/field"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/jsonschema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/validate"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the document type definitions",
	}
	cmd.AddCommand(newSchemaListCmd(a), newSchemaShowCmd(a), newSchemaExportCmd())
	return cmd
}

func newSchemaListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered document types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			docs := schema.All()
			if a.jsonOut {
				type entry struct {
					Name      string   `json:"name"`
					Title     string   `json:"title"`
					Fields    int      `json:"fields"`
					Orderings []string `json:"orderings"`
				}
				list := make([]entry, 0, len(docs))
				for _, d := range docs {
					list = append(list, entry{Name: d.Name, Title: d.Title, Fields: len(d.Fields), Orderings: orderingNames(d)})
				}
				return writeJSON(out, list)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tFIELDS\tORDERINGS")
			for _, d := range docs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", d.Name, d.Title, len(d.Fields), strings.Join(orderingNames(d), ", "))
			}
			return tw.Flush()
		},
	}
}

func orderingNames(d *schema.Document) []string {
	names := make([]string, 0, len(d.Orderings))
	for _, o := range d.Orderings {
		names = append(names, o.Name)
	}
	return names
}

func newSchemaShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <type>",
		Short: "Print the fields of a document type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.Lookup(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, jsonschema.FromDocument(doc))
			}
			fmt.Fprintf(out, "%s (%s)\n\n", doc.Title, doc.Name)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FIELD\tKIND\tCONSTRAINTS")
			showFields(tw, "", doc.Fields)
			return tw.Flush()
		},
	}
}

func showFields(w io.Writer, prefix string, fields []*field.Spec) {
	for _, fs := range fields {
		path := prefix + fs.Name
		constraints := validate.Describe(fs)
		switch {
		case fs.ReadOnly:
			constraints = joinNonEmpty(constraints, "read-only")
		case fs.WriteOnce:
			constraints = joinNonEmpty(constraints, "write-once")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", path, fs.Kind, constraints)
		if fs.Kind == field.KindObjectList {
			showFields(w, path+"[].", fs.Fields)
		} else if fs.Kind.HasFields() {
			showFields(w, path+".", fs.Fields)
		}
	}
}

func joinNonEmpty(a, b string) string {
	if a == "" {
		return b
	}
	return a + ", " + b
}

func newSchemaExportCmd() *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export <type>",
		Short: "Export a document type as JSON Schema",
		Example: `  studio schema export order
  studio schema export product --format yaml -o product.schema.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.Lookup(args[0])
			if err != nil {
				return err
			}
			s := jsonschema.FromDocument(doc)

			var b []byte
			switch format {
			case formatJSON:
				b, err = jsonschema.JSON(s)
				if err == nil {
					b = append(b, '\n')
				}
			case formatYAML:
				b, err = jsonschema.YAML(s)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatJSON, formatYAML)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of standard output")
	return cmd
}
