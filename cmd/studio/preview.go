package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/preview"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

func newPreviewCmd(a *app) *cobra.Command {
	var items bool
	cmd := &cobra.Command{
		Use:   "preview <type> <file>",
		Short: "Render the list preview of a JSON document",
		Long: `Preview prints the title and subtitle editors see for a document in
studio lists. Amounts use the configured currency and dates the configured
time zone. Use "-" to read the document from standard input.`,
		Example: `  studio preview order order.json
  studio preview order order.json --items`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.Lookup(args[0])
			if err != nil {
				return err
			}
			rec, _, err := readRecord(cmd, args[1])
			if err != nil {
				return err
			}
			p := a.cfg.Projector()
			sum := p.Project(doc, rec)
			var lines []preview.Summary
			if items && doc.Name == schema.TypeOrder {
				lines = p.Items(rec)
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				if lines == nil {
					return writeJSON(out, sum)
				}
				return writeJSON(out, map[string]any{"summary": sum, "items": lines})
			}
			printSummary(out, "", sum)
			for _, it := range lines {
				printSummary(out, "  ", it)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&items, "items", false, "also preview the line items of an order")
	return cmd
}

func printSummary(w io.Writer, indent string, s preview.Summary) {
	fmt.Fprintf(w, "%s%s\n", indent, s.Title)
	if s.Subtitle != "" {
		fmt.Fprintf(w, "%s  %s\n", indent, s.Subtitle)
	}
}
