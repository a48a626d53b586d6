package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	trendd "github.com/Fredasante/sanity-backend-bend-the-trendd"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/preview"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/source"
)

func newDatasetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Work with NDJSON dataset exports",
		Long: `Dataset commands read NDJSON exports, one document per line, as produced
by the hosted CMS export. Documents of types other than order and product
are skipped.`,
	}
	cmd.AddCommand(newDatasetValidateCmd(a), newDatasetListCmd(a))
	return cmd
}

func newDatasetValidateCmd(a *app) *cobra.Command {
	var flags validateFlags
	cmd := &cobra.Command{
		Use:   "validate <export.ndjson>",
		Short: "Validate every document of an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			rep, err := trendd.ValidateDataset(cmd.Context(), in, flags.options()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.jsonOut {
				if err := writeJSON(out, rep); err != nil {
					return err
				}
			} else {
				for _, l := range rep.Lines {
					prefix := fmt.Sprintf("%s:%d: ", args[0], l.Line)
					if l.Error != "" {
						fmt.Fprintf(out, "%s%s\n", prefix, l.Error)
						continue
					}
					if l.ID != "" {
						prefix += l.ID + ": "
					}
					printViolations(out, prefix, l.Violations)
				}
				fmt.Fprintf(out, "%d checked, %d invalid, %d skipped\n", rep.Checked, rep.Invalid, rep.Skipped)
			}
			if !rep.OK() {
				return errViolations
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.unknown, "unknown-keys", false, "report keys no field declares")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop at the first violation of each document")
	cmd.Flags().BoolVar(&flags.strict, "strict-slugs", false, "require lowercase dash-separated slugs")
	return cmd
}

func newDatasetListCmd(a *app) *cobra.Command {
	var (
		docType  string
		ordering string
	)
	cmd := &cobra.Command{
		Use:   "list <export.ndjson>",
		Short: "List the previews of the documents of an export",
		Long: `List prints the preview of every document of one type, sorted by one of
the type's named orderings.`,
		Example: `  studio dataset list export.ndjson --type order --order unpaid
  studio dataset list export.ndjson --type product`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := schema.Lookup(docType)
			if err != nil {
				return err
			}
			var sortBy *schema.Ordering
			if ordering != "" {
				o, ok := doc.Ordering(ordering)
				if !ok {
					return fmt.Errorf("%s has no ordering %q", doc.Name, ordering)
				}
				sortBy = &o
			}

			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			recs, err := source.ReadNDJSON(cmd.Context(), in, doc.Name)
			if err != nil {
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				logger.Verbose("dataset: undecodable lines skipped:", err)
			}
			if sortBy != nil {
				sortBy.Sort(recs)
			}

			p := a.cfg.Projector()
			sums := make([]preview.Summary, 0, len(recs))
			for _, rec := range recs {
				sums = append(sums, p.Project(doc, rec))
			}
			out := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(out, sums)
			}
			for _, s := range sums {
				printSummary(out, "", s)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&docType, "type", "t", schema.TypeOrder, "document type to list")
	cmd.Flags().StringVarP(&ordering, "order", "o", "", "named ordering, for example createdAtDesc")
	return cmd
}
