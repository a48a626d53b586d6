package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/codec"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

func newNewCmd(a *app) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "new <type>",
		Short: "Print a new document with its initial values",
		Long: `New prints a fresh document of the given type: a generated _id, the
_type, and every initial value (defaults, creation time, order number).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, ok := codec.ParseDateTime(at)
				if !ok {
					return fmt.Errorf("--at: %q is not an RFC3339 date-time", at)
				}
				now = t
			}
			rec, err := schema.NewDocument(args[0], now.In(a.cfg.Location))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "creation time (RFC3339), default now")
	return cmd
}
