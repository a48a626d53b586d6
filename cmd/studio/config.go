package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/internal/config"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/schema"
)

// resolved is the printable form of config.Config.
type resolved struct {
	File     string        `json:"file,omitempty" yaml:"file,omitempty"`
	Studio   schema.Studio `json:"studio" yaml:"studio"`
	Currency string        `json:"currency" yaml:"currency"`
	Timezone string        `json:"timezone" yaml:"timezone"`
	Language string        `json:"language" yaml:"language"`
	LogLevel string        `json:"logLevel" yaml:"logLevel"`
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the studio configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.cfg
			r := resolved{
				File:     c.File,
				Studio:   c.Studio,
				Currency: c.Currency,
				Timezone: c.Location.String(),
				Language: c.Language,
				LogLevel: c.LogLevel,
			}
			if a.jsonOut {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			b, err := yaml.Marshal(r)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}, &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default studio.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.configDir
			if len(args) == 1 {
				dir = args[0]
			}
			path, written, err := config.WriteDefault(dir)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintln(cmd.OutOrStdout(), path, "already exists")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "created", path)
			return nil
		},
	})
	return cmd
}
