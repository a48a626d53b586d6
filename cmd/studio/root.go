package main

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/Fredasante/sanity-backend-bend-the-trendd/i18n"
	"github.com/Fredasante/sanity-backend-bend-the-trendd/internal/config"
)

// app carries the flags and the configuration shared by all commands.
type app struct {
	configFile string
	configDir  string
	verbose    bool
	jsonOut    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "studio",
		Short: "Validate and preview Bend-the-trendd documents",
		Long: `studio checks order and product documents against their type
definitions, renders the list previews editors see and exports the
definitions as JSON Schema.

Configuration is read from studio.yaml (see "studio config init") and can be
overridden with TRENDD_* environment variables.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: studio.yaml in --dir)")
	rootCmd.PersistentFlags().StringVar(&a.configDir, "dir", ".", "directory searched for studio.yaml")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "output as JSON")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newPreviewCmd(a),
		newDatasetCmd(a),
		newSchemaCmd(a),
		newNewCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Options{File: a.configFile, Dirs: []string{a.configDir}})
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger.SetLogLevel(cfg.LoggerLevel())
	if a.verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
	}
	i18n.SetLanguage(cfg.Language)

	if cfg.File != "" {
		logger.Verbose("using config", cfg.File)
	}
	return nil
}
