package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/cliout"
	"github.com/jongio/exturl/fieldconfig"
	"github.com/jongio/exturl/logutil"
	"github.com/jongio/exturl/version"
)

// EnvConfigFile names a configuration file used when --config is not given.
const EnvConfigFile = "EXTURL_CONFIG"

// rootOptions holds the global flags and the state derived from them.
type rootOptions struct {
	configPath string
	output     string
	debug      bool
	logJSON    bool

	cfg    *fieldconfig.Config
	format cliout.Format
}

// printer returns a Printer for the command's stdout.
func (o *rootOptions) printer(cmd *cobra.Command) *cliout.Printer {
	return cliout.New(cmd.OutOrStdout(), o.format)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "exturl",
		Short: "Normalize, validate and store external URLs",
		Long: `exturl works with external URL values the way a URL form field does:
values are given a default scheme, stripped of configured parts such as
credentials, and saved without trailing slashes.

Configuration is read from --config (or $EXTURL_CONFIG), a YAML file with
the keys defaultparts, removeparts, html5validation and validregex, and can be
overridden with EXTURL_DEFAULT_SCHEME, EXTURL_REMOVE_PARTS and
EXTURL_HTML5_VALIDATION.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "configuration file (YAML)")
	flags.StringVarP(&opts.output, "output", "o", "default", "output format: default, json")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")

	cmd.AddCommand(
		newNormalizeCmd(opts),
		newValidateCmd(opts),
		newInspectCmd(opts),
		newAttrsCmd(opts),
		newOpenCmd(opts),
		newStoreCmd(opts),
		newMCPCmd(opts),
		newMetricsCmd(opts),
		newMetadataCmd(),
		version.NewCommand(version.New("exturl"), &opts.output),
	)
	return cmd
}

// setup configures logging, output and the field configuration.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), o.debug, o.logJSON)

	format, err := cliout.ParseFormat(o.output)
	if err != nil {
		return err
	}
	o.format = format

	path := o.configPath
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	cfg := fieldconfig.Default()
	if path != "" {
		cfg, err = fieldconfig.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		logutil.Debug("loaded configuration", "path", path)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	o.cfg = cfg
	return nil
}
