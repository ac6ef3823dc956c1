package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/exturl/cliout"
	"github.com/jongio/exturl/fieldconfig"
	"github.com/jongio/exturl/logutil"
)

// MetadataSchemaVersion is the version of the metadata document.
const MetadataSchemaVersion = "1.0"

// cliMetadata describes the command tree and the environment it reads.
type cliMetadata struct {
	SchemaVersion string            `json:"schemaVersion"`
	Name          string            `json:"name"`
	Commands      []commandMetadata `json:"commands"`
	Environment   []envMetadata     `json:"environment"`
}

type commandMetadata struct {
	Name        []string          `json:"name"`
	Short       string            `json:"short"`
	Usage       string            `json:"usage,omitempty"`
	Flags       []flagMetadata    `json:"flags,omitempty"`
	Subcommands []commandMetadata `json:"subcommands,omitempty"`
}

type flagMetadata struct {
	Name      string `json:"name"`
	Shorthand string `json:"shorthand,omitempty"`
	Usage     string `json:"usage"`
	Type      string `json:"type"`
	Default   string `json:"default,omitempty"`
}

type envMetadata struct {
	Name    string `json:"name"`
	Usage   string `json:"usage"`
	Default string `json:"default,omitempty"`
}

// environment lists every variable the CLI and its packages read.
var environment = []envMetadata{
	{Name: EnvConfigFile, Usage: "configuration file used when --config is not given"},
	{Name: fieldconfig.EnvDefaultScheme, Usage: "default scheme added to URLs without one", Default: "https"},
	{Name: fieldconfig.EnvRemoveParts, Usage: "comma separated components to strip"},
	{Name: fieldconfig.EnvHTML5Validation, Usage: "emit type=url and pattern attributes", Default: "true"},
	{Name: EnvStoreBackend, Usage: "default store backend", Default: "file"},
	{Name: EnvStoreDSN, Usage: "redis address or postgres connection string"},
	{Name: EnvStoreDir, Usage: "directory of the file backend"},
	{Name: logutil.EnvDebug, Usage: "enable debug logging", Default: "false"},
	{Name: logutil.EnvLevel, Usage: "minimum log level: debug, info, warn, error", Default: "info"},
}

func newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "metadata",
		Short:  "Print the command tree as JSON",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			meta := cliMetadata{
				SchemaVersion: MetadataSchemaVersion,
				Name:          root.Name(),
				Commands:      describeChildren(root),
				Environment:   environment,
			}
			// Always JSON, whatever --output says.
			return cliout.New(cmd.OutOrStdout(), cliout.FormatJSON).JSON(meta)
		},
	}
}

func describeChildren(cmd *cobra.Command) []commandMetadata {
	var out []commandMetadata
	for _, child := range cmd.Commands() {
		if child.Hidden || child.Name() == "help" || child.Name() == "completion" {
			continue
		}
		out = append(out, describeCommand(child))
	}
	return out
}

func describeCommand(cmd *cobra.Command) commandMetadata {
	meta := commandMetadata{
		Name:  commandPath(cmd),
		Short: cmd.Short,
		Usage: cmd.UseLine(),
	}
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		meta.Flags = append(meta.Flags, flagMetadata{
			Name:      f.Name,
			Shorthand: f.Shorthand,
			Usage:     f.Usage,
			Type:      f.Value.Type(),
			Default:   f.DefValue,
		})
	})
	meta.Subcommands = describeChildren(cmd)
	return meta
}

// commandPath returns the names from below the root down to cmd.
func commandPath(cmd *cobra.Command) []string {
	if !cmd.HasParent() || !cmd.Parent().HasParent() {
		return []string{cmd.Name()}
	}
	return append(commandPath(cmd.Parent()), cmd.Name())
}
