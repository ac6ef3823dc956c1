package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/cliout"
)

// NewCommand creates a version command. outputFormat points at the global
// --output flag; nil means text output.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := cliout.FormatDefault
			if outputFormat != nil {
				parsed, err := cliout.ParseFormat(*outputFormat)
				if err != nil {
					return err
				}
				format = parsed
			}
			out := cliout.New(cmd.OutOrStdout(), format)

			if quiet && !out.IsJSON() {
				out.Plain("%s", info.Version)
				return nil
			}

			return out.Print(info, func() {
				out.Header(fmt.Sprintf("%s Version", info.Name))
				out.Label("Version", info.Version)
				out.Label("Build Date", info.BuildDate)
				out.Label("Git Commit", info.GitCommit)
				out.Label("Go", info.GoVersion)
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
