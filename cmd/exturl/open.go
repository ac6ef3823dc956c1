package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jongio/exturl/browser"
)

// launch is replaced in tests.
var launch = browser.Launch

func newOpenCmd(opts *rootOptions) *cobra.Command {
	var (
		target  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Normalize a URL and open it in the browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid browser target %q (valid: %s)", target, browser.FormatValidTargets())
			}
			canonical := opts.cfg.Normalize(args[0])
			if canonical == "" {
				return fmt.Errorf("cannot open %q: not a URL", args[0])
			}

			err := launch(cmd.Context(), browser.LaunchOptions{
				URL:     canonical,
				Target:  browser.Target(target),
				Timeout: timeout,
			})
			if err != nil {
				return err
			}

			out := opts.printer(cmd)
			return out.Print(normalizeResult{Input: args[0], URL: canonical}, func() {
				out.Success("opened %s", out.URL(canonical))
			})
		},
	}
	cmd.Flags().StringVar(&target, "target", string(browser.TargetDefault), "browser target: "+browser.FormatValidTargets())
	cmd.Flags().DurationVar(&timeout, "timeout", browser.DefaultTimeout, "launch timeout")
	return cmd
}
