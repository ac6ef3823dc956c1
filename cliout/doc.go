// Package cliout formats command output as styled text or JSON.
//
// A Printer writes to one io.Writer in one Format. Styling uses ANSI colors
// only when the writer is a terminal and NO_COLOR is unset, so output piped
// into files or other programs stays plain:
//
//	out := cliout.New(cmd.OutOrStdout(), cliout.FormatDefault)
//	out.Success("saved %s", key)
//	out.Label("domain", views.Domain)
//
// In JSON mode the decorative helpers write nothing and Print encodes the
// data value instead of calling the text formatter:
//
//	err := out.Print(views, func() {
//	    out.Label("url", views.URL)
//	})
package cliout
