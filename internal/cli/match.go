package cli

import (
	"fmt"

	"github.com/dshills/redactobj/internal/config"
	"github.com/spf13/cobra"
)

func (a *app) matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <key>...",
		Short: "Show which keys would be redacted",
		Long: "Check each key against the effective keywords and match options and print " +
			"\"redact\" or \"keep\" for it.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.buildOverrides(cmd.Flags()))
			if err != nil {
				return err
			}
			r := cfg.Redactor()
			out := cmd.OutOrStdout()

			var matched bool
			for _, key := range args {
				verdict := "keep"
				if r.Match(key) {
					verdict = "redact"
					matched = true
				}
				fmt.Fprintf(out, "%s\t%s\n", key, verdict)
			}
			if matched && a.flags.failOnMatch {
				a.exitCode = ExitMatch
			}
			return nil
		},
	}
	a.addMatchFlags(cmd)
	cmd.Flags().BoolVar(&a.flags.failOnMatch, "fail-on-match", false, "Exit with status 1 if any key would be redacted")
	return cmd
}
