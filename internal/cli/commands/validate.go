package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file for errors",
		Long: `Load the configuration file and report the first error found: malformed
glob patterns, unknown severities, invalid naming selectors or unknown keys.
Errors name the block and field they come from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			store := cmdCtx.Store
			selectors := 0
			for _, b := range store.Blocks() {
				selectors += len(b.Naming)
			}

			r := cmdCtx.Renderer
			summary := validateSummary{
				Config:         store.Source(),
				Blocks:         len(store.Blocks()),
				IgnorePatterns: len(store.Ignore().Patterns()),
				Selectors:      selectors,
			}
			if ok, err := r.Structured(summary); ok {
				return err
			}
			r.Println(r.Styles().Success.Render("✓ " + store.Source() + " is valid"))
			r.Println(r.Styles().Muted.Render(fmt.Sprintf("%d blocks, %d ignore patterns, %d naming selectors",
				summary.Blocks, summary.IgnorePatterns, summary.Selectors)))
			return nil
		},
	}
}

type validateSummary struct {
	Config         string `json:"config" yaml:"config"`
	Blocks         int    `json:"blocks" yaml:"blocks"`
	IgnorePatterns int    `json:"ignorePatterns" yaml:"ignorePatterns"`
	Selectors      int    `json:"selectors" yaml:"selectors"`
}
