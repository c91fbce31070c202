package commands

import (
	"github.com/spf13/cobra"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/lint"
	_ "github.com/RamilHin/my-linter/pkg/lint/rules" // register built-in rules
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [path]",
		Short: "List available lint rules",
		Long: `List every registered lint rule.

With a path, the severity configured for that file is shown next to each
rule. Rules the configuration never mentions do not run.`,
		Example: `  # List all rules
  mylint rules

  # Show which rules are enabled for a file
  mylint rules src/app.ts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cmdCtx *CommandContext
				cfg    *lint.EffectiveConfig
			)
			if len(args) == 1 {
				var err error
				cmdCtx, err = NewCommandContext(cmd)
				if err != nil {
					return err
				}
				path, err := cmdCtx.RelPath(args[0])
				if err != nil {
					return err
				}
				cfg = cmdCtx.Engine.GetEffectiveConfig(path)
			} else {
				cmdCtx = NewCommandContextWithoutEngine(cmd)
			}
			return renderRules(cmdCtx, lint.DefaultRegistry().Infos(cfg), cfg != nil)
		},
	}
}

func renderRules(cmdCtx *CommandContext, infos []core.RuleInfo, withConfig bool) error {
	r := cmdCtx.Renderer
	if ok, err := r.Structured(infos); ok {
		return err
	}

	header := []string{"Rule", "Description"}
	if withConfig {
		header = append(header, "Severity")
	}
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		row := []string{info.ID, info.Description}
		if withConfig {
			sev := core.SeverityOff
			if info.Configured != nil {
				sev = *info.Configured
			}
			row = append(row, r.Styles().Severity(sev).Render(sev.String()))
		}
		rows = append(rows, row)
	}
	r.Println(r.Styles().Header1.Render("Lint Rules"))
	r.Table(header, rows)
	return nil
}
