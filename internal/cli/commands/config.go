package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RamilHin/my-linter/internal/cli/output"
	"github.com/RamilHin/my-linter/pkg/lint"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config <path>",
		Short: "Show the effective configuration for a file",
		Long: `Resolve and print the configuration that applies to a file.

Every block whose files patterns match the path is folded in order. Later
blocks replace a rule's severity and options; naming selectors accumulate.
Files matched by the global ignores resolve to an empty configuration.`,
		Example: `  # Show the rules for a source file
  mylint config src/app/main.ts

  # Output as JSON
  mylint config src/app/main.ts -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			path, err := cmdCtx.RelPath(args[0])
			if err != nil {
				return err
			}
			return renderEffectiveConfig(cmdCtx, cmdCtx.Engine.GetEffectiveConfig(path))
		},
	}
}

func renderEffectiveConfig(cmdCtx *CommandContext, cfg *lint.EffectiveConfig) error {
	r := cmdCtx.Renderer
	if ok, err := r.Structured(cfg); ok {
		return err
	}

	styles := r.Styles()
	r.Println(styles.Header1.Render("Effective config: " + cfg.Path))
	if cfg.Skipped {
		r.Println(styles.Muted.Render("File is globally ignored; no rules apply."))
		return nil
	}

	blocks := cmdCtx.Engine.Store().Blocks()
	labels := make([]string, 0, len(cfg.Blocks))
	for _, idx := range cfg.Blocks {
		labels = append(labels, blockLabel(blocks, idx))
	}
	if len(labels) == 0 {
		labels = append(labels, "(none)")
	}
	r.Printf("Matched blocks: %s\n\n", strings.Join(labels, ", "))

	r.Println(styles.Header2.Render("Rules"))
	r.Table([]string{"Rule", "Severity", "Options"}, ruleRows(r, cfg))

	if cfg.LanguageOptions != nil {
		r.Println()
		r.Println(styles.Header2.Render("Language options"))
		data, err := json.Marshal(cfg.LanguageOptions)
		if err != nil {
			return fmt.Errorf("failed to encode language options: %w", err)
		}
		r.Println(string(data))
	}

	if len(cfg.Naming) > 0 {
		r.Println()
		r.Println(styles.Header2.Render("Naming selectors"))
		rows := make([][]string, 0, len(cfg.Naming))
		for _, sel := range cfg.Naming {
			rows = append(rows, []string{
				sel.String(),
				formatList(sel.Format),
				sel.LeadingUnderscore.String(),
				sel.TrailingUnderscore.String(),
				sel.Position.String(),
			})
		}
		r.Table([]string{"Selector", "Format", "Leading", "Trailing", "Position"}, rows)
	}
	return nil
}

func ruleRows(r *output.Renderer, cfg *lint.EffectiveConfig) [][]string {
	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rs := cfg.Rules[id]
		opts := ""
		if len(rs.Options) > 0 {
			if data, err := json.Marshal(rs.Options); err == nil {
				opts = string(data)
			}
		}
		rows = append(rows, []string{id, r.Styles().Severity(rs.Severity).Render(rs.Severity.String()), opts})
	}
	return rows
}

func blockLabel(blocks []lint.Block, idx int) string {
	for i := range blocks {
		if blocks[i].Index == idx {
			return blocks[i].Label()
		}
	}
	return fmt.Sprintf("#%d", idx)
}

func formatList[T fmt.Stringer](items []T) string {
	if items == nil {
		return "any"
	}
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	return strings.Join(names, ", ")
}
