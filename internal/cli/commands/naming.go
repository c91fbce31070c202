package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/RamilHin/my-linter/pkg/lint/naming"
)

// NamingOptions holds options for the naming command.
type NamingOptions struct {
	Kind      string
	Modifiers []string
	Name      string
}

// namingResult is the structured form of a naming query.
type namingResult struct {
	Path       string             `json:"path" yaml:"path"`
	Kind       naming.Kind        `json:"kind" yaml:"kind"`
	Modifiers  naming.Modifiers   `json:"modifiers" yaml:"modifiers"`
	Constraint *naming.Constraint `json:"constraint" yaml:"constraint"`
	Name       string             `json:"name,omitempty" yaml:"name,omitempty"`
	Violations []naming.Violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

// NewNamingCommand creates the naming command.
func NewNamingCommand() *cobra.Command {
	opts := &NamingOptions{}
	cmd := &cobra.Command{
		Use:   "naming <path>",
		Short: "Show the naming constraint for a symbol",
		Long: `Resolve which naming selector applies to a symbol of the given kind and
modifiers in a file.

Among the selectors of every matching block, the one requiring the most
modifiers wins; ties go to the selector declared last. With --name the
name is checked against the constraint and the command fails on violations.`,
		Example: `  # Constraint for private static properties
  mylint naming src/app.ts --kind classProperty --modifiers private,static

  # Check a concrete name
  mylint naming src/app.ts --kind function --name do_work`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNaming(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "Symbol kind ("+strings.Join(naming.KindNames(), ", ")+")")
	cmd.Flags().StringSliceVarP(&opts.Modifiers, "modifiers", "m", nil, "Symbol modifiers, comma separated")
	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Name to check against the constraint")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return naming.KindNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runNaming(cmd *cobra.Command, target string, opts *NamingOptions) error {
	kind, err := naming.ParseKind(opts.Kind)
	if err != nil {
		return err
	}
	mods, err := naming.ParseModifiers(opts.Modifiers)
	if err != nil {
		return err
	}

	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	path, err := cmdCtx.RelPath(target)
	if err != nil {
		return err
	}

	res := namingResult{Path: path, Kind: kind, Modifiers: mods, Name: opts.Name}
	if c, ok := cmdCtx.Engine.GetNamingConstraint(path, kind, mods); ok {
		res.Constraint = c
		if opts.Name != "" {
			res.Violations = c.Check(opts.Name)
		}
	}

	r := cmdCtx.Renderer
	if ok, err := r.Structured(res); ok {
		if err != nil {
			return err
		}
		return namingExit(res)
	}

	styles := r.Styles()
	r.Printf("%s %s%s in %s\n", styles.Bold.Render("Naming"), kind, mods, path)
	if res.Constraint == nil {
		r.Println(styles.Muted.Render("No selector applies."))
		return nil
	}
	c := res.Constraint
	r.Table([]string{"Format", "Leading", "Trailing", "Selector", "Source"}, [][]string{{
		formatList(c.Format),
		c.LeadingUnderscore.String(),
		c.TrailingUnderscore.String(),
		c.Kind.String() + c.Modifiers.String(),
		c.Source.String(),
	}})

	if opts.Name != "" {
		if len(res.Violations) == 0 {
			r.Println(styles.Success.Render("✓ " + opts.Name + " satisfies the constraint"))
		}
		for _, v := range res.Violations {
			r.Println(styles.Error.Render("✗ " + v.Message))
		}
	}
	return namingExit(res)
}

func namingExit(res namingResult) error {
	if len(res.Violations) > 0 {
		return errViolations
	}
	return nil
}
