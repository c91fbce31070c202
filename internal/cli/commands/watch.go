package commands

import (
	"github.com/spf13/cobra"

	"github.com/RamilHin/my-linter/internal/watch"
	"github.com/RamilHin/my-linter/pkg/lint"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Reload the configuration whenever it changes",
		Long: `Watch the configuration file and reload it on every change.

A reload that fails is reported and the previous configuration stays in
effect. With a path, its effective configuration is printed after each
successful reload. Stop with Ctrl+C.`,
		Example: `  # Report reloads
  mylint watch

  # Follow the effective config of one file
  mylint watch src/app.ts`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				if path, err = cmdCtx.RelPath(args[0]); err != nil {
					return err
				}
			}

			r := cmdCtx.Renderer
			styles := r.Styles()
			load := func() (*lint.Store, error) {
				return loadStore(cmdCtx.Settings, cmdCtx.Logger)
			}
			w := watch.New(cmdCtx.Settings.Config, cmdCtx.Engine, load,
				watch.WithLogger(cmdCtx.Logger),
				watch.WithOnReload(func(store *lint.Store, err error) {
					if err != nil {
						r.Warnf("reload failed, keeping version %d: %v\n", cmdCtx.Engine.Version(), err)
						return
					}
					r.Println(styles.Success.Render("✓ config reloaded") +
						styles.Muted.Render(" (version "+formatVersion(store.Version())+")"))
					if path != "" {
						if err := renderEffectiveConfig(cmdCtx, cmdCtx.Engine.GetEffectiveConfig(path)); err != nil {
							cmdCtx.Logger.Error("failed to render config", "error", err)
						}
					}
				}))

			r.Println(styles.Info.Render("Watching " + cmdCtx.Settings.Config + " (version " +
				formatVersion(cmdCtx.Engine.Version()) + ")"))
			if path != "" {
				if err := renderEffectiveConfig(cmdCtx, cmdCtx.Engine.GetEffectiveConfig(path)); err != nil {
					return err
				}
			}
			return w.Run(cmd.Context())
		},
	}
}
