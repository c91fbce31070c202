package commands

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RamilHin/my-linter/pkg/core"
	"github.com/RamilHin/my-linter/pkg/lint"
)

// FilesOptions holds options for the files command.
type FilesOptions struct {
	ShowIgnored bool
}

// fileSummary is one row of the files command output.
type fileSummary struct {
	Path    string `json:"path" yaml:"path"`
	Skipped bool   `json:"skipped" yaml:"skipped"`
	Blocks  []int  `json:"blocks" yaml:"blocks"`
	Warn    int    `json:"warn" yaml:"warn"`
	Error   int    `json:"error" yaml:"error"`
	Naming  int    `json:"naming" yaml:"naming"`
}

// NewFilesCommand creates the files command.
func NewFilesCommand() *cobra.Command {
	opts := &FilesOptions{}
	cmd := &cobra.Command{
		Use:   "files [paths...]",
		Short: "Summarize the configuration of many files",
		Long: `Walk the given files and directories and resolve every file's effective
configuration in parallel.

Directories matched by the global ignores are not descended into unless
--show-ignored is set. The --workers flag bounds the number of concurrent
resolutions.`,
		Example: `  # Summarize the whole project
  mylint files

  # Only the src tree, including ignored files
  mylint files src --show-ignored`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runFiles(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ShowIgnored, "show-ignored", false, "Include globally ignored files and descend into ignored directories")
	return cmd
}

func runFiles(cmd *cobra.Command, targets []string, opts *FilesOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	paths, err := collectFiles(cmd, cmdCtx, targets, opts.ShowIgnored)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("resolving files", "count", len(paths), "workers", cmdCtx.Settings.Workers)

	configs, err := cmdCtx.Engine.ResolveAll(cmd.Context(), paths, cmdCtx.Settings.Workers)
	if err != nil {
		return err
	}

	summaries := make([]fileSummary, 0, len(configs))
	ignored := 0
	for _, cfg := range configs {
		if cfg.Skipped {
			ignored++
			if !opts.ShowIgnored {
				continue
			}
		}
		summaries = append(summaries, summarize(cfg))
	}

	r := cmdCtx.Renderer
	if ok, err := r.Structured(summaries); ok {
		return err
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		status := "active"
		if s.Skipped {
			status = "ignored"
		}
		rows = append(rows, []string{
			s.Path,
			status,
			formatInts(s.Blocks),
			strconv.Itoa(s.Error),
			strconv.Itoa(s.Warn),
			strconv.Itoa(s.Naming),
		})
	}
	r.Table([]string{"Path", "Status", "Blocks", "Error", "Warn", "Naming"}, rows)
	r.Println(r.Styles().Muted.Render(
		strconv.Itoa(len(configs)) + " files, " + strconv.Itoa(ignored) + " ignored"))
	return nil
}

func summarize(cfg *lint.EffectiveConfig) fileSummary {
	s := fileSummary{Path: cfg.Path, Skipped: cfg.Skipped, Blocks: cfg.Blocks, Naming: len(cfg.Naming)}
	for _, rs := range cfg.Rules {
		switch rs.Severity {
		case core.SeverityError:
			s.Error++
		case core.SeverityWarn:
			s.Warn++
		}
	}
	return s
}

// collectFiles walks every target concurrently and returns the sorted,
// de-duplicated project-relative file paths. Ignored directories are
// skipped unless withIgnored is set.
func collectFiles(cmd *cobra.Command, cmdCtx *CommandContext, targets []string, withIgnored bool) ([]string, error) {
	filter := cmdCtx.Engine.Store().Ignore()

	var (
		mu    sync.Mutex
		paths []string
	)
	add := func(p string) {
		mu.Lock()
		paths = append(paths, p)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, target := range targets {
		g.Go(func() error {
			info, err := os.Stat(target)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				rel, err := cmdCtx.RelPath(target)
				if err != nil {
					return err
				}
				add(rel)
				return nil
			}
			return filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				rel, err := cmdCtx.RelPath(p)
				if err != nil {
					return err
				}
				if d.IsDir() {
					if !withIgnored && rel != "." && filter.IsIgnored(rel) {
						return filepath.SkipDir
					}
					return nil
				}
				add(rel)
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(paths)
	return slices.Compact(paths), nil
}

func formatVersion(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatInts(ns []int) string {
	if len(ns) == 0 {
		return "-"
	}
	out := ""
	for i, n := range ns {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(n)
	}
	return out
}
