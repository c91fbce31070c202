// Package output renders command results for terminals, pipes and machines.
//
// In auto mode a terminal gets styled text and anything else gets markdown,
// so piped output stays readable in CI logs and chat tools.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
	ModeMarkdown OutputMode = "markdown"
)

// Mode converts a setting value to an OutputMode. Unknown or empty values
// mean auto.
func Mode(s string) OutputMode {
	switch m := OutputMode(strings.ToLower(s)); m {
	case ModeText, ModeJSON, ModeYAML, ModeMarkdown:
		return m
	case "md":
		return ModeMarkdown
	default:
		return ModeAuto
	}
}

// Renderer writes command output in one mode.
type Renderer struct {
	w      io.Writer
	errW   io.Writer
	isTTY  bool
	mode   OutputMode
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether w is a terminal.
// NO_COLOR disables styling even on a terminal.
func NewRenderer(w, errW io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	r := NewRendererWithTTY(w, errW, isTTY, mode)
	if termenv.EnvNoColor() {
		r.styles = NewStyles(false)
	}
	return r
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(w, errW io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return &Renderer{
		w:      w,
		errW:   errW,
		isTTY:  isTTY,
		mode:   mode,
		styles: NewStyles(isTTY),
	}
}

// EffectiveMode resolves auto mode against the TTY state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto && r.mode != "" {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Styles returns the styles for this renderer.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer { return r.w }

// Println writes a line.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.w, format, a...)
}

// Warnf writes a formatted message to the error stream.
func (r *Renderer) Warnf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.errW, format, a...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as YAML.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Structured writes v as JSON or YAML according to the effective mode and
// reports whether it did. Text and markdown are left to the caller.
func (r *Renderer) Structured(v any) (bool, error) {
	switch r.EffectiveMode() {
	case ModeJSON:
		return true, r.JSON(v)
	case ModeYAML:
		return true, r.YAML(v)
	default:
		return false, nil
	}
}
