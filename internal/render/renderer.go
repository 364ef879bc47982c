// Package render turns markdown answers into terminal output.
//
// Every text goes through [Sanitize] first: escape sequences and raw HTML in a
// server answer never reach the terminal, while code and literal angle
// brackets are shown as written.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// AutoStyle picks a dark or light style from the terminal background.
const AutoStyle = "auto"

// Renderer converts markdown source into displayable text.
type Renderer interface {
	Render(markdown string) (string, error)
	// SetWidth changes the word wrap column, e.g. after a terminal resize.
	SetWidth(width int) error
}

type glamourRenderer struct {
	style string
	width int
	term  *glamour.TermRenderer
}

// NewGlamourRenderer returns a [Renderer] backed by glamour with the given
// standard style ("dark", "light", "notty", "ascii", ... or "auto").
// It is not safe for concurrent use; the UI renders from its event loop only.
func NewGlamourRenderer(style string, width int) (Renderer, error) {
	r := &glamourRenderer{style: style}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *glamourRenderer) SetWidth(width int) error {
	if width < 0 {
		width = 0
	}
	if r.term != nil && width == r.width {
		return nil
	}

	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == AutoStyle {
		styleOpt = glamour.WithAutoStyle()
	}

	term, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	r.term = term
	r.width = width
	return nil
}

func (r *glamourRenderer) Render(markdown string) (string, error) {
	out, err := r.term.Render(Sanitize(markdown))
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

type plainRenderer struct{}

// NewPlainRenderer returns a [Renderer] that only sanitises. It backs the UI
// when glamour cannot be configured.
func NewPlainRenderer() Renderer {
	return plainRenderer{}
}

func (plainRenderer) Render(markdown string) (string, error) {
	return Sanitize(markdown), nil
}

func (plainRenderer) SetWidth(int) error { return nil }

// New returns the glamour renderer for style, or the plain renderer together
// with the glamour error when style cannot be used.
func New(style string, width int) (Renderer, error) {
	r, err := NewGlamourRenderer(style, width)
	if err != nil {
		return NewPlainRenderer(), err
	}
	return r, nil
}
