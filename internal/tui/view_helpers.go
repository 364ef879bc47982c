package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

const helpText = "enter: send  tab: switch field  pgup/pgdown: scroll  ctrl+y: copy answer  ctrl+c: quit"

// fitText shortens v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func divider(width int) string {
	if width <= 0 {
		return uiDivider
	}
	return strings.Repeat("─", width)
}
