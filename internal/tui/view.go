package tui

import (
	"strings"
)

func (m Model) View() string {
	inner := 0
	if m.width > 0 {
		inner = max(m.width-appStyle.GetHorizontalFrameSize(), minContentWidth)
	}

	var b strings.Builder

	b.WriteString(renderHeader(m.buildInfo, inner))
	b.WriteString("\n")
	b.WriteString(divider(inner))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Documents"))
	b.WriteString("\n")
	b.WriteString(m.filesInput.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	b.WriteString(transcriptStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Question"))
	b.WriteString("\n")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	b.WriteString(noticeStyle.Render(m.notice))

	return appStyle.Render(b.String())
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}

	line := statusStyles[m.statusKind].Render(m.status)
	if m.busy() {
		line = m.spinner.View() + " " + line
	}
	return line
}
