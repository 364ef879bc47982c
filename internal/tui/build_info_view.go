// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-doc-chat/models"
)

const appTitle = "Doc Chat"

// renderHeader returns the title line with the build metadata, cut to width
// when the terminal is narrow.
func renderHeader(info models.AppBuildInfo, width int) string {
	meta := info.String()
	if width > 0 {
		meta = fitText(meta, width-len(appTitle)-2)
	}
	return titleStyle.Render(appTitle) + "  " + helpStyle.Render(meta)
}
