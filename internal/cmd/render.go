package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dirStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

const dirIcon = "📁"

// fileIcons maps lowercased extensions to a display icon.
var fileIcons = map[string]string{
	".py": "🐍", ".js": "🟨", ".html": "🌐", ".css": "🎨",
	".json": "📋", ".xml": "📄", ".txt": "📝", ".md": "📖",
	".jpg": "🖼️", ".png": "🖼️", ".gif": "🖼️", ".svg": "🖼️",
	".mp4": "🎬", ".mp3": "🎵", ".wav": "🎵", ".avi": "🎬",
	".pdf": "📕", ".doc": "📘", ".docx": "📘", ".xls": "📗",
	".zip": "📦", ".rar": "📦", ".7z": "📦", ".tar": "📦",
	".go": "🐹", ".sh": "⚙️", ".exe": "⚙️", ".deb": "⚙️",
}

func fileIcon(ext string) string {
	if icon, ok := fileIcons[ext]; ok {
		return icon
	}
	return "📄"
}

// formatSize converts bytes to a human-readable string.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)
	switch {
	case bytes >= TB:
		return fmt.Sprintf("%.1f TB", float64(bytes)/float64(TB))
	case bytes >= GB:
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// newTable returns a bordered table with the shared header styling.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// panel renders content inside a rounded border with a title line above it.
func panel(title, content string) string {
	return titleStyle.Render(title) + "\n" + panelStyle.Render(content)
}
