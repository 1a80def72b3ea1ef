package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/accommodate/internal/profiles"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

type rowKind int

const (
	choiceRow rowKind = iota
	toggleRow
	profileRow
)

// row is one button of the settings panel. Choice rows select a single enum
// value and follow the re-select-returns-to-default rule.
type row struct {
	section string
	path    string
	value   string
	kind    rowKind
}

var selectors = map[string]func(*settings.Store, string){
	"colors.contrast":        func(s *settings.Store, v string) { s.SelectContrast(settings.Contrast(v)) },
	"colors.saturation":      func(s *settings.Store, v string) { s.SelectSaturation(settings.Saturation(v)) },
	"content.alignment":      func(s *settings.Store, v string) { s.SelectAlignment(settings.Alignment(v)) },
	"content.contentScaling": func(s *settings.Store, v string) { s.SelectContentScaling(settings.Scaling(v)) },
	"orientation.cursor":     func(s *settings.Store, v string) { s.SelectCursor(settings.Cursor(v)) },
}

func choices(section, path string, values ...string) []row {
	out := make([]row, 0, len(values))
	for _, v := range values {
		out = append(out, row{section: section, path: path, value: v, kind: choiceRow})
	}
	return out
}

func toggles(section string, paths ...string) []row {
	out := make([]row, 0, len(paths))
	for _, p := range paths {
		out = append(out, row{section: section, path: p, kind: toggleRow})
	}
	return out
}

func buildRows() []row {
	var rows []row
	rows = append(rows, choices("colors", "colors.contrast", "dark", "light", "high")...)
	rows = append(rows, choices("colors", "colors.saturation", "low", "high")...)
	rows = append(rows, toggles("colors", "colors.monochrome")...)

	rows = append(rows, choices("content", "content.alignment", "left", "center", "right")...)
	rows = append(rows, choices("content", "content.contentScaling", "large", "larger")...)
	rows = append(rows, toggles("content",
		"content.highlightHover", "content.highlightLinks", "content.highlightTitles", "content.readableFont")...)

	rows = append(rows, toggles("orientation",
		"orientation.muteSounds", "orientation.hideImages", "orientation.readMode")...)
	rows = append(rows, choices("orientation", "orientation.cursor", "black", "white")...)
	rows = append(rows, toggles("orientation", "orientation.stopAnimations")...)

	for _, name := range profiles.Names() {
		rows = append(rows, row{section: "profiles", path: "profiles." + name, value: name, kind: profileRow})
	}
	return rows
}

// active reports whether the row's option is currently in effect.
func (r row) active(tree settings.Tree) bool {
	v, err := settings.Lookup(tree, r.path)
	if err != nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return fmt.Sprint(v) == r.value
}
