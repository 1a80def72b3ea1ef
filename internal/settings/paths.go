package settings

import (
	"fmt"
	"sort"
	"strconv"

	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

type field struct {
	get func(Tree) any
	set func(*Tree, any) error
}

var fields = map[string]field{
	"colors.contrast": {
		get: func(t Tree) any { return t.Colors.Contrast },
		set: enumSetter("colors.contrast", []Contrast{ContrastDefault, ContrastDark, ContrastLight, ContrastHigh},
			func(t *Tree, v Contrast) { t.Colors.Contrast = v }),
	},
	"colors.saturation": {
		get: func(t Tree) any { return t.Colors.Saturation },
		set: enumSetter("colors.saturation", []Saturation{SaturationDefault, SaturationLow, SaturationHigh},
			func(t *Tree, v Saturation) { t.Colors.Saturation = v }),
	},
	"colors.monochrome": boolField("colors.monochrome",
		func(t Tree) bool { return t.Colors.Monochrome },
		func(t *Tree, v bool) { t.Colors.Monochrome = v }),

	"content.alignment": {
		get: func(t Tree) any { return t.Content.Alignment },
		set: enumSetter("content.alignment", []Alignment{AlignDefault, AlignLeft, AlignCenter, AlignRight},
			func(t *Tree, v Alignment) { t.Content.Alignment = v }),
	},
	"content.contentScaling": {
		get: func(t Tree) any { return t.Content.ContentScaling },
		set: enumSetter("content.contentScaling", []Scaling{ScalingDefault, ScalingLarge, ScalingLarger},
			func(t *Tree, v Scaling) { t.Content.ContentScaling = v }),
	},
	"content.highlightHover": boolField("content.highlightHover",
		func(t Tree) bool { return t.Content.HighlightHover },
		func(t *Tree, v bool) { t.Content.HighlightHover = v }),
	"content.highlightLinks": boolField("content.highlightLinks",
		func(t Tree) bool { return t.Content.HighlightLinks },
		func(t *Tree, v bool) { t.Content.HighlightLinks = v }),
	"content.highlightTitles": boolField("content.highlightTitles",
		func(t Tree) bool { return t.Content.HighlightTitles },
		func(t *Tree, v bool) { t.Content.HighlightTitles = v }),
	"content.readableFont": boolField("content.readableFont",
		func(t Tree) bool { return t.Content.ReadableFont },
		func(t *Tree, v bool) { t.Content.ReadableFont = v }),

	"orientation.muteSounds": boolField("orientation.muteSounds",
		func(t Tree) bool { return t.Orientation.MuteSounds },
		func(t *Tree, v bool) { t.Orientation.MuteSounds = v }),
	"orientation.hideImages": boolField("orientation.hideImages",
		func(t Tree) bool { return t.Orientation.HideImages },
		func(t *Tree, v bool) { t.Orientation.HideImages = v }),
	"orientation.readMode": boolField("orientation.readMode",
		func(t Tree) bool { return t.Orientation.ReadMode },
		func(t *Tree, v bool) { t.Orientation.ReadMode = v }),
	"orientation.cursor": {
		get: func(t Tree) any { return t.Orientation.Cursor },
		set: enumSetter("orientation.cursor", []Cursor{CursorDefault, CursorBlack, CursorWhite},
			func(t *Tree, v Cursor) { t.Orientation.Cursor = v }),
	},
	"orientation.stopAnimations": boolField("orientation.stopAnimations",
		func(t Tree) bool { return t.Orientation.StopAnimations },
		func(t *Tree, v bool) { t.Orientation.StopAnimations = v }),

	"widget.position": {
		get: func(t Tree) any { return t.Widget.Position },
		set: enumSetter("widget.position", []Position{PositionLeft, PositionRight},
			func(t *Tree, v Position) { t.Widget.Position = v }),
	},
	"ui.keyboardDialogOpen": boolField("ui.keyboardDialogOpen",
		func(t Tree) bool { return t.UI.KeyboardDialogOpen },
		func(t *Tree, v bool) { t.UI.KeyboardDialogOpen = v }),
}

func init() {
	for _, p := range Profiles() {
		name := p
		path := "profiles." + string(name)
		fields[path] = boolField(path,
			func(t Tree) bool { return t.Profiles == name },
			func(t *Tree, v bool) { t.setProfile(name, v) })
	}
}

// setProfile enforces the single active profile rule: turning one on replaces
// whichever was active, turning one off only clears it if it is the active one.
func (t *Tree) setProfile(name ActiveProfile, active bool) {
	switch {
	case active:
		t.Profiles = name
	case t.Profiles == name:
		t.Profiles = ProfileNone
	}
}

// Paths returns every addressable settings path in sorted order.
func Paths() []string {
	out := make([]string, 0, len(fields))
	for path := range fields {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// Lookup reads the value stored at path.
func Lookup(t Tree, path string) (any, error) {
	f, ok := fields[path]
	if !ok {
		return nil, acerrors.NewUnknownFieldError(path)
	}
	return f.get(t), nil
}

// ParseValue converts a command-line string into the value type stored at path.
func ParseValue(path, raw string) (any, error) {
	f, ok := fields[path]
	if !ok {
		return nil, acerrors.NewUnknownFieldError(path)
	}
	if _, isBool := f.get(Tree{}).(bool); isBool {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, acerrors.NewValidationError(path, fmt.Sprintf("%q is not a boolean", raw), err)
		}
		return v, nil
	}
	return raw, nil
}

func boolField(path string, get func(Tree) bool, set func(*Tree, bool)) field {
	return field{
		get: func(t Tree) any { return get(t) },
		set: func(t *Tree, value any) error {
			v, ok := value.(bool)
			if !ok {
				return acerrors.NewValidationError(path, fmt.Sprintf("expected a boolean, got %T", value), nil)
			}
			set(t, v)
			return nil
		},
	}
}

func enumSetter[E ~string](path string, allowed []E, set func(*Tree, E)) func(*Tree, any) error {
	return func(t *Tree, value any) error {
		var candidate E
		switch v := value.(type) {
		case E:
			candidate = v
		case string:
			candidate = E(v)
		default:
			return acerrors.NewValidationError(path, fmt.Sprintf("expected a string, got %T", value), nil)
		}
		for _, a := range allowed {
			if a == candidate {
				set(t, candidate)
				return nil
			}
		}
		return acerrors.NewValidationError(path, fmt.Sprintf("%q is not one of %v", candidate, allowed), nil)
	}
}

// Changed lists the dotted paths whose values differ between prev and next.
func Changed(prev, next Tree) []string {
	var out []string
	for _, path := range Paths() {
		f := fields[path]
		if f.get(prev) != f.get(next) {
			out = append(out, path)
		}
	}
	return out
}
