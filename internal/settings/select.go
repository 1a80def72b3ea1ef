package settings

import (
	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

// toggleEnum returns the value a single-choice control lands on: re-selecting
// the active value goes back to off, anything else replaces it directly.
func toggleEnum[E comparable](current, selected, off E) E {
	if current == selected {
		return off
	}
	return selected
}

// SelectContrast applies the single-choice rule to colors.contrast.
func (s *Store) SelectContrast(c Contrast) {
	s.commit(func(t *Tree) {
		t.Colors.Contrast = toggleEnum(t.Colors.Contrast, c, ContrastDefault)
	})
}

// SelectSaturation applies the single-choice rule to colors.saturation.
func (s *Store) SelectSaturation(v Saturation) {
	s.commit(func(t *Tree) {
		t.Colors.Saturation = toggleEnum(t.Colors.Saturation, v, SaturationDefault)
	})
}

// SelectAlignment applies the single-choice rule to content.alignment.
func (s *Store) SelectAlignment(a Alignment) {
	s.commit(func(t *Tree) {
		t.Content.Alignment = toggleEnum(t.Content.Alignment, a, AlignDefault)
	})
}

// SelectContentScaling applies the single-choice rule to content.contentScaling.
func (s *Store) SelectContentScaling(v Scaling) {
	s.commit(func(t *Tree) {
		t.Content.ContentScaling = toggleEnum(t.Content.ContentScaling, v, ScalingDefault)
	})
}

// SelectCursor is the tri-state cursor toggle. Switching between black and
// white never passes through default.
func (s *Store) SelectCursor(c Cursor) {
	s.commit(func(t *Tree) {
		t.Orientation.Cursor = toggleEnum(t.Orientation.Cursor, c, CursorDefault)
	})
}

// Toggle flips the boolean field at path.
func (s *Store) Toggle(path string) error {
	f, ok := fields[path]
	if !ok {
		return acerrors.NewUnknownFieldError(path)
	}
	if _, isBool := f.get(Tree{}).(bool); !isBool {
		return acerrors.NewValidationError(path, "field is not a boolean", nil)
	}
	s.commit(func(t *Tree) {
		current := f.get(*t).(bool)
		_ = f.set(t, !current)
	})
	return nil
}
