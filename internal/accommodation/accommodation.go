// Package accommodation contains the appliers that synchronize the live
// document with the settings tree. Each applier is a pure function of its
// settings slice: Apply computes the full "on" or full "off" state and returns
// the Cleanup that undoes it.
package accommodation

import (
	"fmt"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// Cleanup undoes the document mutations of one Apply call. It must be safe to
// call on a document that has changed structurally since Apply ran.
type Cleanup func()

func noop() {}

// Applier is the engine-facing view of an accommodation.
type Applier interface {
	// Name identifies the accommodation in logs and metrics.
	Name() string
	// Changed reports whether the applier's settings slice differs between trees.
	Changed(prev, next settings.Tree) bool
	// ApplyTree synchronizes doc to the slice selected from tree.
	ApplyTree(doc ports.Document, tree settings.Tree) Cleanup
	// Describe formats the selected slice for logs.
	Describe(tree settings.Tree) string
}

// Accommodation binds a settings slice of type T to the function that applies it.
type Accommodation[T comparable] struct {
	name   string
	Select func(settings.Tree) T
	Apply  func(doc ports.Document, value T) Cleanup
}

var _ Applier = Accommodation[bool]{}

// New constructs an accommodation.
func New[T comparable](name string, sel func(settings.Tree) T, apply func(ports.Document, T) Cleanup) Accommodation[T] {
	return Accommodation[T]{name: name, Select: sel, Apply: apply}
}

// Name implements Applier.
func (a Accommodation[T]) Name() string { return a.name }

// Changed implements Applier.
func (a Accommodation[T]) Changed(prev, next settings.Tree) bool {
	return a.Select(prev) != a.Select(next)
}

// ApplyTree implements Applier.
func (a Accommodation[T]) ApplyTree(doc ports.Document, tree settings.Tree) Cleanup {
	cleanup := a.Apply(doc, a.Select(tree))
	if cleanup == nil {
		return noop
	}
	return cleanup
}

// Describe implements Applier.
func (a Accommodation[T]) Describe(tree settings.Tree) string {
	return fmt.Sprint(a.Select(tree))
}

// Options tunes appliers whose behavior is host-configurable.
type Options struct {
	// ReadingBandPx is the height of the clear band in reading mode.
	ReadingBandPx int
}

// DefaultReadingBandPx is the reading band height used when none is configured.
const DefaultReadingBandPx = 120

// All returns every accommodation in family order: colors, content, orientation.
func All(opts Options) []Applier {
	out := Colors()
	out = append(out, Content()...)
	out = append(out, Orientation(opts)...)
	return out
}
