// Package profiles enforces that at most one profile preset is active and
// applies the accommodations each preset bundles.
package profiles

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

// Preset writes the accommodations a profile bundles.
type Preset func(*settings.Tree)

var presets = map[settings.ActiveProfile]Preset{
	settings.ProfileSeizeSafe: func(t *settings.Tree) {
		t.Orientation.StopAnimations = true
		t.Colors.Saturation = settings.SaturationLow
	},
	settings.ProfileVisionImpaired: func(t *settings.Tree) {
		t.Colors.Contrast = settings.ContrastHigh
		t.Content.ContentScaling = settings.ScalingLarge
		t.Content.ReadableFont = true
	},
	settings.ProfileADHD: func(t *settings.Tree) {
		t.Orientation.ReadMode = true
		t.Orientation.StopAnimations = true
		t.Content.HighlightTitles = true
	},
	settings.ProfileCognitiveDisability: func(t *settings.Tree) {
		t.Content.HighlightLinks = true
		t.Content.HighlightTitles = true
		t.Content.ReadableFont = true
	},
	settings.ProfileKeyboardNavigation: func(t *settings.Tree) {
		t.Content.HighlightLinks = true
		t.Content.HighlightHover = true
	},
}

// Controller activates and deactivates profiles on a store.
type Controller struct {
	store *settings.Store
	log   ports.Logger
}

// NewController creates a controller. A nil logger discards output.
func NewController(store *settings.Store, log ports.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{store: store, log: log.With("component", "profiles")}
}

// ActivateProfile turns name on or off in a single transaction. Turning a
// profile on clears whichever profile was active and writes its preset;
// turning it off clears only that profile and leaves the accommodations as
// they are.
func (c *Controller) ActivateProfile(name string, isActive bool) error {
	profile, ok := settings.ParseProfile(name)
	if !ok {
		return acerrors.NewProfileError(name, acerrors.NewUnknownFieldError("profiles."+name))
	}

	c.store.Batch(func(t *settings.Tree) {
		switch {
		case isActive:
			t.Profiles = profile
			presets[profile](t)
		case t.Profiles == profile:
			t.Profiles = settings.ProfileNone
		}
	})

	c.log.Debug("profile updated", "profile", name, "active", isActive)
	return nil
}

// Update writes one settings path. Profile paths go through ActivateProfile
// so the preset is written with the tag; every other path is a plain store
// update.
func (c *Controller) Update(path string, value any) error {
	name, isProfile := strings.CutPrefix(path, "profiles.")
	if !isProfile {
		return c.store.Update(path, value)
	}
	if _, ok := settings.ParseProfile(name); !ok {
		return acerrors.NewUnknownFieldError(path)
	}
	active, ok := value.(bool)
	if !ok {
		return acerrors.NewValidationError(path, fmt.Sprintf("expected a boolean, got %T", value), nil)
	}
	return c.ActivateProfile(name, active)
}

// Active returns the active profile, or settings.ProfileNone.
func (c *Controller) Active() settings.ActiveProfile {
	return c.store.Get().Profiles
}

// Names lists every profile name in display order.
func Names() []string {
	out := make([]string, 0, len(settings.Profiles()))
	for _, p := range settings.Profiles() {
		out = append(out, string(p))
	}
	return out
}

// Apply writes the preset for profile into t without touching t.Profiles.
func Apply(profile settings.ActiveProfile, t *settings.Tree) {
	if preset, ok := presets[profile]; ok {
		preset(t)
	}
}
