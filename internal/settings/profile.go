package settings

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActiveProfile is the single selected profile preset. The serialized form is
// the boolean map {seizeSafe, visionImpaired, adhd, cognitiveDisability,
// keyboardNavigation} with at most one true entry.
type ActiveProfile string

// Profile values.
const (
	ProfileNone                ActiveProfile = ""
	ProfileSeizeSafe           ActiveProfile = "seizeSafe"
	ProfileVisionImpaired      ActiveProfile = "visionImpaired"
	ProfileADHD                ActiveProfile = "adhd"
	ProfileCognitiveDisability ActiveProfile = "cognitiveDisability"
	ProfileKeyboardNavigation  ActiveProfile = "keyboardNavigation"
)

// Profiles lists every selectable profile in display order.
func Profiles() []ActiveProfile {
	return []ActiveProfile{
		ProfileSeizeSafe,
		ProfileVisionImpaired,
		ProfileADHD,
		ProfileCognitiveDisability,
		ProfileKeyboardNavigation,
	}
}

// ParseProfile resolves a profile name. The empty name is not a profile.
func ParseProfile(name string) (ActiveProfile, bool) {
	for _, p := range Profiles() {
		if string(p) == name {
			return p, true
		}
	}
	return ProfileNone, false
}

// Is reports whether p is the given profile.
func (p ActiveProfile) Is(name ActiveProfile) bool {
	return p != ProfileNone && p == name
}

// Flags expands the profile into its boolean-map form.
func (p ActiveProfile) Flags() map[string]bool {
	out := make(map[string]bool, len(Profiles()))
	for _, name := range Profiles() {
		out[string(name)] = p == name
	}
	return out
}

func profileFromFlags(flags map[string]bool) (ActiveProfile, error) {
	active := ProfileNone
	for key, on := range flags {
		name, ok := ParseProfile(key)
		if !ok {
			return ProfileNone, fmt.Errorf("unknown profile %q", key)
		}
		if !on {
			continue
		}
		if active != ProfileNone {
			return ProfileNone, fmt.Errorf("profiles %q and %q are both active", active, name)
		}
		active = name
	}
	return active, nil
}

// MarshalJSON writes the boolean-map form.
func (p ActiveProfile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Flags())
}

// UnmarshalJSON reads the boolean-map form and rejects more than one active profile.
func (p *ActiveProfile) UnmarshalJSON(data []byte) error {
	var flags map[string]bool
	if err := json.Unmarshal(data, &flags); err != nil {
		return err
	}
	active, err := profileFromFlags(flags)
	if err != nil {
		return err
	}
	*p = active
	return nil
}

// MarshalYAML writes the boolean-map form.
func (p ActiveProfile) MarshalYAML() (interface{}, error) {
	return p.Flags(), nil
}

// UnmarshalYAML reads the boolean-map form.
func (p *ActiveProfile) UnmarshalYAML(value *yaml.Node) error {
	var flags map[string]bool
	if err := value.Decode(&flags); err != nil {
		return err
	}
	active, err := profileFromFlags(flags)
	if err != nil {
		return err
	}
	*p = active
	return nil
}
