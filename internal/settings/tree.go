// Package settings holds the accommodation configuration tree and the store
// that owns it.
package settings

// Contrast selects the color contrast theme.
type Contrast string

// Contrast values.
const (
	ContrastDefault Contrast = "default"
	ContrastDark    Contrast = "dark"
	ContrastLight   Contrast = "light"
	ContrastHigh    Contrast = "high"
)

// Saturation selects the color saturation level.
type Saturation string

// Saturation values.
const (
	SaturationDefault Saturation = "default"
	SaturationLow     Saturation = "low"
	SaturationHigh    Saturation = "high"
)

// Alignment selects the forced text alignment.
type Alignment string

// Alignment values.
const (
	AlignDefault Alignment = "default"
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// Scaling selects the content scaling step.
type Scaling string

// Scaling values.
const (
	ScalingDefault Scaling = "default"
	ScalingLarge   Scaling = "large"
	ScalingLarger  Scaling = "larger"
)

// Cursor selects the replacement pointer cursor.
type Cursor string

// Cursor values.
const (
	CursorDefault Cursor = "default"
	CursorBlack   Cursor = "black"
	CursorWhite   Cursor = "white"
)

// Position is the screen edge the widget trigger is anchored to.
type Position string

// Position values.
const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// Colors groups the color accommodations.
type Colors struct {
	Contrast   Contrast   `json:"contrast" yaml:"contrast" validate:"oneof=default dark light high"`
	Saturation Saturation `json:"saturation" yaml:"saturation" validate:"oneof=default low high"`
	Monochrome bool       `json:"monochrome" yaml:"monochrome"`
}

// Content groups the text and layout accommodations.
type Content struct {
	Alignment       Alignment `json:"alignment" yaml:"alignment" validate:"oneof=default left center right"`
	ContentScaling  Scaling   `json:"contentScaling" yaml:"contentScaling" validate:"oneof=default large larger"`
	HighlightHover  bool      `json:"highlightHover" yaml:"highlightHover"`
	HighlightLinks  bool      `json:"highlightLinks" yaml:"highlightLinks"`
	HighlightTitles bool      `json:"highlightTitles" yaml:"highlightTitles"`
	ReadableFont    bool      `json:"readableFont" yaml:"readableFont"`
}

// Orientation groups the media and navigation accommodations.
type Orientation struct {
	MuteSounds     bool   `json:"muteSounds" yaml:"muteSounds"`
	HideImages     bool   `json:"hideImages" yaml:"hideImages"`
	ReadMode       bool   `json:"readMode" yaml:"readMode"`
	Cursor         Cursor `json:"cursor" yaml:"cursor" validate:"oneof=default black white"`
	StopAnimations bool   `json:"stopAnimations" yaml:"stopAnimations"`
}

// Widget holds the trigger chrome state.
type Widget struct {
	Position Position `json:"position" yaml:"position" validate:"oneof=left right"`
}

// UI holds transient dialog state.
type UI struct {
	KeyboardDialogOpen bool `json:"keyboardDialogOpen" yaml:"keyboardDialogOpen"`
}

// Tree is the full settings record. It is a plain value: assigning it copies
// it and two trees compare with ==.
type Tree struct {
	Colors      Colors        `json:"colors" yaml:"colors"`
	Content     Content       `json:"content" yaml:"content"`
	Orientation Orientation   `json:"orientation" yaml:"orientation"`
	Profiles    ActiveProfile `json:"profiles" yaml:"profiles" validate:"profile"`
	Widget      Widget        `json:"widget" yaml:"widget"`
	UI          UI            `json:"ui" yaml:"ui"`
}

// Defaults returns the tree every host mounts with.
func Defaults() Tree {
	return Tree{
		Colors: Colors{
			Contrast:   ContrastDefault,
			Saturation: SaturationDefault,
		},
		Content: Content{
			Alignment:      AlignDefault,
			ContentScaling: ScalingDefault,
		},
		Orientation: Orientation{
			Cursor: CursorDefault,
		},
		Profiles: ProfileNone,
		Widget:   Widget{Position: PositionRight},
	}
}
