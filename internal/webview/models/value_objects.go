package models

// Position places the consent layer on screen.
type Position string

const (
	PositionFullScreen       Position = "fullScreen"
	PositionHalfScreenTop    Position = "halfScreenTop"
	PositionHalfScreenBottom Position = "halfScreenBottom"
	PositionCustom           Position = "custom"
)

// ValidPositions is the single source of truth for allowed layer positions.
var ValidPositions = map[Position]bool{
	PositionFullScreen:       true,
	PositionHalfScreenTop:    true,
	PositionHalfScreenBottom: true,
	PositionCustom:           true,
}

// IsValid checks if the position is one of the supported enum values.
func (p Position) IsValid() bool {
	return ValidPositions[p]
}

// BlurStyle selects the platform blur material behind the consent layer.
type BlurStyle string

const (
	BlurDark       BlurStyle = "dark"
	BlurLight      BlurStyle = "light"
	BlurExtraLight BlurStyle = "extraLight"
)

// IsValid checks if the blur style is one of the supported enum values.
func (b BlurStyle) IsValid() bool {
	return b == BlurDark || b == BlurLight || b == BlurExtraLight
}

// BackgroundStyleKind tags the active variant of a BackgroundStyle.
type BackgroundStyleKind string

const (
	BackgroundDimmed BackgroundStyleKind = "dimmed"
	BackgroundColor  BackgroundStyleKind = "color"
	BackgroundBlur   BackgroundStyleKind = "blur"
	BackgroundNone   BackgroundStyleKind = "none"
)

// IsValid checks if the kind is one of the supported enum values.
func (k BackgroundStyleKind) IsValid() bool {
	switch k {
	case BackgroundDimmed, BackgroundColor, BackgroundBlur, BackgroundNone:
		return true
	}
	return false
}
