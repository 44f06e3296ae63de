package notify

import (
	"slices"
	"time"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInformation Type = "Information"
	TypeWarning     Type = "Warning"
	TypeError       Type = "Error"
	TypeSuccess     Type = "Success"
)

// Duration represents how long a notification stays on screen.
type Duration string

const (
	DurationShort  Duration = "Short"
	DurationNormal Duration = "Normal"
	DurationLong   Duration = "Long"
)

// Position represents the screen corner a notification appears in.
type Position string

const (
	PositionTopRight    Position = "top_right"
	PositionTopLeft     Position = "top_left"
	PositionBottomRight Position = "bottom_right"
	PositionBottomLeft  Position = "bottom_left"
)

// TypeValues returns the valid notification type values. Settings validation
// uses this list so there is a single definition of the valid set.
func TypeValues() []string {
	return []string{
		string(TypeInformation),
		string(TypeWarning),
		string(TypeError),
		string(TypeSuccess),
	}
}

// DurationValues returns the valid duration values.
func DurationValues() []string {
	return []string{
		string(DurationShort),
		string(DurationNormal),
		string(DurationLong),
	}
}

// PositionValues returns the valid position values.
func PositionValues() []string {
	return []string{
		string(PositionTopRight),
		string(PositionTopLeft),
		string(PositionBottomRight),
		string(PositionBottomLeft),
	}
}

// Valid reports whether t is one of the defined notification types.
func (t Type) Valid() bool {
	return slices.Contains(TypeValues(), string(t))
}

// Valid reports whether d is one of the defined durations.
func (d Duration) Valid() bool {
	return slices.Contains(DurationValues(), string(d))
}

// Valid reports whether p is one of the defined positions.
func (p Position) Valid() bool {
	return slices.Contains(PositionValues(), string(p))
}

// Notification is a fully composed notification, ready for whatever display
// mechanism the caller uses.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Duration  Duration  `json:"duration"`
	Position  Position  `json:"position"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Sound     bool      `json:"sound"`
	CreatedAt time.Time `json:"created_at"`
}
