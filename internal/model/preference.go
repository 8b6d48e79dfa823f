package model

// Theme preference values, persisted as plain strings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Clock display formats, persisted as plain strings. 24-hour is the default.
const (
	ClockFormat24 = "24"
	ClockFormat12 = "12"
)

// ClockRender is one formatted reading of the wall clock.
// Meridiem is empty in 24-hour format.
type ClockRender struct {
	Time     string `json:"time"` // "HH:MM:SS", zero-padded
	Meridiem string `json:"meridiem,omitempty"`
	Date     string `json:"date"` // long localized date
	Year     int    `json:"year"`
}
