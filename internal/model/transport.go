package model

import "fmt"

// Time formatting constants
const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	ClockFormat      = "%02d:%02d"
	TimestampFormat  = "%s / %s"
)

// ZeroTimestamp is shown when nothing is playing
var ZeroTimestamp = FormatTimestamp(0, 0)

// TransportState is what the transport controls display
type TransportState struct {
	SeekPosition float64     // 0 to 100
	Timestamp    string      // "MM:SS / MM:SS"
	Label        ButtonLabel // play/pause button label
}

// ResetTransport returns the transport state of a stopped player
func ResetTransport() TransportState {
	return TransportState{
		SeekPosition: 0,
		Timestamp:    ZeroTimestamp,
		Label:        LabelPlay,
	}
}

// FormatClock formats elapsed seconds as MM:SS. Minutes wrap every hour,
// the same way a %M:%S clock does.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := (seconds / SecondsPerMinute) % MinutesPerHour
	secs := seconds % SecondsPerMinute
	return fmt.Sprintf(ClockFormat, minutes, secs)
}

// FormatTimestamp formats elapsed and total seconds as "MM:SS / MM:SS"
func FormatTimestamp(elapsed, duration int) string {
	return fmt.Sprintf(TimestampFormat, FormatClock(elapsed), FormatClock(duration))
}

// SeekPercent returns elapsed as a 0-100 share of duration, 0 if duration is unknown
func SeekPercent(elapsed, duration int) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration) * 100
}
