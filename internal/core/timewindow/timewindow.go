package timewindow

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects how the time window is specified.
const (
	ModeQuickSelect = "quick"
	ModeCustomRange = "custom"
)

// Preset labels for QuickSelect mode. These double as the human-readable
// window labels, and custom ranges that span exactly the same number of
// days snap back to them.
const (
	PresetLast7Days  = "Last 7 days"
	PresetLast30Days = "Last 30 days"
	PresetLast90Days = "Last 90 days"
	PresetYearToDate = "Year to date"
	PresetAllTime    = "All time"
)

// Presets lists all QuickSelect presets in display order.
var Presets = []string{
	PresetLast7Days,
	PresetLast30Days,
	PresetLast90Days,
	PresetYearToDate,
	PresetAllTime,
}

// ErrInvalidRange marks a custom range whose start date is after its end date.
// Callers must not proceed to filtering with an inverted range.
var ErrInvalidRange = errors.New("invalid time range")

// Request is a time-window selection as it arrives from the UI layer.
// For ModeQuickSelect only Preset is read; for ModeCustomRange only Start/End.
type Request struct {
	Mode   string
	Preset string
	Start  time.Time
	End    time.Time
}

// Window is a resolved [Start, End] instant pair plus its display label.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Resolve turns a window request into concrete inclusive bounds within the
// dataset's [datasetMin, datasetMax] range. Resolution is stateless: the same
// inputs always produce the same window.
func Resolve(req Request, datasetMin, datasetMax time.Time) (Window, error) {
	switch req.Mode {
	case ModeQuickSelect:
		return resolvePreset(req.Preset, datasetMin, datasetMax)
	case ModeCustomRange:
		return resolveCustom(req.Start, req.End, datasetMin, datasetMax)
	default:
		return Window{}, fmt.Errorf("unknown window mode %q", req.Mode)
	}
}

func resolvePreset(preset string, datasetMin, datasetMax time.Time) (Window, error) {
	end := endOfDay(datasetMax)

	var start time.Time
	switch preset {
	case PresetLast7Days:
		start = startOfDay(end.AddDate(0, 0, -7))
	case PresetLast30Days:
		start = startOfDay(end.AddDate(0, 0, -30))
	case PresetLast90Days:
		start = startOfDay(end.AddDate(0, 0, -90))
	case PresetYearToDate:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, end.Location())
	case PresetAllTime:
		start = startOfDay(datasetMin)
	default:
		return Window{}, fmt.Errorf("unknown time preset %q", preset)
	}

	return Window{Start: start, End: end, Label: preset}, nil
}

func resolveCustom(startDate, endDate, datasetMin, datasetMax time.Time) (Window, error) {
	if startDate.After(endDate) {
		return Window{}, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	}

	startDate = clampDate(startDate, datasetMin, datasetMax)
	endDate = clampDate(endDate, datasetMin, datasetMax)

	start := startOfDay(startDate)
	end := endOfDay(endDate)

	return Window{Start: start, End: end, Label: customLabel(start, end)}, nil
}

// customLabel snaps a custom range back to the matching preset label when its
// span equals exactly 7, 30 or 90 calendar days, so e.g. a hand-picked 30-day
// range is indistinguishable from the "Last 30 days" preset. Anything else
// gets a literal range label.
func customLabel(start, end time.Time) string {
	switch daysBetween(start, end) {
	case 6:
		return PresetLast7Days
	case 29:
		return PresetLast30Days
	case 89:
		return PresetLast90Days
	}
	return fmt.Sprintf("Custom: %s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
}

// daysBetween counts whole calendar days from start's date to end's date.
func daysBetween(start, end time.Time) int {
	return int(startOfDay(end).Sub(startOfDay(start)) / (24 * time.Hour))
}

func clampDate(t, min, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}
