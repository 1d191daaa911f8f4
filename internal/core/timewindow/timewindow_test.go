package timewindow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	datasetMin = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	datasetMax = time.Date(2025, 3, 31, 18, 30, 0, 0, time.UTC)
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_QuickSelectPresets(t *testing.T) {
	wantEnd := time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC)

	tests := []struct {
		preset    string
		wantStart time.Time
	}{
		{PresetLast7Days, date(2025, 3, 24)},
		{PresetLast30Days, date(2025, 3, 1)},
		{PresetLast90Days, date(2024, 12, 31)},
		{PresetYearToDate, date(2025, 1, 1)},
		{PresetAllTime, date(2025, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			win, err := Resolve(Request{Mode: ModeQuickSelect, Preset: tc.preset}, datasetMin, datasetMax)
			require.NoError(t, err)
			require.Equal(t, tc.wantStart, win.Start)
			require.Equal(t, wantEnd, win.End)
			require.Equal(t, tc.preset, win.Label)
		})
	}
}

func TestResolve_CustomRangeLabelSnapsToPreset(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantLabel string
	}{
		{"7-day span", date(2025, 1, 5), date(2025, 1, 11), PresetLast7Days},
		{"30-day span", date(2025, 2, 1), date(2025, 3, 2), PresetLast30Days},
		{"90-day span", date(2025, 1, 1), date(2025, 3, 31), PresetLast90Days},
		{"odd span gets literal label", date(2025, 1, 1), date(2025, 1, 31), "Custom: Jan 01 - Jan 31, 2025"},
		{"single day", date(2025, 2, 14), date(2025, 2, 14), "Custom: Feb 14 - Feb 14, 2025"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			win, err := Resolve(Request{Mode: ModeCustomRange, Start: tc.start, End: tc.end}, datasetMin, datasetMax)
			require.NoError(t, err)
			require.Equal(t, tc.wantLabel, win.Label)
		})
	}
}

func TestResolve_CustomThirtyDaySpanMatchesPresetLabel(t *testing.T) {
	preset, err := Resolve(Request{Mode: ModeQuickSelect, Preset: PresetLast30Days}, datasetMin, datasetMax)
	require.NoError(t, err)

	// A custom range ending at the dataset max and spanning exactly 30 days
	// must be indistinguishable from the preset by label.
	custom, err := Resolve(Request{
		Mode:  ModeCustomRange,
		Start: date(2025, 3, 2),
		End:   date(2025, 3, 31),
	}, datasetMin, datasetMax)
	require.NoError(t, err)
	require.Equal(t, preset.Label, custom.Label)
}

func TestResolve_CustomRangeNormalizesToDayBounds(t *testing.T) {
	win, err := Resolve(Request{
		Mode:  ModeCustomRange,
		Start: date(2025, 2, 1),
		End:   date(2025, 2, 10),
	}, datasetMin, datasetMax)
	require.NoError(t, err)
	require.Equal(t, date(2025, 2, 1), win.Start)
	require.Equal(t, time.Date(2025, 2, 10, 23, 59, 59, 999999999, time.UTC), win.End)
}

func TestResolve_CustomRangeClampsToDatasetBounds(t *testing.T) {
	win, err := Resolve(Request{
		Mode:  ModeCustomRange,
		Start: date(2024, 11, 1),
		End:   date(2025, 6, 1),
	}, datasetMin, datasetMax)
	require.NoError(t, err)
	require.Equal(t, date(2025, 1, 1), win.Start)
	require.Equal(t, time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC), win.End)
}

func TestResolve_InvertedCustomRangeFails(t *testing.T) {
	_, err := Resolve(Request{
		Mode:  ModeCustomRange,
		Start: date(2025, 2, 10),
		End:   date(2025, 2, 1),
	}, datasetMin, datasetMax)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidRange))
}

func TestResolve_UnknownModeAndPreset(t *testing.T) {
	_, err := Resolve(Request{Mode: "sideways"}, datasetMin, datasetMax)
	require.Error(t, err)

	_, err = Resolve(Request{Mode: ModeQuickSelect, Preset: "Last 14 days"}, datasetMin, datasetMax)
	require.Error(t, err)
}

func TestResolve_Idempotent(t *testing.T) {
	req := Request{Mode: ModeQuickSelect, Preset: PresetLast7Days}
	first, err := Resolve(req, datasetMin, datasetMax)
	require.NoError(t, err)
	second, err := Resolve(req, datasetMin, datasetMax)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
