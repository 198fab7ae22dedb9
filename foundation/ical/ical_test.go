package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeAllDayEvent(t *testing.T) {
	cal := Calendar{
		ProdID: "-//vertical-suite//hotel//EN",
		Name:   "Front desk",
		Events: []Event{
			{
				UID:     "4f6c1f1e@hotel",
				Summary: "Room 101, Ada Lovelace",
				Status:  "CONFIRMED",
				Start:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
				End:     time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
				AllDay:  true,
				Stamp:   time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC),
			},
		},
	}

	data, err := cal.Bytes()
	require.NoError(t, err)

	want := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//vertical-suite//hotel//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Front desk",
		"BEGIN:VEVENT",
		"UID:4f6c1f1e@hotel",
		"DTSTAMP:20260201T123000Z",
		"DTSTART;VALUE=DATE:20260301",
		"DTEND;VALUE=DATE:20260304",
		`SUMMARY:Room 101\, Ada Lovelace`,
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	require.Equal(t, want, string(data))
}

func TestEncodeTimedEvent(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	cal := Calendar{
		ProdID: "-//test//EN",
		Events: []Event{
			{
				UID:   "1",
				Start: time.Date(2026, 3, 1, 9, 0, 0, 0, loc),
				End:   time.Date(2026, 3, 1, 10, 0, 0, 0, loc),
				Stamp: time.Date(2026, 3, 1, 9, 0, 0, 0, loc),
			},
		},
	}

	data, err := cal.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(data), "DTSTART:20260301T120000Z\r\n")
	require.Contains(t, string(data), "DTEND:20260301T130000Z\r\n")
}

func TestEscapeText(t *testing.T) {
	require.Equal(t, `a\\b\;c\,d\ne`, EscapeText("a\\b;c,d\r\ne"))
}

func TestFold(t *testing.T) {
	line := "DESCRIPTION:" + strings.Repeat("x", 200)

	folded := fold(line)
	parts := strings.Split(folded, "\r\n")

	require.Len(t, parts[0], 75)
	for _, p := range parts[1:] {
		require.True(t, strings.HasPrefix(p, " "))
		require.LessOrEqual(t, len(p), 75)
	}

	require.Equal(t, line, strings.ReplaceAll(folded, "\r\n ", ""))
}

func TestFoldKeepsMultiByteRunes(t *testing.T) {
	line := "SUMMARY:" + strings.Repeat("é", 60)

	for _, p := range strings.Split(fold(line), "\r\n ") {
		require.True(t, len(p) <= 75)
		require.True(t, strings.ToValidUTF8(p, "?") == p)
	}
}

func TestFoldInvalidUTF8(t *testing.T) {
	line := "SUMMARY:" + strings.Repeat("\x80", 100)

	done := make(chan string, 1)
	go func() { done <- fold(line) }()

	select {
	case folded := <-done:
		for _, p := range strings.Split(folded, "\r\n ") {
			require.True(t, len(p) <= 75)
		}
		require.Equal(t, line, strings.ReplaceAll(folded, "\r\n ", ""))
	case <-time.After(2 * time.Second):
		t.Fatal("fold did not return")
	}
}
