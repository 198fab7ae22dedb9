// Package ical writes the subset of RFC 5545 needed to publish a read-only
// calendar feed: VCALENDAR with VEVENT components.
package ical

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// maxLine is the line length limit in octets, excluding the CRLF.
const maxLine = 75

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405Z"
)

// Event represents a single VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Status      string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Stamp       time.Time
}

// Calendar represents a VCALENDAR object.
type Calendar struct {
	ProdID string
	Name   string
	Events []Event
}

// Encode writes the calendar to w.
func (c Calendar) Encode(w io.Writer) error {
	cw := contentWriter{w: w}

	cw.line("BEGIN:VCALENDAR")
	cw.line("VERSION:2.0")
	cw.line("PRODID:" + c.ProdID)
	cw.line("CALSCALE:GREGORIAN")
	cw.line("METHOD:PUBLISH")

	if c.Name != "" {
		cw.line("X-WR-CALNAME:" + EscapeText(c.Name))
	}

	for _, e := range c.Events {
		cw.line("BEGIN:VEVENT")
		cw.line("UID:" + e.UID)
		cw.line("DTSTAMP:" + e.Stamp.UTC().Format(dateTimeLayout))

		switch e.AllDay {
		case true:
			cw.line("DTSTART;VALUE=DATE:" + e.Start.Format(dateLayout))
			cw.line("DTEND;VALUE=DATE:" + e.End.Format(dateLayout))
		default:
			cw.line("DTSTART:" + e.Start.UTC().Format(dateTimeLayout))
			cw.line("DTEND:" + e.End.UTC().Format(dateTimeLayout))
		}

		cw.line("SUMMARY:" + EscapeText(e.Summary))

		if e.Description != "" {
			cw.line("DESCRIPTION:" + EscapeText(e.Description))
		}

		if e.Location != "" {
			cw.line("LOCATION:" + EscapeText(e.Location))
		}

		if e.Status != "" {
			cw.line("STATUS:" + e.Status)
		}

		cw.line("END:VEVENT")
	}

	cw.line("END:VCALENDAR")

	if cw.err != nil {
		return fmt.Errorf("encode calendar: %w", cw.err)
	}

	return nil
}

// Bytes returns the encoded calendar.
func (c Calendar) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// =============================================================================

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
	"\r", "",
)

// EscapeText escapes a value of the TEXT type.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// fold splits a content line into 75 octet chunks. Continuation lines start
// with a single space and a multi-byte character is never split.
func fold(line string) string {
	if len(line) <= maxLine {
		return line
	}

	var b strings.Builder

	limit := maxLine
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}

		// No rune start in the window: the bytes are not UTF-8, cut anyway.
		if cut == 0 {
			cut = limit
		}

		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]

		limit = maxLine - 1
	}

	b.WriteString(line)

	return b.String()
}

type contentWriter struct {
	w   io.Writer
	err error
}

func (cw *contentWriter) line(s string) {
	if cw.err != nil {
		return
	}

	_, cw.err = io.WriteString(cw.w, fold(s)+"\r\n")
}
