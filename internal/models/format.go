package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	apiTimeLayout     = "2006-01-02T15:04:05-0700"
	displayTimeLayout = "02.01.2006 15:04:05"
)

var highlightReplacer = strings.NewReplacer("<highlighttext>", "", "</highlighttext>", "")

// FormatDate converts "2024-01-02T03:04:05+0300" into "02.01.2024 03:04:05".
// The wall clock of the original offset is kept. Unrecognized input is
// returned unchanged.
func FormatDate(input string) string {
	if t, err := time.Parse(apiTimeLayout, input); err == nil {
		return t.Format(displayTimeLayout)
	}
	if len(input) >= 19 && input[4] == '-' && input[7] == '-' && input[10] == 'T' {
		return input[8:10] + "." + input[5:7] + "." + input[0:4] + " " + input[11:19]
	}
	return input
}

// StripMarkup removes the search highlight tags from snippet text. Any other
// angle brackets are part of the text and are kept.
func StripMarkup(text string) string {
	return highlightReplacer.Replace(text)
}

// center pads text with fill on both sides up to width runes, extra fill
// going to the right
func center(text string, width int, fill rune) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), right)
}
