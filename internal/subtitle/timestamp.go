package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	srtTimestampRegex = regexp.MustCompile(
		`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})$`,
	)
	vttTimestampRegex = regexp.MustCompile(
		`^(\d{2,}):(\d{2}):(\d{2})[.,](\d{3})$`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`^(\d{2}):(\d{2})[.,](\d{3})$`,
	)
)

// FormatSRTTimestamp renders a duration as HH:MM:SS,mmm. Hours grow past
// two digits instead of wrapping.
func FormatSRTTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// FormatVTTTimestamp renders a duration as HH:MM:SS.mmm.
func FormatVTTTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	millis := int(d/time.Millisecond) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// ParseSRTTimestamp parses HH:MM:SS,mmm into a duration. A '.' millisecond
// separator is tolerated on read even though writes always use ','.
func ParseSRTTimestamp(s string) (time.Duration, error) {
	matches := srtTimestampRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("malformed SRT timestamp: %q", s)
	}
	return composeTimestamp(matches[1], matches[2], matches[3], matches[4])
}

// ParseVTTTimestamp parses HH:MM:SS.mmm or the short MM:SS.mmm form (hours
// assumed zero) into a duration. A ',' separator is tolerated on read.
func ParseVTTTimestamp(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if matches := vttTimestampRegex.FindStringSubmatch(s); matches != nil {
		return composeTimestamp(matches[1], matches[2], matches[3], matches[4])
	}

	if matches := vttShortTimestampRegex.FindStringSubmatch(s); matches != nil {
		return composeTimestamp("00", matches[1], matches[2], matches[3])
	}

	return 0, fmt.Errorf("malformed VTT timestamp: %q", s)
}

func composeTimestamp(hours, minutes, seconds, millis string) (time.Duration, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
