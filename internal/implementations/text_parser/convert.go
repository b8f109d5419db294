package textparser

import (
	"errors"
	"fmt"
	"regexp"
	"schedtext/internal/core/domain/recurrence"
	"strconv"
)

var ErrConvert = errors.New("token can not be converted")

var (
	reLeadingDigits = regexp.MustCompile(`^\d+`)
	reClock         = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm|a|p)?$`)
)

// numericValue converts rank, day name, month name and year tokens.
func numericValue(tok *Token) (int, error) {
	switch tok.Kind {
	case KindRank:
		if tok.Text == "a" || tok.Text == "an" {
			return 1, nil
		}
		digits := reLeadingDigits.FindString(tok.Text)
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 0, fmt.Errorf("%w: rank %q: %v", ErrConvert, tok.Text, err)
		}
		return n, nil
	case KindDayName, KindMonthName:
		n, ok := lookupName(tok.Text)
		if !ok {
			return 0, fmt.Errorf("%w: unknown name %q", ErrConvert, tok.Text)
		}
		return n, nil
	case KindYearIndex:
		n, err := strconv.Atoi(tok.Text)
		if err != nil {
			return 0, fmt.Errorf("%w: year %q: %v", ErrConvert, tok.Text, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is not numeric", ErrConvert, tok.Kind)
	}
}

// normalizeClock renders a clock token as 24 hour "HH:MM".
// 12am is midnight and 12pm is noon.
func normalizeClock(text string) (string, error) {
	m := reClock.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("%w: time %q", ErrConvert, text)
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("%w: time %q: %v", ErrConvert, text, err)
	}
	minute := m[2]
	if minute == "" {
		minute = "00"
	}
	switch m[3] {
	case "pm", "p":
		if hour < 12 {
			hour += 12
		}
	case "am", "a":
		if hour == 12 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%s", hour, minute), nil
}

// tokenValue converts a value-bearing token into a builder value.
func tokenValue(tok *Token) (recurrence.Value, error) {
	if tok.Kind == KindTime {
		clock, err := normalizeClock(tok.Text)
		if err != nil {
			return recurrence.Value{}, err
		}
		return recurrence.Clock(clock), nil
	}
	n, err := numericValue(tok)
	if err != nil {
		return recurrence.Value{}, err
	}
	return recurrence.Number(n), nil
}
