package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownPhrase is returned by Parse for text it cannot resolve to a day.
var ErrUnknownPhrase = errors.New("unknown relative date")

var offsetRe = regexp.MustCompile(`^in (\d+) (day|week|month)s?$`)

// Parser resolves dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser loads the IANA zone name, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a whole relative phrase to the start of that day. It accepts
// every date keyword of the extraction table ("today", "next friday", ...),
// "yesterday" and "in N days|weeks|months".
func (p *Parser) Parse(phrase string, now time.Time) (time.Time, error) {
	phrase = strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	now = now.In(p.location)

	if phrase == "yesterday" {
		return startOfDay(now.AddDate(0, 0, -1)), nil
	}
	for _, k := range dateKeywords {
		if k.Keyword == phrase {
			return k.Resolve(now), nil
		}
	}

	m := offsetRe.FindStringSubmatch(phrase)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
	}
	switch m[2] {
	case "week":
		return startOfDay(now.AddDate(0, 0, 7*n)), nil
	case "month":
		return startOfDay(now.AddDate(0, n, 0)), nil
	default:
		return startOfDay(now.AddDate(0, 0, n)), nil
	}
}

// EndOfDay returns the last second of the day that starts at day.
func (p *Parser) EndOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Second)
}
