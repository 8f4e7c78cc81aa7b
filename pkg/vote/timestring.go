package vote

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ErrInvalidTimestring is returned when a cooldown text can't be parsed.
var ErrInvalidTimestring = errors.New("invalid timestring")

var timestringRe = regexp.MustCompile(`^(?:(\d+)d)?\s*(?:(\d+)h)?\s*(?:(\d+)m)?\s*(?:(\d+)s)?$`)

var timestringUnits = []time.Duration{24 * time.Hour, time.Hour, time.Minute, time.Second}

// ParseTimestring parses a game cooldown such as "1d 2h 3m 4s".
// Every unit is optional but at least one must be present.
func ParseTimestring(s string) (time.Duration, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, ErrInvalidTimestring
	}

	groups := timestringRe.FindStringSubmatch(s)
	if groups == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestring, s)
	}

	var d time.Duration
	for i, unit := range timestringUnits {
		if groups[i+1] == "" {
			continue
		}

		n, err := strconv.Atoi(groups[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimestring, s, err)
		}

		d += time.Duration(n) * unit
	}

	return d, nil
}

// TimeLeft returns the cooldown left at now for a cooldown shown in the given message.
// The time elapsed since the message was last written is subtracted.
func TimeLeft(m *discordgo.Message, timestring string, now time.Time) (time.Duration, error) {
	d, err := ParseTimestring(timestring)
	if err != nil {
		return 0, err
	}

	written := m.Timestamp
	if m.EditedTimestamp != nil {
		written = *m.EditedTimestamp
	}

	return d - now.Sub(written), nil
}
