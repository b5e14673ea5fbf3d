package flow

import "time"

// timestampLayouts are tried in order. Tracker exports are inconsistent
// about zone notation and sub-second precision, so both the colon and
// no-colon offset forms show up, as do naive timestamps and bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a tracker timestamp in any supported layout and
// normalizes it to UTC. The second return is false when no layout matches.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
