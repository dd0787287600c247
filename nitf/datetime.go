package nitf

import (
	"fmt"
	"strings"
	"time"
)

// NITF date/time fields come in the NITF 2.1 form CCYYMMDDhhmmss or the
// NITF 2.0 form DDHHMMSSZMONYY. Decoders sometimes hand over an already
// normalized RFC 3339 value instead, so parsing is lenient and "multi-format".
// Unknown components are encoded with '-' characters by the file producer;
// such partial values cannot be converted to an instant.

var nitfTimeLayouts = []string{
	"20060102150405",
	"02150405ZJan06",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// DateTime is the raw value of a NITF date/time field. The empty value means
// the field was absent.
type DateTime string

// IsZero reports whether the field was absent
func (dt DateTime) IsZero() bool {
	return strings.TrimSpace(string(dt)) == ""
}

// Time converts the field into an instant in UTC
func (dt DateTime) Time() (time.Time, error) {
	return ParseNitfTime(string(dt))
}

// ParseNitfTime is a drop-in replacement for time.Parse, matching against
// every known NITF date/time format
func ParseNitfTime(nitfTime string) (time.Time, error) {
	value := strings.TrimSpace(nitfTime)
	if strings.Contains(value, "-") && !strings.Contains(value, "T") {
		return time.Time{}, fmt.Errorf("Date contains unknown components: `%s`", nitfTime)
	}
	for _, layout := range nitfTimeLayouts {
		if output, err := time.Parse(layout, value); err == nil {
			return output.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected NITF time format: `%s`", nitfTime)
}
