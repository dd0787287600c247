package model

import "time"

// StandardTimeLayout is the format date attributes take once serialized
const StandardTimeLayout = "2006-01-02T15:04:05.999999999Z07:00" // time.RFC3339Nano

// FormatTime renders a date attribute in UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(StandardTimeLayout)
}

// serializable converts attribute values into their serialized form; dates
// become strings, everything else is left alone
func serializable(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return FormatTime(*v)
	}
	return value
}
