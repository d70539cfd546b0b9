package decode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Raw values arrive as strings, json.Number (json decoded with
// UseNumber) or native booleans. The helpers below coerce them into the
// record's attribute types and reject everything else.

func asInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Int64()
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to integer", v)
	}
}

func asUint(v any) (uint64, error) {
	n, err := asInt(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative flag value %d", n)
	}
	return uint64(n), nil
}

func asString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	default:
		return "", fmt.Errorf("cannot coerce %T to string", v)
	}
}

func asStringPtr(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := asString(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// asBool accepts native booleans, the export's "1"/"0" string encoding
// (any string other than "1" is false) and plain numbers.
func asBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return b == "1", nil
	case json.Number:
		n, err := b.Int64()
		if err != nil {
			return false, fmt.Errorf("not a boolean: %q", b.String())
		}
		return n != 0, nil
	default:
		return false, fmt.Errorf("cannot coerce %T to boolean", v)
	}
}

// asTime converts epoch milliseconds into an instant in the display
// timezone.
func asTime(v any, loc *time.Location) (time.Time, error) {
	ms, err := asInt(v)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).In(loc), nil
}

// asDuration converts a second count into a time span. Call durations
// are never negative.
func asDuration(v any) (time.Duration, error) {
	secs, err := asInt(v)
	if err != nil {
		return 0, err
	}
	if secs < 0 {
		return 0, fmt.Errorf("negative duration %d", secs)
	}
	return time.Duration(secs) * time.Second, nil
}
