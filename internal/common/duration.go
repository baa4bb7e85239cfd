package common

import (
	"time"
)

// Duration is a time.Duration that decodes from TOML strings like "60s"
// or "1h". TOML has no duration type, so plain time.Duration fields only
// accept integer nanosecond values; this wrapper accepts the readable form.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
