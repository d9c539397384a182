package models

import (
	"encoding/json"
	"time"
)

// isoLayout is the UTC millisecond layout a browser writes for
// Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a time.Time that encodes as an ISO-8601 UTC string with
// millisecond precision and decodes any RFC 3339 value.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds and moves it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// String formats ts the way it is stored.
func (ts Timestamp) String() string {
	return ts.UTC().Format(isoLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
