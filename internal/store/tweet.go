package store

import (
	"fmt"
	"strconv"
	"time"
)

// MaxLikes is the largest value a tweet's like counter can hold.
const MaxLikes = ^uint8(0)

// Tweet is a single record held by the store.
// Every field except Likes is fixed once the tweet is created.
type Tweet struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"created_at"`
	Likes     uint8     `json:"likes"`
}

// timestampLayout is an ISO-8601 date-time without a zone offset.
const timestampLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is a UTC instant that serializes without an offset.
type Timestamp struct {
	time.Time
}

// NewTimestamp drops the location of t and keeps the UTC wall clock.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) String() string {
	return t.UTC().Format(timestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}
