package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no tweet has the requested ID.
	ErrNotFound = errors.New("tweet not found")
	// ErrLikesOverflow is returned when a tweet already has MaxLikes likes.
	ErrLikesOverflow = errors.New("tweet likes limit reached")
	// ErrDuplicateID is returned when the ID generator keeps producing IDs already in use.
	ErrDuplicateID = errors.New("tweet id already in use")
)

// TweetError ties a store error to the tweet ID that caused it.
type TweetError struct {
	ID  string
	Err error
}

func (e *TweetError) Error() string {
	return fmt.Sprintf("tweet %q: %v", e.ID, e.Err)
}

func (e *TweetError) Unwrap() error {
	return e.Err
}
