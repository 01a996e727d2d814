// Package store contains the core logic for the in-memory tweet store.
// It is designed to be thread-safe for concurrent access.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is a thread-safe, insertion-ordered collection of tweets.
// All operations are serialized through a single RWMutex, so each one
// appears atomic to concurrent callers.
type Store struct {
	mu     sync.RWMutex
	tweets []Tweet
	index  map[string]int // tweet ID -> position in tweets

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp new tweets.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how tweet IDs are generated.
// The generator is called with the store's write lock held, so it must not
// call back into the store. A repeated ID is retried up to maxIDAttempts times.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// NewStore initializes and returns a new empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tweets: make([]Tweet, 0),
		index:  make(map[string]int),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of every tweet in insertion order.
func (s *Store) List() []Tweet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tweet, len(s.tweets))
	copy(out, s.tweets)
	return out
}

// Len returns the number of stored tweets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tweets)
}

// maxIDAttempts bounds how often Append asks for a fresh ID after a collision.
const maxIDAttempts = 3

// Append stores a new tweet with zero likes and returns it.
// Author and message are kept exactly as given. An existing tweet is never
// replaced: if no unused ID can be generated, ErrDuplicateID is returned.
func (s *Store) Append(author, message string) (Tweet, error) {
	tweet := Tweet{
		Author:    author,
		Message:   message,
		CreatedAt: NewTimestamp(s.now()),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; ; attempt++ {
		tweet.ID = s.newID()
		if _, taken := s.index[tweet.ID]; !taken {
			break
		}
		if attempt+1 == maxIDAttempts {
			return Tweet{}, &TweetError{ID: tweet.ID, Err: ErrDuplicateID}
		}
	}

	s.index[tweet.ID] = len(s.tweets)
	s.tweets = append(s.tweets, tweet)
	return tweet, nil
}

// IncrementLikes adds one like to the tweet with the given ID and returns
// the updated tweet. A tweet already at MaxLikes is left untouched and
// ErrLikesOverflow is returned.
func (s *Store) IncrementLikes(id string) (Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return Tweet{}, &TweetError{ID: id, Err: ErrNotFound}
	}

	tweet := &s.tweets[i]
	if tweet.Likes == MaxLikes {
		return *tweet, &TweetError{ID: id, Err: ErrLikesOverflow}
	}
	tweet.Likes++
	return *tweet, nil
}
