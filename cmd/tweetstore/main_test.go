package main

import (
	"errors"
	"testing"

	"github.com/ASHISH26940/tweetstore/internal/config"
	"github.com/ASHISH26940/tweetstore/internal/store"
)

func TestSeed_DefaultTweets(t *testing.T) {
	st := store.NewStore()
	if err := seed(st, config.New().Seeds); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tweets := st.List()
	want := []config.Seed{
		{Author: "zig", Message: "Hello, world!"},
		{Author: "qwe", Message: "Hi !"},
	}
	if len(tweets) != len(want) {
		t.Fatalf("expected %d seeded tweets, got %d", len(want), len(tweets))
	}
	for i, tw := range tweets {
		if tw.Author != want[i].Author || tw.Message != want[i].Message || tw.Likes != 0 || tw.ID == "" {
			t.Errorf("tweet %d: expected %+v with 0 likes, got %+v", i, want[i], tw)
		}
	}
}

func TestSeed_StopsOnStoreError(t *testing.T) {
	st := store.NewStore(store.WithIDGenerator(func() string { return "same" }))

	err := seed(st, config.DefaultSeeds())
	if !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if st.Len() != 1 {
		t.Errorf("expected only the first seed to be stored, got %d", st.Len())
	}
}
