package server

import (
	"errors"
	"net/http"

	"github.com/ASHISH26940/tweetstore/internal/store"
)

// errorKind enumerates every failure a handler can report to a client.
type errorKind int

const (
	kindInternal errorKind = iota
	kindDecode
	kindNotFound
	kindOverflow
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	ID  string `json:"id,omitempty"`
	Err string `json:"err"`
}

// decodeError marks a request body that could not be decoded.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode request body: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func classify(err error) errorKind {
	var dErr *decodeError
	switch {
	case errors.As(err, &dErr):
		return kindDecode
	case errors.Is(err, store.ErrNotFound):
		return kindNotFound
	case errors.Is(err, store.ErrLikesOverflow):
		return kindOverflow
	default:
		return kindInternal
	}
}

// errorResponse is the single place errors become status codes and bodies.
func errorResponse(err error) (int, errorBody) {
	var id string
	var tErr *store.TweetError
	if errors.As(err, &tErr) {
		id = tErr.ID
	}

	switch classify(err) {
	case kindDecode:
		return http.StatusBadRequest, errorBody{Err: "Invalid request body"}
	case kindNotFound:
		return http.StatusNotFound, errorBody{ID: id, Err: "Tweet not found"}
	case kindOverflow:
		return http.StatusConflict, errorBody{ID: id, Err: "Tweet likes limit reached"}
	default:
		return http.StatusInternalServerError, errorBody{Err: "Internal server error"}
	}
}
