package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/ASHISH26940/tweetstore/internal/metrics"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

const (
	logTweetID     = "tweetID"
	maxRequestBody = 1 << 20
)

// tweetRequest is the body of POST /api/tweets. Both fields are required,
// but may be empty strings.
type tweetRequest struct {
	Author  *string `json:"author"`
	Message *string `json:"message"`
}

// handleListTweets returns every tweet in insertion order.
func (s *Server) handleListTweets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.store.List())
}

// handleCreateTweet decodes a tweet request and appends it to the store.
func (s *Server) handleCreateTweet(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTweetRequest(w, r)
	if err != nil {
		hlog.FromRequest(r).Debug().Err(err).Msg("Rejected tweet request")
		writeError(w, r, err)
		return
	}

	tweet, err := s.store.Append(*req.Author, *req.Message)
	if err != nil {
		writeError(w, r, err)
		return
	}
	metrics.TweetsCreatedTotal.Inc()

	hlog.FromRequest(r).Info().Str(logTweetID, tweet.ID).Msg("Tweet created")
	writeJSON(w, r, http.StatusCreated, tweet)
}

// handleLikeTweet adds one like to the tweet named in the path.
func (s *Server) handleLikeTweet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tweet, err := s.store.IncrementLikes(id)
	if err != nil {
		switch classify(err) {
		case kindNotFound:
			metrics.TweetLikesTotal.WithLabelValues(metrics.LikeNotFound).Inc()
		case kindOverflow:
			metrics.TweetLikesTotal.WithLabelValues(metrics.LikeOverflow).Inc()
		}
		hlog.FromRequest(r).Warn().Err(err).Str(logTweetID, id).Msg("Like rejected")
		writeError(w, r, err)
		return
	}

	metrics.TweetLikesTotal.WithLabelValues(metrics.LikeOK).Inc()
	hlog.FromRequest(r).Debug().Str(logTweetID, id).Uint8("likes", tweet.Likes).Msg("Tweet liked")
	writeJSON(w, r, http.StatusOK, tweet)
}

// handleIndex serves the front end's entry page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
}

func decodeTweetRequest(w http.ResponseWriter, r *http.Request) (tweetRequest, error) {
	var req tweetRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		return req, &decodeError{err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return req, &decodeError{err: errors.New("unexpected data after JSON object")}
	}
	if req.Author == nil {
		return req, &decodeError{err: errors.New("missing field author")}
	}
	if req.Message == nil {
		return req, &decodeError{err: errors.New("missing field message")}
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		hlog.FromRequest(r).Error().Err(err).Msg("Request failed")
	}
	writeJSON(w, r, status, body)
}
