// Package server handles the HTTP API for the tweet store.
package server

import (
	"net/http"
	"time"

	"github.com/ASHISH26940/tweetstore/internal/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// TweetStore is the interface our server needs to interact with the storage layer.
// By depending on an interface, we can easily mock the store in our tests.
type TweetStore interface {
	List() []store.Tweet
	Append(author, message string) (store.Tweet, error)
	IncrementLikes(id string) (store.Tweet, error)
}

// Server is the HTTP server for the tweet API and its static front end.
type Server struct {
	store     TweetStore
	staticDir string
	router    *mux.Router
	handler   http.Handler
}

// New creates a new Server instance. Files under staticDir are served at
// /static/ and staticDir/index.html at /.
func New(st TweetStore, staticDir string, logger zerolog.Logger) *Server {
	s := &Server{
		store:     st,
		staticDir: staticDir,
		router:    mux.NewRouter(),
	}
	s.registerRoutes()
	s.handler = withAccessLog(logger, s.router)
	return s
}

// ServeHTTP makes our Server a standard http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// registerRoutes sets up the HTTP routing for the server.
func (s *Server) registerRoutes() {
	// mux skips Use middleware when nothing matches, so the fallbacks are wrapped directly.
	s.router.Use(metricsMiddleware)
	s.router.NotFoundHandler = metricsMiddleware(http.NotFoundHandler())
	s.router.MethodNotAllowedHandler = metricsMiddleware(http.HandlerFunc(methodNotAllowed))

	s.router.HandleFunc("/api/tweets", s.handleListTweets).Methods(http.MethodGet)
	s.router.HandleFunc("/api/tweets", s.handleCreateTweet).Methods(http.MethodPost)
	s.router.HandleFunc("/api/tweets/{id}/like-tweet", s.handleLikeTweet).Methods(http.MethodPost)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	s.router.PathPrefix("/static/").
		Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))).
		Methods(http.MethodGet, http.MethodHead)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// withAccessLog attaches logger to every request and logs one line per response.
func withAccessLog(logger zerolog.Logger, next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	h = hlog.RemoteAddrHandler("ip")(h)
	h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
	return hlog.NewHandler(logger)(h)
}
