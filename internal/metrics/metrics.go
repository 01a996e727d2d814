// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	TweetsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tweets_created_total",
		Help: "Number of tweets appended to the store",
	})

	TweetLikesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tweet_likes_total",
		Help: "Like attempts by outcome",
	}, []string{"outcome"})
)

// Like outcomes.
const (
	LikeOK       = "ok"
	LikeNotFound = "not_found"
	LikeOverflow = "overflow"
)

// RegisterTweetCount exports the current store size as a gauge.
// It must be called at most once per process.
func RegisterTweetCount(count func() int) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "tweets_stored",
		Help: "Number of tweets currently held in memory",
	}, func() float64 { return float64(count()) })
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}
