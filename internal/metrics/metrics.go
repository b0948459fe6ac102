package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts handled requests by route template, method and status.
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trivia_http_requests_total",
		Help: "Total number of HTTP requests handled",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records handler latency by route template and method.
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "trivia_http_request_duration_seconds",
		Help:    "Latency in seconds of HTTP request handling",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// QuizQuestionsServed counts quiz turns by outcome: "question" when a
// question was returned, "exhausted" when none remained.
var QuizQuestionsServed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "trivia_quiz_questions_served_total",
		Help: "Quiz next-question requests by outcome",
	},
	[]string{"outcome"},
)

const (
	QuizOutcomeQuestion  = "question"
	QuizOutcomeExhausted = "exhausted"
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, QuizQuestionsServed)
}
