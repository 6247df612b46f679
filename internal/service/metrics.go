package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	likeOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessclub_like_outcomes_total",
			Help: "Like engine results partitioned by resulting state",
		},
		[]string{"state"},
	)

	tagVoteOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessclub_tag_vote_outcomes_total",
			Help: "Tag-vote engine results partitioned by resulting state",
		},
		[]string{"state"},
	)

	// Attempts that lost a race on a unique key and were decided again.
	engineRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chessclub_engine_retries_total",
			Help: "Engine decisions retried after a concurrent write on the same key",
		},
		[]string{"engine"},
	)
)
