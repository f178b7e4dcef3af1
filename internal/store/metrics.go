package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dispatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_dispatches_total",
			Help: "Total number of actions dispatched through the state engine",
		},
		[]string{"action"},
	)

	snapshotWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "store_snapshot_write_failures_total",
			Help: "Total number of swallowed cart snapshot write failures",
		},
	)
)
