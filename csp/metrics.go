package csp

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opSend    = "send"
	opReceive = "receive"

	outcomeHandoff  = "handoff"
	outcomeBuffered = "buffered"
	outcomeParked   = "parked"
	outcomeClosed   = "closed"
	outcomeNoMatch  = "no_match"

	outcomeImmediate = "immediate"
	outcomeFallback  = "fallback"
)

var channelOpsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "csp_channel_operations_total",
		Help: "channel send and receive operations by how they were matched",
	},
	[]string{"op", "outcome"},
)

var selectCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "csp_select_total",
		Help: "select calls by how they were resolved",
	},
	[]string{"outcome"},
)

var closedCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "csp_channels_closed_total",
		Help: "channels closed",
	},
)

var parkedGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "csp_parked_goroutines",
		Help: "goroutines currently parked in send, receive or select",
	},
)

func init() {
	prometheus.MustRegister(channelOpsCounter, selectCounter, closedCounter, parkedGauge)
}

func observeOp(op, outcome string) {
	channelOpsCounter.WithLabelValues(op, outcome).Inc()
}
