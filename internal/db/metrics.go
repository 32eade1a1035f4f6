package db

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConnectAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_connect_attempts_total",
			Help: "Database connection attempts by result",
		},
		[]string{"result"},
	)
	ConnectExhausted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "db_connect_exhausted_total",
			Help: "Acquisitions that failed after every retry",
		},
	)
)

func init() {
	prometheus.MustRegister(ConnectAttempts)
	prometheus.MustRegister(ConnectExhausted)
}
