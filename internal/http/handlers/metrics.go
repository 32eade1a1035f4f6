package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TasksCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_created_total",
			Help: "Tasks stored through the form or the API",
		},
	)
	TasksDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tasks_deleted_total",
			Help: "Delete requests that completed without error",
		},
	)
)

func init() {
	prometheus.MustRegister(TasksCreated)
	prometheus.MustRegister(TasksDeleted)
}
