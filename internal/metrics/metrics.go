package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GuardDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskdeck_guard_decisions_total",
		Help: "Route guard outcomes by decision (allow, redirect_login, redirect_dashboard).",
	}, []string{"decision"})

	RootRedirectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskdeck_root_redirects_total",
		Help: "Root page redirects by destination (dashboard, login).",
	}, []string{"destination"})

	TasksCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdeck_tasks_created_total",
		Help: "Tasks created through the API.",
	})

	TasksCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdeck_tasks_completed_total",
		Help: "Tasks marked complete through the API.",
	})
)
