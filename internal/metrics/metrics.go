package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the MOF workflow, exposed on /metrics. The result label is
// "ok" for an applied operation or the rejected precondition otherwise.
var (
	ScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mof_item_scans_total",
		Help: "Item scans processed, partitioned by result.",
	}, []string{"result"})

	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mof_item_verifications_total",
		Help: "Item verifications processed, partitioned by result.",
	}, []string{"result"})

	MofsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mof_forms_created_total",
		Help: "MOFs created.",
	})

	MofsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mof_forms_completed_total",
		Help: "MOFs that reached Completed status.",
	})
)

const (
	ResultOK               = "ok"
	ResultNotFound         = "not_found"
	ResultMismatch         = "part_mismatch"
	ResultAlreadyProcessed = "already_processed"
	ResultOwnership        = "wrong_mof"
	ResultNotPicked        = "not_picked"
)
