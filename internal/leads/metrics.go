package leads

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bildo_lead_submissions_total",
		Help: "Lead form submissions by outcome code",
	}, []string{"channel", "outcome"})

	deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bildo_lead_deliveries_total",
		Help: "Lead hand-offs to delivery collaborators by outcome",
	}, []string{"collaborator", "outcome"})

	partialDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bildo_lead_partial_delivery_failures_total",
		Help: "Collaborator failures on leads that another collaborator accepted",
	}, []string{"collaborator"})

	deliveryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bildo_lead_delivery_duration_seconds",
		Help:    "Time spent handing a lead to a delivery collaborator",
		Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"collaborator"})
)

// ObserveSubmission counts a submission attempt. outcome is "accepted" or
// the error code that stopped it.
func ObserveSubmission(channel, outcome string) {
	submissionsTotal.WithLabelValues(channel, outcome).Inc()
}
