package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unbabel/tapi/client/internal/types"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unbabel_client",
			Name:      "requests_total",
			Help:      "Requests dispatched to the transport, by verb and HTTP status (\"error\" for transport failures).",
		},
		[]string{"method", "status"},
	)

	invalidArgumentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unbabel_client",
			Name:      "invalid_arguments_total",
			Help:      "Calls rejected by local validation before any request was sent.",
		},
		[]string{"reason"},
	)
)

func observe(method string, resp *types.Response, err error) {
	status := "error"
	if err == nil && resp != nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(method, status).Inc()
}
