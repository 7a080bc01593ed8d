package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ServerActiveRequests  metric.Int64UpDownCounter
	ServerResponseSize    metric.Int64Histogram
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	DBQueryDuration       metric.Float64Histogram
	AuthVerifyTotal       metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	histograms := []struct {
		dst         *metric.Float64Histogram
		name, about string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of identity provider calls"},
		{&m.DBQueryDuration, "db.client.operation.duration", "Duration of store queries"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.about), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst               *metric.Int64Counter
		name, about, unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Identity provider calls", "{request}"},
		{&m.AuthVerifyTotal, "auth.verify.total", "Bearer credential verifications by outcome", "{verification}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.about), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	active, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("In-flight incoming HTTP requests"), metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("creating http.server.active_requests: %w", err)
	}
	m.ServerActiveRequests = active

	size, err := meter.Int64Histogram("http.server.response.body.size",
		metric.WithDescription("Size of HTTP response bodies"), metric.WithUnit("By"))
	if err != nil {
		return nil, fmt.Errorf("creating http.server.response.body.size: %w", err)
	}
	m.ServerResponseSize = size

	return m, nil
}
