package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by spans and metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrEntity      = attribute.Key("entity")
	AttrOperation   = attribute.Key("operation")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// PositionWrites counts position rows rewritten by ordering operations,
	// labelled by entity (column, note) and operation.
	PositionWrites metric.Int64Counter
}

// NewMetrics creates the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	histograms := []struct {
		dst        *metric.Float64Histogram
		name, help string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of board API requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of outbound session lookups"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.help), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst              *metric.Int64Counter
		name, help, unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Board API requests served", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Outbound session lookups", "{request}"},
		{&m.PositionWrites, "board.position.writes", "Position rows rewritten by board ordering operations", "{row}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.help), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}

	return m, nil
}

// RecordPositionWrites adds n rewritten rows for entity and operation.
// It is a no-op on a nil receiver or when n is zero.
func (m *Metrics) RecordPositionWrites(ctx context.Context, entity, operation string, n int) {
	if m == nil || m.PositionWrites == nil || n == 0 {
		return
	}
	m.PositionWrites.Add(ctx, int64(n), metric.WithAttributes(
		AttrEntity.String(entity),
		AttrOperation.String(operation),
	))
}
