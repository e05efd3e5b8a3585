package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter                 metric.Meter
	requestCountGauge     metric.Int64ObservableGauge
	endpointCountGauge    metric.Int64ObservableGauge
	connectedViewersGauge metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"hookview",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Captured request gauge (per endpoint)
	oe.requestCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.requests.captured",
		metric.WithDescription("Number of captured webhook requests per endpoint"),
		metric.WithUnit("{requests}"),
		metric.WithInt64Callback(oe.observeRequestCounts),
	)
	if err != nil {
		return fmt.Errorf("creating request count gauge: %w", err)
	}

	// Endpoint count gauge
	oe.endpointCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.endpoints.count",
		metric.WithDescription("Number of known webhook endpoints"),
		metric.WithUnit("{endpoints}"),
		metric.WithInt64Callback(oe.observeEndpointCount),
	)
	if err != nil {
		return fmt.Errorf("creating endpoint count gauge: %w", err)
	}

	// Connected viewers gauge
	oe.connectedViewersGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.viewers.connected",
		metric.WithDescription("Number of connected live stream viewers"),
		metric.WithUnit("{viewers}"),
		metric.WithInt64Callback(oe.observeConnectedViewers),
	)
	if err != nil {
		return fmt.Errorf("creating connected viewers gauge: %w", err)
	}

	return nil
}

// observeRequestCounts is a callback that reports captured requests per endpoint
func (oe *OTelExporter) observeRequestCounts(ctx context.Context, observer metric.Int64Observer) error {
	counts, err := oe.collector.GetRequestCounts(ctx)
	if err != nil {
		return err
	}

	for endpointURL, count := range counts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("endpoint.url", endpointURL),
		))
	}

	return nil
}

// observeEndpointCount is a callback that reports the number of endpoints
func (oe *OTelExporter) observeEndpointCount(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetEndpointCount(ctx)
	if err != nil {
		return err
	}

	observer.Observe(count)
	return nil
}

// observeConnectedViewers is a callback that reports live viewer connections
func (oe *OTelExporter) observeConnectedViewers(ctx context.Context, observer metric.Int64Observer) error {
	count, err := oe.collector.GetConnectedViewers(ctx)
	if err != nil {
		return err
	}

	observer.Observe(count)
	return nil
}

// Handler returns the HTTP handler serving the Prometheus exposition format
func (oe *OTelExporter) Handler() http.Handler {
	return promhttp.Handler()
}

// Shutdown flushes and stops the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	return oe.meterProvider.Shutdown(ctx)
}
