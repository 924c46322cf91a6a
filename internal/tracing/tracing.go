// Package tracing configures OpenTelemetry for gcpblocks.
//
// Spans are exported over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT is set,
// pretty-printed to a writer when stdout tracing is requested, and dropped
// otherwise.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/gcpblocks/internal/logger"
)

const instrumentationName = "github.com/custodia-labs/gcpblocks"

// EnvOTLPEndpoint enables the OTLP exporter when set.
const EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// version is set at build time with -ldflags.
var version = "dev"

var tp *sdktrace.TracerProvider

// Options controls which exporters are installed.
type Options struct {
	// Component is used as the service name.
	Component string
	// Stdout, when non-nil, receives pretty-printed spans.
	Stdout io.Writer
	// OTLPEndpoint overrides OTEL_EXPORTER_OTLP_ENDPOINT.
	OTLPEndpoint string
}

// Tracer returns the package tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion(version),
		trace.WithSchemaURL(semconv.SchemaURL),
	)
}

// Init installs a tracer provider. With no exporter configured it leaves
// the global no-op provider in place.
func Init(ctx context.Context, opts Options) error {
	endpoint := opts.OTLPEndpoint
	if endpoint == "" {
		endpoint = os.Getenv(EnvOTLPEndpoint)
	}

	var tracerOpts []sdktrace.TracerProviderOption

	if endpoint != "" {
		// The exporter reads the endpoint and headers from the standard
		// OTEL_EXPORTER_OTLP_* variables when no explicit option is given.
		var clientOpts []otlptracehttp.Option
		if opts.OTLPEndpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpointURL(opts.OTLPEndpoint))
		}
		otlpExp, err := otlptracehttp.New(ctx, clientOpts...)
		if err != nil {
			return fmt.Errorf("creating OTLP trace exporter: %w", err)
		}
		tracerOpts = append(tracerOpts, sdktrace.WithBatcher(otlpExp))
	}

	if opts.Stdout != nil {
		stdoutExp, err := stdouttrace.New(stdouttrace.WithPrettyPrint(), stdouttrace.WithWriter(opts.Stdout))
		if err != nil {
			return fmt.Errorf("creating stdout trace exporter: %w", err)
		}
		tracerOpts = append(tracerOpts, sdktrace.WithSyncer(stdoutExp))
	}

	if len(tracerOpts) == 0 {
		logger.Debug("tracing disabled: no exporter configured")
		return nil
	}

	tracerOpts = append(tracerOpts, sdktrace.WithResource(tracingResource(opts.Component)))
	tp = sdktrace.NewTracerProvider(tracerOpts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return nil
}

func tracingResource(component string) *resource.Resource {
	if component == "" {
		component = "gcpblocks"
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			semconv.ServiceNameKey.String(component),
			semconv.ServiceVersionKey.String(version),
			attribute.String("gcpblocks.component", component),
		),
	)
	if err != nil {
		logger.WithFields(logger.Fields{"error": err}).Warn("error merging tracing resource")
		return resource.Default()
	}
	return res
}

// Shutdown flushes and stops the tracer provider, if one was installed.
func Shutdown(ctx context.Context) {
	if tp == nil {
		return
	}

	// detach from the parent's cancellation so spans still flush on exit
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := tp.ForceFlush(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Error flushing tracer provider")
	}
	if err := tp.Shutdown(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Error("Error shutting down tracer provider")
	}
	tp = nil
}

// Version returns the version baked into the binary at build time.
func Version() string {
	return version
}
