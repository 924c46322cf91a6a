package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/gcpblocks/internal/blocks"
	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driven"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
	"github.com/custodia-labs/gcpblocks/internal/logger"
	"github.com/custodia-labs/gcpblocks/internal/tracing"
)

// Ensure InvokerService implements the interface.
var _ driving.BlockInvoker = (*InvokerService)(nil)

const maskedValue = "********"

// secretKey matches input names whose values must not reach history.
var secretKey = regexp.MustCompile(`(?i)(access_?token|id_?token|secret|password|credential|private)`)

// InvokerService runs blocks end to end.
type InvokerService struct {
	registry    driving.BlockRegistry
	settings    driving.SettingsService
	credentials *CredentialResolver
	transport   driven.HTTPTransport
	history     driven.HistoryStore
	now         func() time.Time
}

// NewInvokerService creates an invoker. history may be nil to disable recording.
func NewInvokerService(
	registry driving.BlockRegistry,
	settings driving.SettingsService,
	credentials *CredentialResolver,
	transport driven.HTTPTransport,
	history driven.HistoryStore,
) *InvokerService {
	return &InvokerService{
		registry:    registry,
		settings:    settings,
		credentials: credentials,
		transport:   transport,
		history:     history,
		now:         time.Now,
	}
}

// Preview builds the request a block would send, without credentials.
func (s *InvokerService) Preview(_ context.Context, blockID string, inputs map[string]any) (*domain.APIRequest, error) {
	block, err := s.registry.Get(blockID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return BuildRequest(block, inputs, settings.Project.ID)
}

// Invoke runs the block and returns its output event. A non-2xx upstream
// status comes back as *domain.APIError. Calls are never retried.
func (s *InvokerService) Invoke(ctx context.Context, blockID string, inputs map[string]any) (*domain.OutputEvent, error) {
	inv := domain.Invocation{
		ID:        uuid.NewString(),
		BlockID:   blockID,
		Inputs:    maskInputs(inputs),
		StartedAt: s.now(),
	}

	ctx, span := tracing.Tracer().Start(ctx, "gcpblocks.invoke",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("gcpblocks.block.id", blockID),
			attribute.String("gcpblocks.invocation.id", inv.ID),
		),
	)
	defer span.End()

	event, settings, err := s.invoke(ctx, span, &inv, inputs)
	inv.Duration = s.now().Sub(inv.StartedAt)

	if err != nil {
		inv.Status = domain.InvocationFailed
		inv.Error = err.Error()
		if apiErr, ok := domain.AsAPIError(err); ok {
			inv.StatusCode = apiErr.StatusCode
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		inv.Status = domain.InvocationSucceeded
		inv.StatusCode = event.StatusCode
		event.Duration = inv.Duration
	}
	if inv.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", inv.StatusCode))
	}

	s.record(ctx, settings, inv)

	logger.WithContext(ctx).WithFields(logger.Fields{
		"gcpblocks.block":      blockID,
		"gcpblocks.invocation": inv.ID,
		"gcpblocks.status":     inv.Status,
		"gcpblocks.duration":   inv.Duration.String(),
	}).Debug("block invoked")

	if err != nil {
		return nil, err
	}
	return event, nil
}

func (s *InvokerService) invoke(
	ctx context.Context,
	span trace.Span,
	inv *domain.Invocation,
	inputs map[string]any,
) (*domain.OutputEvent, *domain.AppSettings, error) {
	block, err := s.registry.Get(inv.BlockID)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.String("gcpblocks.service", block.Service.String()))

	settings, err := s.settings.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}

	req, err := BuildRequest(block, inputs, settings.Project.ID)
	if err != nil {
		return nil, settings, err
	}

	token, err := s.credentials.Resolve(ctx, settings.Auth, block.Scopes)
	if err != nil {
		return nil, settings, err
	}
	inv.CredentialSource = token.Source
	span.SetAttributes(attribute.String("gcpblocks.credential", token.Source.String()))

	resp, err := s.transport.Do(ctx, req, token)
	if err != nil {
		return nil, settings, err
	}

	event, err := newOutputEvent(inv.ID, block, resp)
	if err != nil {
		return nil, settings, err
	}
	event.CompletedAt = s.now()
	return event, settings, nil
}

// record stores the invocation when history is enabled. Failures are logged only.
func (s *InvokerService) record(ctx context.Context, settings *domain.AppSettings, inv domain.Invocation) {
	if s.history == nil || (settings != nil && !settings.History.Enabled) {
		return
	}
	if err := s.history.Record(ctx, inv); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("gcpblocks.invocation", inv.ID).
			Warn("failed to record invocation history")
	}
}

// newOutputEvent decodes the response. JSON bodies become Data, an empty
// body leaves Data nil, and other payloads are kept verbatim in Raw.
func newOutputEvent(id string, block *domain.Block, resp *domain.APIResponse) (*domain.OutputEvent, error) {
	event := &domain.OutputEvent{
		InvocationID: id,
		BlockID:      block.ID,
		StatusCode:   resp.StatusCode,
		ContentType:  resp.ContentType(),
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return event, nil
	}

	if isJSON(event.ContentType, body) {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var data any
		if err := dec.Decode(&data); err != nil {
			if block.MediaDownload {
				event.Raw = resp.Body
				return event, nil
			}
			return nil, fmt.Errorf("decode %s response: %w", block.ID, err)
		}
		event.Data = data
		return event, nil
	}

	event.Raw = resp.Body
	return event, nil
}

func isJSON(contentType string, body []byte) bool {
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
		}
	}
	return body[0] == '{' || body[0] == '['
}

// maskInputs copies inputs for history, hiding secret-looking values and
// replacing upload payloads with their size.
func maskInputs(inputs map[string]any) map[string]any {
	if len(inputs) == 0 {
		return nil
	}
	masked := make(map[string]any, len(inputs))
	for k, v := range inputs {
		switch {
		case k == blocks.MediaKey:
			masked[k] = fmt.Sprintf("[%d bytes]", len(mediaBytes(v)))
		case secretKey.MatchString(k):
			masked[k] = maskedValue
		default:
			masked[k] = v
		}
	}
	return masked
}
