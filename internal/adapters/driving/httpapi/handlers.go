package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/gcpblocks/internal/core/domain"
	"github.com/custodia-labs/gcpblocks/internal/core/ports/driving"
)

// InvokeRequest is the body of an invoke or preview call.
type InvokeRequest struct {
	// Inputs are the block inputs.
	Inputs map[string]any `json:"inputs"`
	// MediaBase64 carries a binary upload payload, placed in the media input.
	MediaBase64 string `json:"media_base64,omitempty"`
}

// PreviewResponse describes the request a block would send.
type PreviewResponse struct {
	Method      string              `json:"method"`
	URL         string              `json:"url"`
	Header      map[string][]string `json:"header,omitempty"`
	ContentType string              `json:"content_type,omitempty"`
	Body        json.RawMessage     `json:"body,omitempty"`
	BodyBytes   int                 `json:"body_bytes"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"blocks": len(s.ports.Registry.List(driving.BlockFilter{})),
	})
}

func (s *Server) handleServices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"services": s.ports.Registry.Services()})
}

func (s *Server) handleListBlocks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	svc := domain.Service(q.Get("service"))
	if svc != "" && !svc.IsValid() {
		writeDomainError(w, fmt.Errorf("%w: unknown service %q", domain.ErrInvalidInput, svc))
		return
	}

	blocks := s.ports.Registry.List(driving.BlockFilter{Service: svc, Term: q.Get("filter")})
	writeJSON(w, http.StatusOK, map[string]any{"blocks": blocks, "count": len(blocks)})
}

func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	block, err := s.ports.Registry.Get(mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, block)
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	inputs, err := s.decodeInputs(w, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	event, err := s.ports.Invoker.Invoke(r.Context(), mux.Vars(r)["id"], inputs)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	inputs, err := s.decodeInputs(w, r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	req, err := s.ports.Invoker.Preview(r.Context(), mux.Vars(r)["id"], inputs)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := PreviewResponse{
		Method:      req.Method,
		URL:         req.URL,
		Header:      req.Header,
		ContentType: req.ContentType,
		BodyBytes:   len(req.Body),
	}
	if json.Valid(req.Body) {
		resp.Body = req.Body
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeDomainError(w, domain.ErrHistoryUnavailable)
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeDomainError(w, fmt.Errorf("%w: limit must be a non-negative integer", domain.ErrInvalidInput))
			return
		}
		limit = n
	}

	list, err := s.ports.History.List(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if list == nil {
		list = []domain.Invocation{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"invocations": list})
}

func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	if s.ports.History == nil {
		writeDomainError(w, domain.ErrHistoryUnavailable)
		return
	}

	inv, err := s.ports.History.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// decodeInputs reads an InvokeRequest. An empty body means no inputs.
func (s *Server) decodeInputs(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: request body exceeds %d bytes", domain.ErrInvalidInput, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrInvalidInput, err)
	}

	var req InvokeRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, fmt.Errorf("%w: request body must be a JSON object: %v", domain.ErrInvalidInput, err)
		}
	}
	if req.Inputs == nil {
		req.Inputs = map[string]any{}
	}

	if req.MediaBase64 != "" {
		media, err := base64.StdEncoding.DecodeString(req.MediaBase64)
		if err != nil {
			return nil, fmt.Errorf("%w: media_base64 is not valid base64", domain.ErrInvalidInput)
		}
		req.Inputs["media"] = media
	}
	return req.Inputs, nil
}
