package handler

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"veracity/internal/decision"
	dErrors "veracity/pkg/domain-errors"
	"veracity/pkg/platform/httputil"
	"veracity/pkg/platform/middleware/device"
	"veracity/pkg/requestcontext"
)

// maxFormBytes bounds url-encoded and multipart bodies.
const maxFormBytes = 1 << 20

// Service defines the interface for decision operations.
type Service interface {
	Evaluate(ctx context.Context, req decision.EvaluateRequest) (*decision.EvaluateResult, error)
	Policy() decision.Policy
}

// Handler wires check endpoints to the decision service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a check handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts check endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/check", h.HandleCheck)
	r.Get("/check/policy", h.HandlePolicy)
}

// HandleCheck handles POST /check requests with a JSON or form body.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var (
		req *CheckRequest
		ok  bool
	)
	switch {
	case isEmptyBody(r):
		req, ok = h.rejectEmpty(w, r, requestID)
	case isForm(r):
		req, ok = h.decodeForm(w, r, requestID)
	default:
		req, ok = httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	}
	if !ok {
		return
	}

	result, err := h.service.Evaluate(ctx, decision.EvaluateRequest{Text: req.News})
	if err != nil {
		h.logger.ErrorContext(ctx, "check evaluation failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "check served",
		"request_id", requestID,
		"label", result.Verdict.Label,
		"source", result.Verdict.Source,
		"client", device.ClassFromContext(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandlePolicy handles GET /check/policy requests.
func (h *Handler) HandlePolicy(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromPolicy(h.service.Policy()))
}

func (h *Handler) decodeForm(w http.ResponseWriter, r *http.Request, requestID string) (*CheckRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseMultipartForm(maxFormBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		err = dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid form body")
		h.logger.WarnContext(r.Context(), "failed to decode request", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return nil, false
	}

	req := &CheckRequest{News: r.PostFormValue("news")}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "invalid request", "request_id", requestID, "error", err)
		httputil.WriteError(w, err)
		return nil, false
	}
	return req, true
}

// rejectEmpty answers a bodiless submission with the same prompt as blank text.
func (h *Handler) rejectEmpty(w http.ResponseWriter, r *http.Request, requestID string) (*CheckRequest, bool) {
	err := (&CheckRequest{}).Validate()
	h.logger.WarnContext(r.Context(), "invalid request", "request_id", requestID, "error", err)
	httputil.WriteError(w, err)
	return nil, false
}

// isEmptyBody reports whether the request carries no body bytes. Bodies of
// unknown length are peeked and the buffered bytes put back on r.Body.
func isEmptyBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return true
	}
	if r.ContentLength > 0 {
		return false
	}
	br := bufio.NewReader(r.Body)
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		return true
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{br, r.Body}
	return false
}

func isForm(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}
