package testutil

import (
	"net/http"
	"time"

	"veracity/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, as the requestid
// middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithRequestTime pins the request's "now", as the requesttime middleware would.
func WithRequestTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
