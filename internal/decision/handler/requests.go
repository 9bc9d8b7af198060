package handler

import (
	"strings"

	"veracity/internal/decision"
	dErrors "veracity/pkg/domain-errors"
)

// CheckRequest is the body of POST /check, sent as JSON or as a form.
type CheckRequest struct {
	News string `json:"news"`
}

// Validate trims the text and rejects blank submissions. Long text is
// accepted; classifier adapters truncate their own input.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeValidation, decision.EmptyTextMessage)
	}
	r.News = strings.TrimSpace(r.News)
	if r.News == "" {
		return dErrors.New(dErrors.CodeValidation, decision.EmptyTextMessage)
	}
	return nil
}
