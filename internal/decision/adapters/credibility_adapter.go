package adapters

import (
	"veracity/internal/decision/ports"
	"veracity/internal/evidence/source"
)

// NewCredibilityAdapter exposes a reputation lookup as ports.CredibilityPort.
// The lookup is in-memory and total, so no timeout or breaker applies.
func NewCredibilityAdapter(lookup *source.Lookup) ports.CredibilityPort {
	return lookup
}

// NewDomainExtractor exposes the text domain extractor as ports.DomainExtractor.
func NewDomainExtractor() ports.DomainExtractor {
	return source.Extract
}
