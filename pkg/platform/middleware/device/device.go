// Package device classifies the calling client from its User-Agent so request
// logs can tell browsers, scripts and crawlers apart.
package device

import (
	"context"
	"net/http"

	"github.com/mssola/useragent"
)

// Class is a coarse client category.
type Class string

const (
	ClassUnknown Class = "unknown"
	ClassBot     Class = "bot"
	ClassMobile  Class = "mobile"
	ClassDesktop Class = "desktop"
)

type contextKeyClass struct{}

// Classify maps a User-Agent header to a Class.
func Classify(userAgent string) Class {
	if userAgent == "" {
		return ClassUnknown
	}
	ua := useragent.New(userAgent)
	switch {
	case ua.Bot():
		return ClassBot
	case ua.Mobile():
		return ClassMobile
	}
	if name, _ := ua.Browser(); name == "" || ua.OS() == "" {
		return ClassUnknown
	}
	return ClassDesktop
}

// Middleware stores the caller's Class in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithClass(r.Context(), Classify(r.Header.Get("User-Agent")))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClassFromContext returns the stored Class, or ClassUnknown.
func ClassFromContext(ctx context.Context) Class {
	if c, ok := ctx.Value(contextKeyClass{}).(Class); ok {
		return c
	}
	return ClassUnknown
}

// WithClass injects a Class into a context.
// Useful for handler tests that don't run the full middleware chain.
func WithClass(ctx context.Context, c Class) context.Context {
	return context.WithValue(ctx, contextKeyClass{}, c)
}
