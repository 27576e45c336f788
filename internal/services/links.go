package services

import (
	"context"
	"net/url"
	"strings"
)

// UpdateLinks builds the guest self-service link for an update token.
type UpdateLinks struct {
	// BaseURL is the public origin of the API, e.g. https://rsvp.example.com. May be empty.
	BaseURL string
}

// For returns the link for token under BaseURL.
func (l UpdateLinks) For(token string) string {
	return l.ForBase(l.BaseURL, token)
}

// ForBase returns the link for token under base, preferring BaseURL when it is configured.
func (l UpdateLinks) ForBase(base, token string) string {
	if l.BaseURL != "" {
		base = l.BaseURL
	}
	return strings.TrimSuffix(base, "/") + "/rsvp/token/" + url.PathEscape(token)
}

type linkBaseKey struct{}

// WithLinkBase returns a context carrying the origin the current request was
// served from. It is used for emailed links when BaseURL is not configured.
func WithLinkBase(ctx context.Context, base string) context.Context {
	return context.WithValue(ctx, linkBaseKey{}, base)
}

// LinkBase returns the origin stored by WithLinkBase, or "".
func LinkBase(ctx context.Context) string {
	base, _ := ctx.Value(linkBaseKey{}).(string)
	return base
}
