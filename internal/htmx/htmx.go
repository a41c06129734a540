// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package htmx provides types and helpers for htmx integration.
package htmx

import (
	"net/http"
)

// Header constants for htmx request headers.
const (
	HeaderRequest        = "HX-Request"
	HeaderBoosted        = "HX-Boosted"
	HeaderCurrentURL     = "HX-Current-URL"
	HeaderHistoryRestore = "HX-History-Restore-Request"
	HeaderTarget         = "HX-Target"
)

// Header constants for htmx response headers.
const (
	HeaderPushURL = "HX-Push-Url"
)

// Request contains information about an htmx request.
type Request struct { //nolint:govet // fieldalignment not critical
	// IsHtmx is true if this is an htmx request (HX-Request header is "true").
	IsHtmx bool

	// IsBoosted is true if this is a boosted request (HX-Boosted header is "true").
	IsBoosted bool

	// IsHistoryRestore is true if this is a history restore request.
	IsHistoryRestore bool

	// CurrentURL is the current URL of the browser (HX-Current-URL header).
	CurrentURL string

	// Target is the ID of the target element (HX-Target header).
	Target string
}

// ParseRequest extracts htmx information from request headers.
func ParseRequest(r *http.Request) *Request {
	return &Request{
		IsHtmx:           r.Header.Get(HeaderRequest) == "true",
		IsBoosted:        r.Header.Get(HeaderBoosted) == "true",
		IsHistoryRestore: r.Header.Get(HeaderHistoryRestore) == "true",
		CurrentURL:       r.Header.Get(HeaderCurrentURL),
		Target:           r.Header.Get(HeaderTarget),
	}
}

// MarkVary tells caches that the response depends on whether the request
// came from htmx, since fragments and full pages share a URL.
func MarkVary(h http.Header) {
	h.Add("Vary", HeaderRequest)
}

// PushURL asks htmx to push url into the browser history.
func PushURL(h http.Header, url string) {
	h.Set(HeaderPushURL, url)
}
