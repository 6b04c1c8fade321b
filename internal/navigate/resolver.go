// Package navigate turns raw URL-bar text into a navigation destination:
// either a direct URL or a search-engine query.
package navigate

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSearchTemplate is the fallback search-engine URL pattern. It takes
// one percent-encoded query parameter.
const DefaultSearchTemplate = "https://duckduckgo.com/?q=%s"

// DestinationKind classifies the outcome of resolving URL-bar input.
type DestinationKind int

const (
	// DestinationNone means the input was empty and no navigation should
	// happen
	DestinationNone DestinationKind = iota

	// DestinationURL means the input is a navigable URL
	DestinationURL

	// DestinationSearch means the input should be sent to the search engine
	DestinationSearch
)

// Destination is the resolved outcome of URL-bar input. For DestinationURL
// the value is a full URL; for DestinationSearch it is the raw query text.
type Destination struct {
	Kind  DestinationKind
	Value string
}

// Resolve classifies raw URL-bar input. The domain heuristic (contains a dot,
// no spaces, does not start with "localhost") is intentionally simple and has
// known misclassifications; it is kept as-is for compatibility.
func Resolve(input string) Destination {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Destination{Kind: DestinationNone}
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return Destination{Kind: DestinationURL, Value: trimmed}
	}

	if strings.Contains(trimmed, ".") && !strings.Contains(trimmed, " ") && !strings.HasPrefix(trimmed, "localhost") {
		return Destination{Kind: DestinationURL, Value: "http://" + trimmed}
	}

	return Destination{Kind: DestinationSearch, Value: trimmed}
}

// SearchURL substitutes the percent-encoded query into the search-engine
// template. An empty template falls back to DefaultSearchTemplate.
func SearchURL(template, query string) string {
	if template == "" {
		template = DefaultSearchTemplate
	}
	return fmt.Sprintf(template, url.QueryEscape(query))
}
