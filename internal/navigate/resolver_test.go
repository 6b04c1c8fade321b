package navigate

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		kind     DestinationKind
		value    string
	}{
		{"example.com", DestinationURL, "http://example.com"},
		{"https://example.com", DestinationURL, "https://example.com"},
		{"http://example.com/path?a=1", DestinationURL, "http://example.com/path?a=1"},
		{"how to bake bread", DestinationSearch, "how to bake bread"},
		{"localhost:8080", DestinationSearch, "localhost:8080"},
		{"localhost.test", DestinationSearch, "localhost.test"},
		{"", DestinationNone, ""},
		{"   ", DestinationNone, ""},
		{"  example.com  ", DestinationURL, "http://example.com"},
		{"golang", DestinationSearch, "golang"},
		// Known misclassification kept for compatibility: a one-word phrase
		// with a period routes to a URL.
		{"bread.recipes", DestinationURL, "http://bread.recipes"},
		{"what is example.com", DestinationSearch, "what is example.com"},
	}

	for _, test := range tests {
		got := Resolve(test.input)
		if got.Kind != test.kind || got.Value != test.value {
			t.Errorf("Resolve(%q) = {%v %q}, expected {%v %q}",
				test.input, got.Kind, got.Value, test.kind, test.value)
		}
	}
}

func TestSearchURL(t *testing.T) {
	tests := []struct {
		template string
		query    string
		expected string
	}{
		{"", "how to bake bread", "https://duckduckgo.com/?q=how+to+bake+bread"},
		{DefaultSearchTemplate, "a&b=c", "https://duckduckgo.com/?q=a%26b%3Dc"},
		{"https://search.test/find?q=%s", "golang", "https://search.test/find?q=golang"},
	}

	for _, test := range tests {
		if got := SearchURL(test.template, test.query); got != test.expected {
			t.Errorf("SearchURL(%q, %q) = %q, expected %q", test.template, test.query, got, test.expected)
		}
	}
}
