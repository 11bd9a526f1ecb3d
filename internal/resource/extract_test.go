package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	text := "See http://a.com and http://b.com and http://a.com"
	var nilText *string

	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{name: "dedupes in first seen order", input: "See http://a.com and http://b.com and http://a.com", want: []string{"http://a.com", "http://b.com"}},
		{name: "string pointer", input: &text, want: []string{"http://a.com", "http://b.com"}},
		{name: "nil", input: nil, want: []string{}},
		{name: "nil string pointer", input: nilText, want: []string{}},
		{name: "number", input: 42, want: []string{}},
		{name: "slice", input: []string{"http://a.com"}, want: []string{}},
		{name: "map", input: map[string]string{"a": "http://a.com"}, want: []string{}},
		{name: "no links", input: "nothing to see here", want: []string{}},
		{name: "path and query", input: "read https://www.example.org/docs/page?id=7&x=y now", want: []string{"https://www.example.org/docs/page?id=7&x=y"}},
		{name: "port and user", input: "ftp://user:pw@files.example.com:21/pub", want: []string{"ftp://user:pw@files.example.com:21/pub"}},
		{name: "ipv4 host", input: "http://192.168.0.1:8080/status", want: []string{"http://192.168.0.1:8080/status"}},
		{name: "file url", input: "open file:///tmp/report.pdf please", want: []string{"file:///tmp/report.pdf"}},
		{name: "trailing sentence period", input: "Go to http://a.com.", want: []string{"http://a.com"}},
		{name: "hyphenated host", input: "see https://head-start.gov/policy today", want: []string{"https://head-start.gov/policy"}},
		{name: "hyphenated subdomain", input: "http://my-site.example.com", want: []string{"http://my-site.example.com"}},
		{name: "hyphenated host and port", input: "http://my-site.example.com:8080/status", want: []string{"http://my-site.example.com:8080/status"}},
		{name: "hyphen in path only", input: "https://eclkc.ohs.acf.hhs.gov/school-readiness/article", want: []string{"https://eclkc.ohs.acf.hhs.gov/school-readiness/article"}},
		{name: "comma inside path", input: "https://docs.google.com/doc,next", want: []string{"https://docs.google.com/doc,next"}},
		{name: "trailing comma", input: "see https://example.com/a, then", want: []string{"https://example.com/a"}},
		{name: "quote inside path", input: "https://example.com/o'reilly/book", want: []string{"https://example.com/o'reilly/book"}},
		{name: "scheme required", input: "www.example.com", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input))
		})
	}
}

func TestExtractFromAll(t *testing.T) {
	got := ExtractFromAll([]string{
		"http://b.com",
		"first http://a.com then http://b.com",
		"",
	})

	assert.Equal(t, []string{"http://b.com", "http://a.com"}, got)
	assert.Empty(t, ExtractFromAll(nil))
}

func TestDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.Example.com/path", want: "example.com"},
		{url: "http://eclkc.ohs.acf.hhs.gov/policy", want: "eclkc.ohs.acf.hhs.gov"},
		{url: "ftp://user:pw@files.example.com:21/pub", want: "files.example.com"},
		{url: "http://192.168.0.1:8080/status", want: "192.168.0.1"},
		{url: "not a url", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, Domain(tt.url))
		})
	}
}
