// cmd/veracity/extractor_test.go
package main

import "testing"

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"www.reuters.com", "reuters.com"},
		{"Reuters.COM", "reuters.com"},
		{"  www.BBC.co.uk ", "bbc.co.uk"},
		{"apnews.com", "apnews.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDomain(tt.in); got != tt.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"https url", "https://www.reuters.com/world/article-1", "reuters.com"},
		{"http url", "http://example.com/page", "example.com"},
		{"no scheme", "nytimes.com/2026/08/some-story", "nytimes.com"},
		{"with port", "https://localhost:8080/feed", "localhost"},
		{"empty", "", ""},
		{"garbage", "ht tp://%%%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromURL(tt.in); got != tt.want {
				t.Errorf("DomainFromURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractFallback(t *testing.T) {
	page := []byte(`<html><head>
		<meta property="og:title" content="Budget Vote Passes"/>
		<title>fallback title</title></head>
		<body><article>Lawmakers approved the budget on Tuesday.</article>
		<script>ignored()</script></body></html>`)

	title, content := extractFallback(page)
	if title != "Budget Vote Passes" {
		t.Errorf("title = %q, want og:title value", title)
	}
	if content != "Lawmakers approved the budget on Tuesday." {
		t.Errorf("content = %q", content)
	}
}

func TestExtractFallbackTitleTag(t *testing.T) {
	page := []byte(`<html><head><title>Plain Title</title></head>
		<body><p>First paragraph text.</p></body></html>`)

	title, content := extractFallback(page)
	if title != "Plain Title" {
		t.Errorf("title = %q, want Plain Title", title)
	}
	if content != "First paragraph text." {
		t.Errorf("content = %q", content)
	}
}

func TestBodyTextSkipsScripts(t *testing.T) {
	page := []byte(`<html><body><p>visible</p><script>var hidden = 1;</script></body></html>`)

	text := bodyText(page)
	if text != "visible" {
		t.Errorf("bodyText = %q, want visible", text)
	}
}
