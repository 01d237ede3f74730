package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveHTML(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(body))
	}))
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "OpenGraph Title Wins",
			body: `<html><head>
				<meta property="og:title" content="OG Title">
				<meta name="twitter:title" content="Twitter Title">
				<title>Plain Title</title>
				</head><body><h1>Heading</h1></body></html>`,
			want: "OG Title",
		},
		{
			name: "Twitter Title Second",
			body: `<html><head>
				<meta name="twitter:title" content="Twitter Title">
				<title>Plain Title</title>
				</head></html>`,
			want: "Twitter Title",
		},
		{
			name: "Title Element Third",
			body: `<html><head><title>Plain Title</title></head><body><h1>Heading</h1></body></html>`,
			want: "Plain Title",
		},
		{
			name: "First Heading Last",
			body: `<html><body><h1>First Heading</h1><h1>Second Heading</h1></body></html>`,
			want: "First Heading",
		},
		{
			name: "Empty Candidates Skipped",
			body: `<html><head>
				<meta property="og:title" content="   ">
				<title>  Plain   Title  </title>
				</head></html>`,
			want: "Plain Title",
		},
		{
			name: "Whitespace Collapsed",
			body: "<html><head><title>Many \n\t spaces   here</title></head></html>",
			want: "Many spaces here",
		},
		{
			name: "No Candidates",
			body: `<html><body><p>nothing here</p></body></html>`,
			want: "",
		},
	}

	fetcher := NewFetcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveHTML(tt.body)
			defer server.Close()

			got := fetcher.PageTitle(context.Background(), server.URL)
			if got != tt.want {
				t.Errorf("PageTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageTitleNonHTMLResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"title": "not html"}`))
	}))
	defer server.Close()

	if got := NewFetcher().PageTitle(context.Background(), server.URL); got != "" {
		t.Errorf("PageTitle() = %q, want empty for non-HTML response", got)
	}
}

func TestPageTitleErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	if got := NewFetcher().PageTitle(context.Background(), server.URL); got != "" {
		t.Errorf("PageTitle() = %q, want empty for error status", got)
	}
}

func TestPageTitleUnreachableHost(t *testing.T) {
	// Closed server: connection refused must degrade to "".
	server := serveHTML("<html></html>")
	url := server.URL
	server.Close()

	if got := NewFetcher().PageTitle(context.Background(), url); got != "" {
		t.Errorf("PageTitle() = %q, want empty for unreachable host", got)
	}
}

func TestPageTitleInvalidURL(t *testing.T) {
	if got := NewFetcher().PageTitle(context.Background(), "://not-a-url"); got != "" {
		t.Errorf("PageTitle() = %q, want empty for invalid URL", got)
	}
}

func TestPageTitleSendsBrowserHeaders(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head><title>ok</title></head></html>"))
	}))
	defer server.Close()

	NewFetcher().PageTitle(context.Background(), server.URL)
	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, userAgent)
	}
}
