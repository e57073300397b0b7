package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRobotsChecker_Allowed(t *testing.T) {
	var robotsRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		robotsRequests++
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	}))
	defer server.Close()

	checker := NewRobotsChecker("veridique-test", 5*time.Second)
	ctx := context.Background()

	if !checker.Allowed(ctx, server.URL+"/public/page") {
		t.Error("public path should be allowed")
	}
	if checker.Allowed(ctx, server.URL+"/private/page") {
		t.Error("disallowed path should be blocked")
	}

	// robots.txt is fetched once per host
	if robotsRequests != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", robotsRequests)
	}
}

func TestRobotsChecker_MissingRobotsAllowsAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("veridique-test", 5*time.Second)

	if !checker.Allowed(context.Background(), server.URL+"/anything") {
		t.Error("missing robots.txt should allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("veridique-test", 200*time.Millisecond)

	if !checker.Allowed(context.Background(), "http://127.0.0.1:1/page") {
		t.Error("unreachable robots.txt should default to allow")
	}
}

func TestRobotsChecker_InvalidURL(t *testing.T) {
	checker := NewRobotsChecker("veridique-test", time.Second)

	if checker.Allowed(context.Background(), "://broken") {
		t.Error("unparseable URL must not be allowed")
	}
}

func TestRobotsChecker_Clear(t *testing.T) {
	var robotsRequests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsRequests++
			w.Write([]byte("User-agent: *\nAllow: /\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("veridique-test", 5*time.Second)
	ctx := context.Background()

	checker.Allowed(ctx, server.URL+"/a")
	checker.Clear()
	checker.Allowed(ctx, server.URL+"/b")

	if robotsRequests != 2 {
		t.Errorf("robots.txt fetched %d times after clear, want 2", robotsRequests)
	}
}
