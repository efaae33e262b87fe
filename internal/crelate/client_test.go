package crelate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/crelate-mcp/internal/crelate/common"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	c := NewClient(ts.URL, "test-key", 5*time.Second, common.NewSilentLogger())
	return c, ts
}

func TestGetInjectsAPIKey(t *testing.T) {
	var gotPath, gotKey string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"ok":true}`))
	})

	result, err := c.Get(context.Background(), "contacts", Params{"limit": 50, "offset": 0})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if gotPath != "/contacts" {
		t.Errorf("expected path /contacts, got %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("expected api_key=test-key in query, got %q", gotKey)
	}

	m, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("expected map result, got %T", result)
	}
	if m["ok"] != true {
		t.Errorf("unexpected result: %v", m)
	}
}

func TestGetSendsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := c.Get(context.Background(), "jobs", Params{"limit": 10, "offset": 20, "status": "open"})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	expect := map[string]string{"limit": "10", "offset": "20", "status": "open", "api_key": "test-key"}
	for k, v := range expect {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s: expected %q, got %v", k, v, got)
		}
	}
}

func TestAPIErrorPreservesStatusAndBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	})

	_, err := c.Get(context.Background(), "contacts/missing", nil)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Body, "not found") {
		t.Errorf("expected body preserved, got %q", apiErr.Body)
	}
}

func TestTransportErrorIsWrapped(t *testing.T) {
	// Nothing listens here; the dial fails immediately.
	c := NewClient("http://127.0.0.1:1", "test-key", 2*time.Second, common.NewSilentLogger())

	_, err := c.Get(context.Background(), "contacts", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be an APIError: %v", err)
	}
	if !strings.Contains(err.Error(), "crelate request failed") {
		t.Errorf("expected wrapped transport error, got %q", err.Error())
	}
}

func TestDecodeErrorOnInvalidJSON(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := c.Get(context.Background(), "users", nil)
	if err == nil {
		t.Fatal("expected decode error for invalid JSON")
	}
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestDecodeErrorOnEmptyBody(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := c.Get(context.Background(), "users", nil)
	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError for empty 2xx body, got %T: %v", err, err)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]any
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"id":"abc"}`))
	})

	body := Body{"firstName": "Jane", "lastName": "Doe"}
	_, err := c.Post(context.Background(), "contacts", body)
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected application/json, got %q", gotContentType)
	}
	if gotBody["firstName"] != "Jane" || gotBody["lastName"] != "Doe" {
		t.Errorf("unexpected body: %v", gotBody)
	}
	if _, ok := gotBody["api_key"]; ok {
		t.Error("api_key must never appear in the request body")
	}
}

func TestPutEmptyBodySendsEmptyObject(t *testing.T) {
	var gotRaw string
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotRaw = string(data)
		w.Write([]byte(`{}`))
	})

	_, err := c.Put(context.Background(), "contacts/123", Body{})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if gotRaw != "{}" {
		t.Errorf("expected empty JSON object body, got %q", gotRaw)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", "key", 0, common.NewSilentLogger())
	if c.baseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", c.baseURL)
	}
	if c.httpClient.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %v", c.httpClient.Timeout)
	}
}
