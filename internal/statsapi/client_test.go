package statsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestNewClientDefaultsEndpoint(t *testing.T) {
	client := NewClient("")
	if client.Endpoint() != DefaultScheduleURL {
		t.Errorf("Expected default endpoint, got '%s'", client.Endpoint())
	}

	client = NewClient("http://example.com/schedule")
	if client.Endpoint() != "http://example.com/schedule" {
		t.Errorf("Expected custom endpoint, got '%s'", client.Endpoint())
	}
}

func TestFetch(t *testing.T) {
	buf, err := os.ReadFile("testdata/schedule.json")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf)
	}))
	defer server.Close()

	schedule, err := NewClient(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(schedule.Dates) != 2 {
		t.Errorf("Expected 2 dates, got %d", len(schedule.Dates))
	}
}

func TestFetchURLParsingStage(t *testing.T) {
	_, err := NewClient("://not-a-url").Fetch(context.Background())
	assertStage(t, err, StageURLParsing)
}

func TestFetchConnectionStage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse every connection

	_, err := NewClient(server.URL).Fetch(context.Background())
	assertStage(t, err, StageConnection)
}

func TestFetchDownloadStage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background())
	assertStage(t, err, StageDownload)
}

func TestFetchDeserializationStage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background())
	assertStage(t, err, StageDeserialization)
}

func assertStage(t *testing.T, err error, want Stage) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if apiErr.Stage != want {
		t.Errorf("Expected stage '%s', got '%s'", want, apiErr.Stage)
	}
	if apiErr.Source == "" {
		t.Error("Expected error to carry the source endpoint")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{
		Source: "http://example.com",
		Stage:  StageDownload,
		Err:    errors.New("boom"),
	}

	msg := err.Error()
	for _, fragment := range []string{"download", "boom", "http://example.com"} {
		if !strings.Contains(strings.ToLower(msg), fragment) {
			t.Errorf("Expected message to mention '%s', got '%s'", fragment, msg)
		}
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &APIError{Source: "x", Stage: StageConnection, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the underlying cause")
	}
}
