package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "tensio/contexts/vitals/ingestion-service/domain/errors"
)

const sampleCSV = "date,time,sys,dia,pul\n2026-08-14,10:00,118,76,68\n"

func TestReadRetriesRateLimit(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	client := Client{URL: server.URL, APIKey: "secret", HTTP: server.Client(), Attempts: 4}
	table, err := client.Read(context.Background())
	if err != nil {
		t.Fatalf("read failed after retries: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if len(table.Rows) != 1 || table.Rows[0][2] != "118" {
		t.Fatalf("unexpected table: %+v", table)
	}
}

func TestReadGivesUpAfterAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := Client{URL: server.URL, HTTP: server.Client(), Attempts: 2}
	_, err := client.Read(context.Background())
	if !errors.Is(err, domainerrors.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
}

func TestReadClientErrorFailsFast(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := Client{URL: server.URL, HTTP: server.Client(), Attempts: 4}
	_, err := client.Read(context.Background())
	if !errors.Is(err, domainerrors.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("client errors must not retry, got %d calls", calls)
	}
}

func TestReadEmptySheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(""))
	}))
	defer server.Close()

	client := Client{URL: server.URL, HTTP: server.Client()}
	_, err := client.Read(context.Background())
	if !errors.Is(err, domainerrors.ErrInvalidSource) {
		t.Fatalf("expected invalid source, got %v", err)
	}
}
