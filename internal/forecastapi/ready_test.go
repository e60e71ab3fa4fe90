package forecastapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestIndexURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:5001/forecast", "http://localhost:5001/", false},
		{"https://gold.example.com/api/forecast?x=1#y", "https://gold.example.com/", false},
		{"/forecast", "", true},
		{"://bad", "", true},
	}

	for _, tt := range tests {
		got, err := IndexURL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("IndexURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("IndexURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWaitReady(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	err := WaitReady(context.Background(), srv.Client(), srv.URL+"/", 30*time.Second)
	if err != nil {
		t.Fatalf("WaitReady() error: %v", err)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("expected 3 attempts, got %d", got)
	}
}

func TestWaitReady_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := WaitReady(context.Background(), srv.Client(), srv.URL+"/", time.Second)
	if err == nil {
		t.Fatal("expected error from backend that never becomes ready")
	}
}

func TestCheckReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	if err := CheckReady(context.Background(), srv.Client(), srv.URL+"/"); err != nil {
		t.Errorf("CheckReady() error: %v", err)
	}
}
