package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocate(t *testing.T) {
	ipSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","lat":19.0760,"lon":72.8777}`))
	}))
	defer ipSrv.Close()

	revSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "jsonv2" {
			t.Errorf("format = %q, want jsonv2", r.URL.Query().Get("format"))
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("Expected a User-Agent header on reverse lookups")
		}
		w.Write([]byte(`{
			"display_name": "Marine Drive, Mumbai, Maharashtra, India",
			"address": {"road": "Marine Drive", "city": "Mumbai", "state": "Maharashtra", "country": "India"}
		}`))
	}))
	defer revSrv.Close()

	client := NewHTTPClient(WithIPLookupURL(ipSrv.URL), WithReverseURL(revSrv.URL))
	loc, err := client.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	if loc.Field("") != "Marine Drive, Mumbai, Maharashtra, India" {
		t.Errorf("Full address = %q", loc.Field(""))
	}
	if loc.Field("city") != "Mumbai" {
		t.Errorf("city = %q, want Mumbai", loc.Field("city"))
	}
	if loc.Field("hamlet") != "" {
		t.Errorf("Unknown field should be empty, got %q", loc.Field("hamlet"))
	}
}

func TestLocateIPRefused(t *testing.T) {
	ipSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer ipSrv.Close()

	client := NewHTTPClient(WithIPLookupURL(ipSrv.URL))
	if _, err := client.Locate(context.Background()); err == nil {
		t.Fatal("Expected an error when the IP lookup is refused")
	}
}
