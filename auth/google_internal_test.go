package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGoogleMasterLoginThenRefresh(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Write([]byte("Auth=ignored\nToken=refresh-token-value\n"))
			return
		}
		w.Write([]byte("Auth=access-token-value\nExpiry=9999999999\n"))
	}))
	defer srv.Close()

	g := newGoogle("user@gmail.com", "pw", srv.URL, nil, nil)
	tok, err := g.GetAccessToken(context.Background(), false)
	if err != nil {
		t.Fatalf("GetAccessToken: %v", err)
	}
	if tok != "access-token-value" {
		t.Errorf("token = %q, want access-token-value", tok)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestParseGoogleKV(t *testing.T) {
	kv := parseGoogleKV("A=1\nB=2\n")
	if kv["A"] != "1" {
		t.Errorf("kv[A] = %q, want 1", kv["A"])
	}
	if kv["B"] != "2" {
		t.Errorf("kv[B] = %q, want 2", kv["B"])
	}
}
