package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	liberr "github.com/sabouaram/pogoclient/errors"
)

func TestPTCLoginSucceedsOnCASTGCCookie(t *testing.T) {
	loginSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "CASTGC", Value: "ticket-granting-cookie"})
		w.WriteHeader(http.StatusFound)
	}))
	defer loginSrv.Close()

	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lt":"LT","execution":"EXEC"}`))
	}))
	defer authSrv.Close()

	a := newPTC("user", "pass", "en_US", authSrv.URL, loginSrv.URL, nil, nil)
	tok, err := a.GetAccessToken(context.Background(), false)
	if err != nil {
		t.Fatalf("GetAccessToken: %v", err)
	}
	if tok != "ticket-granting-cookie" {
		t.Errorf("token = %q, want ticket-granting-cookie", tok)
	}
}

func TestPTCLoginDistinguishesActivationRequired(t *testing.T) {
	loginSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error_code":"users.login.activation_required","errors":["activation"]}`))
	}))
	defer loginSrv.Close()

	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lt":"LT","execution":"EXEC"}`))
	}))
	defer authSrv.Close()

	a := newPTC("user", "pass", "", authSrv.URL, loginSrv.URL, nil, nil)
	_, err := a.GetAccessToken(context.Background(), false)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !liberr.Has(err, ErrorActivationRequired) {
		t.Errorf("error %v does not wrap ErrorActivationRequired", err)
	}
}
