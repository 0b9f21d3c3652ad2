package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifySendsBearerAndMessage(t *testing.T) {
	var gotAuth, gotMessage, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotMessage = r.PostFormValue("message")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewNotifyClient("secret-token")
	c.Endpoint = srv.URL

	if err := c.Send(context.Background(), "📋 ออเดอร์ใหม่!"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want Bearer secret-token", gotAuth)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotMessage != "📋 ออเดอร์ใหม่!" {
		t.Errorf("message = %q", gotMessage)
	}
}

func TestNotifyNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewNotifyClient("bad-token")
	c.Endpoint = srv.URL

	if err := c.Send(context.Background(), "hi"); err == nil {
		t.Error("expected error on 401 response")
	}
}
