package app

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

func TestHTTPServiceServesUntilStopped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	svc := NewHTTPService("127.0.0.1:0", handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()

	select {
	case <-svc.Ready():
	case err := <-done:
		t.Fatalf("start failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("listener not ready")
	}

	resp, err := http.Get("http://" + svc.Addr() + "/ping")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("unexpected body %q", string(body))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := svc.Stop(stopCtx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("start should return nil after stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("start did not return after stop")
	}
}

func TestHTTPServiceStartFailsOnBadAddr(t *testing.T) {
	svc := NewHTTPService("256.0.0.1:bad", http.NotFoundHandler())
	if err := svc.Start(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}
