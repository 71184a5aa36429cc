package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"easyapply-engine/internal/events"
	"easyapply-engine/internal/run"
)

func testServer(t *testing.T) (*httptest.Server, *run.Controller, *events.Hub) {
	t.Helper()

	ctl := run.NewController(func(ctx context.Context, _ func()) {
		<-ctx.Done()
	})
	hub := events.NewHub()

	mux := NewMux(Deps{Hub: hub, Ctl: ctl})
	srv := httptest.NewServer(Chain(mux, RequestID, Recover, Cors))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { _, _ = ctl.Stop() })

	return srv, ctl, hub
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	return body
}

func TestStartStopLifecycle(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/automation/start", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("start status = %d", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["status"] != "running" || body["run_id"] == "" {
		t.Fatalf("start body = %v", body)
	}

	resp, err = http.Get(srv.URL + "/automation/status")
	if err != nil {
		t.Fatal(err)
	}
	st := decode(t, resp)
	if st["is_running"] != true {
		t.Fatalf("status body = %v", st)
	}
	if st["run_id"] != body["run_id"] {
		t.Fatalf("status run_id = %v, want %v", st["run_id"], body["run_id"])
	}

	resp, err = http.Post(srv.URL+"/automation/stop", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("stop status = %d", resp.StatusCode)
	}
	stop := decode(t, resp)
	if stop["status"] != "stopped" {
		t.Fatalf("stop body = %v", stop)
	}
	if _, ok := stop["duration_seconds"]; !ok {
		t.Fatal("stop body missing duration_seconds")
	}

	resp, err = http.Get(srv.URL + "/automation/status")
	if err != nil {
		t.Fatal(err)
	}
	if st := decode(t, resp); st["is_running"] != false {
		t.Fatalf("status after stop = %v", st)
	}
}

func TestStartTwiceRejected(t *testing.T) {
	srv, _, _ := testServer(t)

	if resp, err := http.Post(srv.URL+"/automation/start", "application/json", nil); err != nil {
		t.Fatal(err)
	} else {
		resp.Body.Close()
	}

	resp, err := http.Post(srv.URL+"/automation/start", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second start status = %d, want 400", resp.StatusCode)
	}
	body := decode(t, resp)
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "already_running" {
		t.Fatalf("error body = %v", body)
	}
}

func TestStopWhenIdleRejected(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, err := http.Post(srv.URL+"/automation/stop", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("stop status = %d, want 400", resp.StatusCode)
	}
	body := decode(t, resp)
	errObj, _ := body["error"].(map[string]any)
	if errObj["code"] != "not_running" {
		t.Fatalf("error body = %v", body)
	}
}

func TestStartPublishesEvent(t *testing.T) {
	srv, _, hub := testServer(t)

	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	resp, err := http.Post(srv.URL+"/automation/start", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	select {
	case raw := <-ch:
		var evt events.Event
		if err := json.Unmarshal([]byte(raw), &evt); err != nil {
			t.Fatal(err)
		}
		if evt.Type != events.TypeRunStarted {
			t.Fatalf("event type = %s", evt.Type)
		}
	default:
		t.Fatal("no run_started event published")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/automation/start")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body := decode(t, resp); body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	srv, _, _ := testServer(t)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != "abc123" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}
