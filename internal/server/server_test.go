package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mapgen/internal/biome"
	"mapgen/internal/mapgen"
	"mapgen/internal/terrain"
)

func newTestApp(t *testing.T) (*mapgen.Store, *httptestApp) {
	t.Helper()
	cfg := mapgen.DefaultConfig()
	cfg.HalfGrid = 6
	m, err := mapgen.New(cfg, 7, terrain.Euclidean, terrain.Flat)
	if err != nil {
		t.Fatal(err)
	}
	store := mapgen.NewStore(m)
	opts := DefaultOptions()
	opts.RequestLog = false
	return store, &httptestApp{t: t, app: New(store, opts)}
}

type httptestApp struct {
	t   *testing.T
	app interface {
		Test(req *http.Request, msTimeout ...int) (*http.Response, error)
	}
}

func (a *httptestApp) do(method, target string) (*http.Response, []byte) {
	a.t.Helper()
	resp, err := a.app.Test(httptest.NewRequest(method, target, nil), -1)
	if err != nil {
		a.t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		a.t.Fatal(err)
	}
	return resp, body
}

type mapResponse struct {
	Success bool   `json:"success"`
	Data    MapDTO `json:"data"`
}

func TestHealthCheck(t *testing.T) {
	_, app := newTestApp(t)
	resp, body := app.do(http.MethodGet, "/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ready":true`) {
		t.Fatalf("body = %s", body)
	}
}

func TestGetOptions(t *testing.T) {
	_, app := newTestApp(t)
	resp, body := app.do(http.MethodGet, "/api/v1/options")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got struct {
		Data OptionsDTO `json:"data"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Data.Distance) != len(terrain.DistanceFns()) || len(got.Data.Reshape) != len(terrain.ReshapingFns()) {
		t.Fatalf("options = %+v", got.Data)
	}
	if len(got.Data.Classifiers) != len(biome.Policies()) {
		t.Fatalf("classifiers = %v", got.Data.Classifiers)
	}
}

func TestGetMap(t *testing.T) {
	store, app := newTestApp(t)
	resp, body := app.do(http.MethodGet, "/api/v1/map")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got mapResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	m := store.Current()
	if got.Data.Seed != 7 || got.Data.Distance != terrain.Euclidean.String() {
		t.Fatalf("header = seed %d distance %q", got.Data.Seed, got.Data.Distance)
	}
	if len(got.Data.Regions) != len(m.Regions()) {
		t.Fatalf("regions = %d, want %d", len(got.Data.Regions), len(m.Regions()))
	}
	for _, r := range got.Data.Regions {
		if len(r.Color) != 7 || r.Color[0] != '#' {
			t.Fatalf("color = %q", r.Color)
		}
	}
}

func TestGetMapRenders(t *testing.T) {
	_, app := newTestApp(t)
	resp, body := app.do(http.MethodGet, "/api/v1/map.svg?sites=true&size=200")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("svg status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("svg content type = %q", ct)
	}
	if !strings.Contains(string(body), "<svg") || !strings.Contains(string(body), "<circle") {
		t.Fatal("svg body lacks sites")
	}

	resp, body = app.do(http.MethodGet, "/api/v1/map.png?size=64")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("png status = %d", resp.StatusCode)
	}
	if !strings.HasPrefix(string(body), "\x89PNG") {
		t.Fatal("png body is not a PNG")
	}

	resp, _ = app.do(http.MethodGet, "/api/v1/map.png?size=0")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("size=0 status = %d", resp.StatusCode)
	}
}

func TestRegenerate(t *testing.T) {
	store, app := newTestApp(t)
	before := store.Current()

	resp, body := app.do(http.MethodPost, "/api/v1/map/regenerate?seed=99&distance=squarebump&reshape=smooth2&classifier=discrete")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	m := store.Current()
	if m == before {
		t.Fatal("store still holds the old map")
	}
	if m.Seed() != 99 || m.Distance() != terrain.SquareBump || m.Reshape() != terrain.Smooth2 || m.Classifier() != biome.Discrete {
		t.Fatalf("regenerated with seed %d %v %v %v", m.Seed(), m.Distance(), m.Reshape(), m.Classifier())
	}
	if before.Seed() != 7 {
		t.Fatal("old snapshot changed")
	}
}

func TestRegenerateRejectsBadInput(t *testing.T) {
	store, app := newTestApp(t)
	before := store.Current()
	for _, q := range []string{"seed=abc", "distance=nope", "reshape=nope", "classifier=nope"} {
		resp, body := app.do(http.MethodPost, "/api/v1/map/regenerate?"+q)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d", q, resp.StatusCode)
		}
		if !strings.Contains(string(body), `"error":true`) {
			t.Fatalf("%s: body = %s", q, body)
		}
	}
	if store.Current() != before {
		t.Fatal("rejected request replaced the map")
	}
}

func TestEmptyStore(t *testing.T) {
	opts := DefaultOptions()
	opts.RequestLog = false
	app := &httptestApp{t: t, app: New(mapgen.NewStore(nil), opts)}
	resp, _ := app.do(http.MethodGet, "/api/v1/map")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
