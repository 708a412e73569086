package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelink/internal/domain"
)

func TestReadEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/donors", "", nil)
	var donors []domain.Donor
	decode(t, body, &donors)
	if resp.StatusCode != http.StatusOK || len(donors) != 4 {
		t.Fatalf("donors: %d %+v", resp.StatusCode, donors)
	}
	if donors[0].Name != "Rohit Kumar" || donors[0].Location.Lat != 28.6139 {
		t.Fatalf("unexpected first donor: %+v", donors[0])
	}

	_, body = doJSON(t, app, "GET", "/api/donors?city=delhi", "", nil)
	decode(t, body, &donors)
	if len(donors) != 2 {
		t.Fatalf("want 2 Delhi donors, got %+v", donors)
	}

	resp, body = doJSON(t, app, "GET", "/api/requests?open=true", "", nil)
	var reqs []domain.Request
	decode(t, body, &reqs)
	if resp.StatusCode != http.StatusOK || len(reqs) != 2 || reqs[0].ID != 2 {
		t.Fatalf("requests: %d %+v", resp.StatusCode, reqs)
	}
	if reqs[0].Time == "" {
		t.Fatal("request time display string missing")
	}

	resp, body = doJSON(t, app, "GET", "/api/activity?limit=2", "", nil)
	var acts []domain.ActivityEntry
	decode(t, body, &acts)
	if resp.StatusCode != http.StatusOK || len(acts) != 2 || acts[0].User != "City Hospital" {
		t.Fatalf("activity: %d %+v", resp.StatusCode, acts)
	}

	resp, _ = doJSON(t, app, "GET", "/api/history/abc", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-numeric donor id: want 400, got %d", resp.StatusCode)
	}
	resp, body = doJSON(t, app, "GET", "/api/history/99", "", nil)
	if resp.StatusCode != http.StatusOK || string(body) != "[]" {
		t.Fatalf("unknown donor history: want empty list, got %d %s", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, app, "GET", "/api/requests?bloodType=Z", "", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad filter: want 400, got %d", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	app, store := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/stats?donorId=1", "", nil)
	var st domain.Stats
	decode(t, body, &st)
	if resp.StatusCode != http.StatusOK || st.DonorStats.LivesSaved != 6 || st.HospitalStats.ActiveRequests != 2 {
		t.Fatalf("stats: %d %+v", resp.StatusCode, st)
	}

	// scoped to the logged-in donor without a query
	sid := session(t, store, "priya@lifelink.test")
	_, body = doJSON(t, app, "GET", "/api/stats", sid, nil)
	decode(t, body, &st)
	if st.DonorStats.DonorID != 2 || st.DonorStats.Donations != 0 {
		t.Fatalf("want donor 2 stats, got %+v", st.DonorStats)
	}

	resp, _ = doJSON(t, app, "GET", "/api/stats?donorId=42", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown donor: want 404, got %d", resp.StatusCode)
	}
}

func TestBannerHealthAnd404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "LifeLink API is running" {
		t.Fatalf("unexpected banner %q", b)
	}

	resp, _ = doJSON(t, app, "GET", "/healthz", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("request id header missing")
	}

	resp, _ = doJSON(t, app, "GET", "/api/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown route: want 404, got %d", resp.StatusCode)
	}
}
