package handlers_test

import (
	"testing"
)

func TestLifecycleMutationsAreAudited(t *testing.T) {
	app, store := newTestApp(t)
	donorSID := session(t, store, "rohit@lifelink.test")
	hospSID := session(t, store, "stmarys@lifelink.test")

	entries := captureLogs(t, func() {
		_, body := doJSON(t, app, "POST", "/api/respond", donorSID, map[string]any{"requestId": 1})
		var rb respondBody
		decode(t, body, &rb)
		doJSON(t, app, "POST", "/api/fulfill", hospSID, map[string]any{"historyId": rb.History.ID})
		doJSON(t, app, "POST", "/api/inventory/update", hospSID, map[string]any{"type": "B+", "units": 4})
	})

	for _, action := range []string{"donation.respond", "donation.fulfill", "inventory.save"} {
		e, ok := findAction(entries, action)
		if !ok {
			t.Fatalf("%s log not found", action)
		}
		if e.Kind != "audit" {
			t.Fatalf("%s: want kind audit, got %q", action, e.Kind)
		}
	}
	e, _ := findAction(entries, "inventory.save")
	for _, k := range []string{"type", "units", "status"} {
		if _, ok := e.Fields[k]; !ok {
			t.Fatalf("inventory.save missing %s", k)
		}
	}
}

func TestRejectedCallsAreLogged(t *testing.T) {
	app, store := newTestApp(t)
	hospSID := session(t, store, "stmarys@lifelink.test")

	entries := captureLogs(t, func() {
		doJSON(t, app, "POST", "/api/respond", hospSID, map[string]any{"requestId": 1})
		doJSON(t, app, "POST", "/api/auth/login", "", map[string]any{"email": "nobody@lifelink.test", "password": "Wr0ng!pass"})
		doJSON(t, app, "POST", "/api/fulfill", hospSID, map[string]any{"historyId": 1})
	})

	if e, ok := findAction(entries, "access.denied"); !ok || e.Level != "warning" {
		t.Fatalf("forbidden respond should log a warning: %+v", e)
	}
	if _, ok := findAction(entries, "auth.login.fail"); !ok {
		t.Fatal("auth.login.fail not logged")
	}
	if _, ok := findAction(entries, "donation.fulfill.already_fulfilled"); !ok {
		t.Fatal("duplicate fulfill not logged")
	}
}

func TestRejectedCallsLogTheirStatus(t *testing.T) {
	app, store := newTestApp(t)
	hospSID := session(t, store, "stmarys@lifelink.test")
	donorSID := session(t, store, "rohit@lifelink.test")

	entries := captureLogs(t, func() {
		doJSON(t, app, "POST", "/api/respond", hospSID, map[string]any{"requestId": 1})
		doJSON(t, app, "POST", "/api/respond", donorSID, map[string]any{"requestId": 999})
		doJSON(t, app, "POST", "/api/fulfill", hospSID, map[string]any{"historyId": 1})
		doJSON(t, app, "POST", "/api/inventory/update", hospSID, map[string]any{"type": "O-", "units": -1})
	})

	want := map[string]int{
		"access.denied":                      403,
		"donation.respond.not_found":         404,
		"donation.fulfill.already_fulfilled": 400,
		"validation.fail":                    400,
	}
	for action, status := range want {
		e, ok := findAction(entries, action)
		if !ok {
			t.Fatalf("%s not logged", action)
		}
		if e.Status != status {
			t.Fatalf("%s: logged status %d, want %d", action, e.Status, status)
		}
	}
}
