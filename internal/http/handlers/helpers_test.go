package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"lifelink/internal/config"
	"lifelink/internal/http/handlers"
	applog "lifelink/internal/log"
	"lifelink/internal/repos"
)

func newTestApp(t *testing.T) (*fiber.App, *repos.Store) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	store := repos.NewStore(db)

	cfg := config.Defaults()
	cfg.RateLimitPerMin = 1000
	return handlers.NewApp(cfg, store), store
}

// session binds a fresh sid to the seeded account with this email.
func session(t *testing.T, store *repos.Store, email string) string {
	t.Helper()
	u, err := store.Users.ByEmail(email)
	if err != nil {
		t.Fatalf("user %s: %v", email, err)
	}
	sid := "sid-" + strings.SplitN(email, "@", 2)[0]
	if err := store.Users.BindSession(sid, u.ID); err != nil {
		t.Fatalf("bind session: %v", err)
	}
	return sid
}

func doJSON(t *testing.T, app *fiber.App, method, path, sid string, body any) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	out, _ := io.ReadAll(resp.Body)
	return resp, out
}

func decode(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode %s: %v", string(b), err)
	}
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

type logEntry struct {
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	Level  string         `json:"level"`
	Status int            `json:"status"`
	Fields map[string]any `json:"fields"`
	Err    string         `json:"error"`
}

type lockedBuf struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	buf := &lockedBuf{}
	applog.SetOutput(buf)
	defer applog.SetOutput(os.Stdout)

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.b.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
