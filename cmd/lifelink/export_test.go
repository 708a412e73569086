package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lifelink/internal/repos"
)

func TestWriteSnapshot_File(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	snap, err := repos.NewStore(db).Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	out := filepath.Join(t.TempDir(), "snapshot.json")
	if err := writeSnapshot(snap, out); err != nil {
		t.Fatalf("write: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var back repos.Snapshot
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(back.Donors) != 4 || len(back.Inventory) != 4 {
		t.Fatalf("unexpected snapshot: %d donors, %d inventory", len(back.Donors), len(back.Inventory))
	}
}

func TestWriteSnapshot_BadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "snapshot.json")
	if err := writeSnapshot(repos.Snapshot{}, out); err == nil {
		t.Fatal("want error for a path in a missing directory")
	}
}
