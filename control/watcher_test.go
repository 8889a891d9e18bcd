// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// watcher_test.go — JSON file source and fsnotify-driven hot reload.
package control

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	writeConfig(t, path, `{"batch_size": 64, "name": "q0", "debug": true}`)

	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if doc["batch_size"] != float64(64) {
		t.Errorf("expected batch_size=64, got %v", doc["batch_size"])
	}
	if doc["name"] != "q0" || doc["debug"] != true {
		t.Errorf("unexpected document: %v", doc)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	writeConfig(t, path, `{broken`)
	if _, err := LoadFile(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	writeConfig(t, path, `{"batch_size": 64}`)

	store := NewConfigStore()
	w, err := NewWatcher(path, store)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	if v, ok := store.Get("batch_size"); !ok || v != float64(64) {
		t.Fatalf("initial load missing, got %v (present=%v)", v, ok)
	}

	writeConfig(t, path, `{"batch_size": 128}`)
	deadline := time.Now().Add(5 * time.Second)
	for {
		if v, _ := store.Get("batch_size"); v == float64(128) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the rewritten config to land")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatcher_KeepsLastGoodConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	writeConfig(t, path, `{"batch_size": 64}`)

	store := NewConfigStore()
	w, err := NewWatcher(path, store)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()

	writeConfig(t, path, `{not json at all`)
	select {
	case <-w.Errors():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a parse failure report")
	}
	if v, _ := store.Get("batch_size"); v != float64(64) {
		t.Errorf("a bad revision must not clobber the store, got %v", v)
	}
}

func TestWatcher_RejectsMissingFile(t *testing.T) {
	store := NewConfigStore()
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "absent.json"), store); err == nil {
		t.Error("expected NewWatcher to fail on a missing file")
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	writeConfig(t, path, `{}`)
	store := NewConfigStore()
	w, err := NewWatcher(path, store)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	w.Stop()
	w.Stop()
}
