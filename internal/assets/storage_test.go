package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStorageLoadGet(t *testing.T) {
	s := NewStorage[string]()
	var progress ProgressCounter

	h := s.Load("hello", &progress)
	if !h.Valid() {
		t.Fatal("expected valid handle")
	}
	got, ok := h.Get()
	if !ok || got != "hello" {
		t.Errorf("Get = %q, %v", got, ok)
	}
	if !progress.Complete() {
		t.Error("expected progress complete after synchronous load")
	}
}

func TestHandleEquality(t *testing.T) {
	s := NewStorage[int]()
	a := s.Load(1, nil)
	b := s.Load(2, nil)

	if a == b {
		t.Error("distinct loads must produce distinct handles")
	}
	c := a
	if c != a {
		t.Error("copied handle must equal the original")
	}
}

func TestStorageRetainRelease(t *testing.T) {
	s := NewStorage[int]()
	h := s.Load(42, nil)
	s.Retain(h)

	s.Release(h)
	if _, ok := h.Get(); !ok {
		t.Fatal("slot freed while a reference remained")
	}
	s.Release(h)
	if _, ok := h.Get(); ok {
		t.Error("slot still live after last release")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestProgressCounter(t *testing.T) {
	var p ProgressCounter
	if !p.Complete() {
		t.Error("fresh counter should be complete")
	}

	p.Start(3)
	if p.Complete() || p.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", p.Pending())
	}
	p.Finish(2)
	p.Fail(1)
	if !p.Complete() {
		t.Error("expected complete after all loads settled")
	}
	if p.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", p.Failures())
	}
}

func TestLoaderRootPriority(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	if err := os.WriteFile(filepath.Join(low, "a.txt"), []byte("low"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(high, "a.txt"), []byte("high"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader(low)
	l.AddRoot(high)

	data, err := l.Read("a.txt")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("Read = %q, want %q (last root wins)", data, "high")
	}

	// Second read comes from cache.
	if _, err := l.Read("a.txt"); err != nil {
		t.Fatalf("cached Read: %v", err)
	}
	hits, misses := l.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats = %d hits, %d misses, want 1/1", hits, misses)
	}
}

func TestLoaderMissing(t *testing.T) {
	l := NewLoader(t.TempDir())
	if _, err := l.Read("nope.png"); err == nil {
		t.Error("expected error for missing asset")
	}
}
