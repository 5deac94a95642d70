package storage

import (
	"io"
	"strings"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := "submissions/vbr/alice/e-1.json"
	if _, err := s.Put(key, strings.NewReader(`{"entry_id":"e-1"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, err := s.Get(key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()
	buf, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `{"entry_id":"e-1"}` {
		t.Errorf("payload = %s", buf)
	}
}

func TestFSStoreEmptyKey(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Put("", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestFSStoreGetMissing(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("no/such/key"); err == nil {
		t.Fatal("expected error for missing key")
	}
}
