package assessment

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreContract(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	if _, err := store.GetResult(ctx, "u", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := store.PutResult(ctx, sampleResult("vbr", "u", "s1", 100)); err != nil {
		t.Fatal(err)
	}
	if err := store.PutResult(ctx, sampleResult("vbr", "u", "s1", 200)); !errors.Is(err, ErrAlreadyScored) {
		t.Fatalf("err = %v, want ErrAlreadyScored", err)
	}

	got, err := store.GetResult(ctx, "u", "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.SubmittedAt != 100 {
		t.Errorf("first write did not win: %+v", got)
	}
	// Other users never see it.
	if _, err := store.GetResult(ctx, "other", "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreListOrdering(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for _, r := range []ScoredResult{
		sampleResult("mc", "u", "s3", 30),
		sampleResult("mc", "u", "s1", 10),
		sampleResult("vbr", "u", "sv", 20),
		sampleResult("mc", "u", "s2", 20),
	} {
		if err := store.PutResult(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := store.ListSubmissions(ctx, ListOpts{UserID: "u", Tool: "mc"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"s1", "s2", "s3"}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v", rows)
	}
	for i := range want {
		if rows[i].SubmissionID != want[i] {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].SubmissionID, want[i])
		}
	}
}
