package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/encode"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "loanlens.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_MigratesSchema(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		`SELECT name FROM sqlite_master WHERE type='table' AND name='decisions'`,
	).Scan(&name)
	if err != nil {
		t.Fatalf("decisions table missing: %v", err)
	}
}

func TestInsertAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	raw := encode.Application("Male", "Yes", "2", "Graduate", "No", "Urban", "Good", 60000, 0, 50000, 360)
	d := &decision.Decision{
		Verdict:    decision.Approved,
		Reasons:    []string{decision.ReasonIncomeSufficient},
		ModelLabel: 1,
	}

	rec := NewRecord(raw, d)
	if err := s.Insert(ctx, rec); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("insert must assign an ID")
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}

	r := got[0]
	if r.Verdict != "Approved" || r.ModelLabel != 1 {
		t.Errorf("verdict/label = %q/%d", r.Verdict, r.ModelLabel)
	}
	if r.ApplicantIncome != 60000 || r.LoanAmount != 50000 {
		t.Errorf("amounts = %v/%v", r.ApplicantIncome, r.LoanAmount)
	}
	if len(r.Reasons) != 1 || r.Reasons[0] != decision.ReasonIncomeSufficient {
		t.Errorf("reasons = %v", r.Reasons)
	}
}

func TestList_NewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		rec := &Record{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Verdict:   "Approved",
		}
		if err := s.Insert(ctx, rec); err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	got, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Errorf("records not newest-first: %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Insert(ctx, &Record{Verdict: "Not Approved"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records after reset, want 0", len(got))
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loanlens.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s.Insert(context.Background(), &Record{Verdict: "Approved"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	s.Close()

	// Second open must tolerate already-applied migrations.
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	got, err := s2.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d records, want 1", len(got))
	}
}
