package escrow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/misc"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir, err := os.MkdirTemp("", "escrow-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db, err := bolt.Open(filepath.Join(dir, "test.db"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := misc.CreateBuckets(db, []string{"escrow"}); err != nil {
		t.Fatal(err)
	}
	return NewStore(db, "escrow")
}

func testDeal(id string) *common.Deal {
	return &common.Deal{
		Id:           id,
		GigId:        "gig1",
		SponsorId:    "sp1",
		InfluencerId: "inf1",
		Price:        3000,
		Assigned:     100,
	}
}

func TestLockAndGet(t *testing.T) {
	s := newTestStore(t)

	entry, err := s.Lock(testDeal("d1"))
	if err != nil {
		t.Fatal(err)
	}
	if entry.Status != StatusLocked {
		t.Errorf("status = %q, want %q", entry.Status, StatusLocked)
	}
	if entry.Amount != 3000 {
		t.Errorf("amount = %v, want 3000", entry.Amount)
	}
	if entry.Locked == 0 {
		t.Error("lock timestamp not set")
	}

	got, err := s.Get("d1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusLocked || got.GigId != "gig1" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestDoubleLock(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Lock(testDeal("d1")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Lock(testDeal("d1")); err != ErrAlreadyLocked {
		t.Errorf("second lock err = %v, want ErrAlreadyLocked", err)
	}
}

func TestRelease(t *testing.T) {
	s := newTestStore(t)
	s.Lock(testDeal("d1"))

	entry, err := s.Release("d1")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Status != StatusReleased {
		t.Errorf("status = %q, want %q", entry.Status, StatusReleased)
	}
	if entry.Resolved == 0 {
		t.Error("resolve timestamp not set")
	}

	// Released is terminal
	if _, err := s.Release("d1"); err != ErrResolved {
		t.Errorf("second release err = %v, want ErrResolved", err)
	}
	if _, err := s.Refund("d1"); err != ErrResolved {
		t.Errorf("refund after release err = %v, want ErrResolved", err)
	}
}

func TestRefund(t *testing.T) {
	s := newTestStore(t)
	s.Lock(testDeal("d2"))

	entry, err := s.Refund("d2")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Status != StatusRefunded {
		t.Errorf("status = %q, want %q", entry.Status, StatusRefunded)
	}
	if _, err := s.Release("d2"); err != ErrResolved {
		t.Errorf("release after refund err = %v, want ErrResolved", err)
	}
}

func TestUnknownDeal(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Get("nope"); err != ErrNotFound {
		t.Errorf("Get err = %v, want ErrNotFound", err)
	}
	if _, err := s.Release("nope"); err != ErrNotFound {
		t.Errorf("Release err = %v, want ErrNotFound", err)
	}
}
