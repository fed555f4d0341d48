package misc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
)

func newTestDB(t *testing.T) *bolt.DB {
	t.Helper()

	dir, err := os.MkdirTemp("", "misc-test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	db, err := bolt.Open(filepath.Join(dir, "test.db"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := CreateBuckets(db, []string{"thing"}); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestGetNextIndex(t *testing.T) {
	db := newTestDB(t)

	db.Update(func(tx *bolt.Tx) error {
		for i, want := range []string{"1", "2", "3"} {
			id, err := GetNextIndex(tx, "thing")
			if err != nil {
				t.Fatal(err)
			}
			if id != want {
				t.Errorf("index %d = %q, want %q", i, id, want)
			}
		}
		return nil
	})
}

func TestJsonRoundTrip(t *testing.T) {
	db := newTestDB(t)

	type rec struct {
		Name string `json:"name"`
	}

	db.Update(func(tx *bolt.Tx) error {
		return PutTxJson(tx, "thing", "a", &rec{Name: "x"})
	})

	var got rec
	db.View(func(tx *bolt.Tx) error {
		return GetTxJson(tx, "thing", "a", &got)
	})
	if got.Name != "x" {
		t.Errorf("round trip = %+v", got)
	}

	var missing rec
	db.View(func(tx *bolt.Tx) error {
		if err := GetTxJson(tx, "thing", "nope", &missing); err != ErrMissingKey {
			t.Errorf("missing key err = %v, want ErrMissingKey", err)
		}
		return nil
	})
}

func TestPseudoUUID(t *testing.T) {
	a, b := PseudoUUID(), PseudoUUID()
	if a == b {
		t.Error("consecutive ids collided")
	}
	if len(a) == 0 {
		t.Error("empty id")
	}
}
