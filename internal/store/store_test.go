package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st, err := New(gdb)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return st
}

func sample() Product {
	return Product{
		Name:        "Test Widget",
		Category:    "misc",
		Price:       9.99,
		InStock:     true,
		Image:       "https://example.com/widget.jpg",
		Description: "x",
	}
}

func TestCreateAndList(t *testing.T) {
	st := newTestStore(t)

	before, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	id, err := st.Create(sample())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a generated id")
	}

	after, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d products, got %d", len(before)+1, len(after))
	}

	got := after[len(after)-1]
	want := sample()
	want.ID = id
	if got != want {
		t.Errorf("stored product = %+v, want %+v", got, want)
	}
}

func TestInStockRoundTrip(t *testing.T) {
	st := newTestStore(t)
	for _, inStock := range []bool{true, false} {
		p := sample()
		p.InStock = inStock
		id, err := st.Create(p)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := st.Get(id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.InStock != inStock {
			t.Errorf("InStock round trip: stored %v, read %v", inStock, got.InStock)
		}
	}
}

func TestGetNotFound(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Get(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	st := newTestStore(t)
	if _, err := st.Create(sample()); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := st.Delete(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("row count changed on failed delete: %d", len(items))
	}
}

func TestDeleteReturnsSnapshot(t *testing.T) {
	st := newTestStore(t)
	id, err := st.Create(sample())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := st.Delete(id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.Name != "Test Widget" || deleted.Image != "https://example.com/widget.jpg" {
		t.Errorf("snapshot = %+v", deleted)
	}

	if _, err := st.Get(id); !errors.Is(err, ErrNotFound) {
		t.Fatal("product still present after delete")
	}
}

func TestUpdate(t *testing.T) {
	st := newTestStore(t)
	id, err := st.Create(sample())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	next := Product{
		Name:        "Renamed Widget",
		Category:    "electronics",
		Price:       12.50,
		InStock:     false,
		Image:       "/uploads/new.png",
		Description: "updated",
	}
	changed, err := st.Update(id, next)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !changed {
		t.Fatal("expected a changed row")
	}

	got, err := st.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	next.ID = id
	if got != next {
		t.Errorf("updated product = %+v, want %+v", got, next)
	}
}

func TestUpdateMissing(t *testing.T) {
	st := newTestStore(t)
	changed, err := st.Update(42, sample())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if changed {
		t.Error("update of a missing id reported a changed row")
	}
}

func TestSequentialUpdatesLastWriteWins(t *testing.T) {
	st := newTestStore(t)
	id, err := st.Create(sample())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 1; i <= 5; i++ {
		p := sample()
		p.Price = float64(i)
		if _, err := st.Update(id, p); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	got, err := st.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Price != 5 {
		t.Errorf("expected last write to win, price = %v", got.Price)
	}
}

func TestSeedIfEmpty(t *testing.T) {
	st := newTestStore(t)
	if err := st.SeedIfEmpty(DefaultCatalog); err != nil {
		t.Fatalf("seed: %v", err)
	}
	items, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != len(DefaultCatalog) {
		t.Fatalf("seeded %d products, want %d", len(items), len(DefaultCatalog))
	}

	// a second seed must not duplicate the catalog
	if err := st.SeedIfEmpty(DefaultCatalog); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	items, _ = st.List()
	if len(items) != len(DefaultCatalog) {
		t.Errorf("reseed duplicated rows: %d", len(items))
	}
}
