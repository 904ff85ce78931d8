package store

import "testing"

func TestSeedStarterCatalogFillsEmptyStore(t *testing.T) {
	st := newTestStore(t)

	inserted, err := st.SeedStarterCatalog()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != len(starterCatalog) {
		t.Errorf("inserted = %d, want %d", inserted, len(starterCatalog))
	}
	count, err := st.CatalogCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(starterCatalog)) {
		t.Errorf("count = %d, want %d", count, len(starterCatalog))
	}

	// Idempotent: a second seed is a no-op.
	inserted, err = st.SeedStarterCatalog()
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("second seed inserted = %d, want 0", inserted)
	}
}

func TestSeedStarterCatalogSkipsNonEmptyStore(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.ReplaceCatalog([]ImportRow{{SKU: "A1", Name: "Widget", Price: "9.99"}}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	inserted, err := st.SeedStarterCatalog()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("inserted = %d, want 0 for non-empty store", inserted)
	}
	items, err := st.ListCatalog()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].SKU != "A1" {
		t.Errorf("existing catalog was disturbed: %#v", items)
	}
}
