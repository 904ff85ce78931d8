package store

import (
	"testing"
	"time"

	"github.com/okbooks/posledger/internal/models"
)

func sellerCount(t *testing.T, st *Store) int64 {
	t.Helper()
	var count int64
	if err := st.db.Model(&models.SellerProfile{}).Count(&count).Error; err != nil {
		t.Fatalf("count sellers: %v", err)
	}
	return count
}

func TestGetOrCreateDefault(t *testing.T) {
	st := New(setupTestDB(t))

	first, err := st.Sellers.GetOrCreateDefault()
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.ID != DefaultSellerID {
		t.Errorf("id = %d, want %d", first.ID, DefaultSellerID)
	}
	if first.ShopName == "" || first.ShopAddress == "" || first.TaxID == "" || first.Phone == "" {
		t.Errorf("placeholder fields must be non-empty: %#v", first)
	}

	second, err := st.Sellers.GetOrCreateDefault()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call returned a different row: %d vs %d", second.ID, first.ID)
	}
	if got := sellerCount(t, st); got != 1 {
		t.Errorf("seller rows = %d, want exactly 1", got)
	}
}

func TestAutoKeyedProfileAfterDefault(t *testing.T) {
	// The schema is extensible to more profiles; an auto-keyed insert
	// after the explicit-id default must not collide with id 1.
	st := newTestStore(t)

	extra := models.SellerProfile{ShopName: "Branch 2", ShopAddress: "Phuket", TaxID: "9", Phone: "0"}
	if err := st.db.Create(&extra).Error; err != nil {
		t.Fatalf("create second profile: %v", err)
	}
	if extra.ID <= DefaultSellerID {
		t.Errorf("second profile id = %d, want > %d", extra.ID, DefaultSellerID)
	}
	if got := sellerCount(t, st); got != 2 {
		t.Errorf("seller rows = %d, want 2", got)
	}
}

func TestSellerUpdateReplacesFields(t *testing.T) {
	st := newTestStore(t)

	before, err := st.Sellers.ByID(DefaultSellerID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	time.Sleep(10 * time.Millisecond) // keep updated_at strictly after created_at
	ok, err := st.Sellers.Update(DefaultSellerID, SellerUpdate{
		ShopName:    "OK Books",
		ShopAddress: "123 Sukhumvit Rd",
		TaxID:       "1234567890123",
		Phone:       "02-123-4567",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatalf("update reported no matching row")
	}
	after, err := st.Sellers.ByID(DefaultSellerID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if after.ShopName != "OK Books" || after.ShopAddress != "123 Sukhumvit Rd" ||
		after.TaxID != "1234567890123" || after.Phone != "02-123-4567" {
		t.Errorf("fields not replaced: %#v", after)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Errorf("updated_at not bumped: %v -> %v", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestSellerUpdateNonexistent(t *testing.T) {
	st := newTestStore(t)

	ok, err := st.Sellers.Update(99, SellerUpdate{ShopName: "X", ShopAddress: "Y", TaxID: "Z", Phone: "0"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Errorf("update of unknown id reported success")
	}
	if got := sellerCount(t, st); got != 1 {
		t.Errorf("seller rows = %d, want 1 (no row created)", got)
	}
}
