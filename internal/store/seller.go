package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
)

// DefaultSellerID is the single active profile in a single-tenant
// deployment. The schema allows more profiles; nothing here assumes only
// one can exist, only that this one always does after first access.
const DefaultSellerID uint = 1

// Placeholder sentinels for the lazily created profile. Non-empty strings,
// never nulls, so downstream rendering always has something to show.
const (
	placeholderShopName    = "ชื่อร้าน"
	placeholderShopAddress = "ที่อยู่ร้าน"
	placeholderTaxID       = "0000000000000"
	placeholderPhone       = "000-000-0000"
)

// SellerStore owns the seller profile rows.
type SellerStore struct {
	db *gorm.DB
}

func NewSellerStore(db *gorm.DB) *SellerStore { return &SellerStore{db: db} }

// ByID fetches one profile. Returns ErrNotFound when no row matches.
func (s *SellerStore) ByID(id uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := s.db.First(&profile, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("load seller", err)
	}
	return &profile, nil
}

// GetOrCreateDefault returns profile 1, inserting the placeholder profile
// on first access. Safe against another process racing the same insert:
// the loser of the race re-reads the winner's row.
func (s *SellerStore) GetOrCreateDefault() (*models.SellerProfile, error) {
	profile, err := s.ByID(DefaultSellerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	created := models.SellerProfile{
		ID:          DefaultSellerID,
		ShopName:    placeholderShopName,
		ShopAddress: placeholderShopAddress,
		TaxID:       placeholderTaxID,
		Phone:       placeholderPhone,
	}
	if err := s.db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.ByID(DefaultSellerID)
		}
		return nil, persistence("create default seller", err)
	}
	// Inserting with an explicit id does not advance the postgres serial,
	// so the first auto-keyed profile would collide with id 1. Realign it;
	// sqlite picks max(id)+1 on its own.
	if s.db.Dialector.Name() == "postgres" {
		s.db.Exec("SELECT setval(pg_get_serial_sequence('seller_profile', 'id'), (SELECT MAX(id) FROM seller_profile))")
	}
	return &created, nil
}

// SellerUpdate carries the four editable profile fields. Update replaces
// all of them; there is no partial patch.
type SellerUpdate struct {
	ShopName    string
	ShopAddress string
	TaxID       string
	Phone       string
}

// Update replaces the editable fields and bumps the updated timestamp.
// Returns false with a nil error when no row matched the id: reportable
// but non-fatal for the caller, and no new row is created.
func (s *SellerStore) Update(id uint, in SellerUpdate) (bool, error) {
	res := s.db.Model(&models.SellerProfile{}).Where("id = ?", id).Updates(map[string]any{
		"shop_name":    in.ShopName,
		"shop_address": in.ShopAddress,
		"tax_id":       in.TaxID,
		"phone":        in.Phone,
	})
	if res.Error != nil {
		return false, persistence("update seller", res.Error)
	}
	return res.RowsAffected > 0, nil
}
