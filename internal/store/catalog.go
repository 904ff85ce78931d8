package store

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
)

// ImportRow is a candidate catalog row as it arrives from an import
// (whatever parsed the upload hands rows over in this shape). Price is the
// raw text: malformed price text parses as zero and the row is filtered,
// never defaulted silently into the store.
type ImportRow struct {
	SKU      string
	Name     string
	Price    string
	Category string
}

// CatalogStore owns the replaceable reference list of sellable items.
type CatalogStore struct {
	db    *gorm.DB
	cache *catalogCache
}

func NewCatalogStore(db *gorm.DB, cacheTTL time.Duration) *CatalogStore {
	return &CatalogStore{db: db, cache: newCatalogCache(cacheTTL)}
}

// ListAll returns every catalog item ordered by SKU ascending.
func (s *CatalogStore) ListAll() ([]models.CatalogItem, error) {
	if items, ok := s.cache.get(); ok {
		return items, nil
	}
	var items []models.CatalogItem
	if err := s.db.Order("sku ASC, id ASC").Find(&items).Error; err != nil {
		return nil, persistence("list catalog", err)
	}
	s.cache.set(items)
	return items, nil
}

func (s *CatalogStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.CatalogItem{}).Count(&count).Error; err != nil {
		return 0, persistence("count catalog", err)
	}
	return count, nil
}

// IsEmpty is the bootstrap check used to decide whether to seed.
func (s *CatalogStore) IsEmpty() (bool, error) {
	count, err := s.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ReplaceAll deletes every existing item and inserts the accepted subset of
// rows as one transaction. A row is accepted only if SKU and name are
// non-empty and the parsed price is strictly positive; rows failing the
// filter are skipped, not fatal to the batch. A failure partway leaves the
// store in its prior state. Returns the number of rows accepted.
func (s *CatalogStore) ReplaceAll(rows []ImportRow) (int, error) {
	items := make([]models.CatalogItem, 0, len(rows))
	for _, row := range rows {
		sku := strings.TrimSpace(row.SKU)
		name := strings.TrimSpace(row.Name)
		price := parsePrice(row.Price)
		if sku == "" || name == "" || price <= 0 {
			continue
		}
		items = append(items, models.CatalogItem{
			SKU:      sku,
			Name:     name,
			Price:    price,
			Category: strings.TrimSpace(row.Category),
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CatalogItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return 0, persistence("replace catalog", err)
	}
	s.cache.invalidate()
	return len(items), nil
}

// ClearAll removes every catalog item. Administrative operation.
func (s *CatalogStore) ClearAll() error {
	if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CatalogItem{}).Error; err != nil {
		return persistence("clear catalog", err)
	}
	s.cache.invalidate()
	return nil
}

// parsePrice treats malformed text as zero, which the row filter rejects.
// This is a deliberate filter, not a parse error.
func parsePrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return price
}
