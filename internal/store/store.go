package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
)

const defaultCatalogCacheTTL = 5 * time.Minute

// Store is the persistence core: catalog, seller profile, and invoice
// ledger composed over one backing database. The routing layer talks to
// this type only; coordination between components happens through the
// shared store, never through in-process locks, so correctness holds even
// when multiple processes share the same data file.
type Store struct {
	db      *gorm.DB
	Catalog *CatalogStore
	Sellers *SellerStore
	Ledger  *Ledger
}

type Option func(*Store)

// WithCatalogCacheTTL overrides how long catalog listings are cached.
// Zero or negative disables caching: every listing reads the store.
func WithCatalogCacheTTL(ttl time.Duration) Option {
	return func(s *Store) { s.Catalog.cache = newCatalogCache(ttl) }
}

// WithClock overrides the wall clock used for fiscal-year derivation and
// issue dates. Tests pin it; production uses time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.Ledger.now = now }
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db}
	s.Catalog = NewCatalogStore(db, defaultCatalogCacheTTL)
	s.Sellers = NewSellerStore(db)
	s.Ledger = NewLedger(db, s.Sellers)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice persists a candidate invoice. sellerID 0 means the default
// profile.
func (s *Store) CreateInvoice(customer Customer, lines []LineInput, sellerID uint) (*models.Invoice, error) {
	return s.Ledger.Create(customer, lines, sellerID)
}

func (s *Store) GetInvoice(id uint) (*models.Invoice, error) {
	return s.Ledger.GetByID(id)
}

func (s *Store) GetInvoiceByNumber(number string) (*models.Invoice, error) {
	return s.Ledger.GetByNumber(number)
}

func (s *Store) SearchInvoices(query string, limit int) ([]models.Invoice, error) {
	return s.Ledger.Search(query, limit)
}

// GetSeller auto-creates the default profile on first access.
func (s *Store) GetSeller() (*models.SellerProfile, error) {
	return s.Sellers.GetOrCreateDefault()
}

// UpdateSeller replaces the editable profile fields and returns the fresh
// row, or ErrNotFound when no row matched the id.
func (s *Store) UpdateSeller(id uint, in SellerUpdate) (*models.SellerProfile, error) {
	ok, err := s.Sellers.Update(id, in)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.Sellers.ByID(id)
}

func (s *Store) ListCatalog() ([]models.CatalogItem, error) {
	return s.Catalog.ListAll()
}

func (s *Store) CatalogCount() (int64, error) {
	return s.Catalog.Count()
}

// ReplaceCatalog swaps the whole catalog for the accepted subset of rows
// and reports how many were accepted.
func (s *Store) ReplaceCatalog(rows []ImportRow) (int, error) {
	return s.Catalog.ReplaceAll(rows)
}
