package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/okbooks/posledger/internal/models"
	"github.com/okbooks/posledger/internal/validation"
)

// DefaultSearchLimit caps Search results when the caller passes no limit.
const DefaultSearchLimit = 50

// Customer is the denormalized buyer info copied onto the invoice header.
// Customer identity is not modeled as an entity.
type Customer struct {
	Name    string
	Address string
	TaxID   string
}

// LineInput is a candidate invoice line. Subtotal is accepted for shape
// compatibility with callers but ignored: the ledger always recomputes
// price times quantity.
type LineInput struct {
	SKU      string
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
}

// SellerSource resolves the seller display data attached to invoices on
// read. The default implementation re-joins the live profile; swapping the
// policy to point-in-time snapshots only requires another implementation.
type SellerSource interface {
	ByID(id uint) (*models.SellerProfile, error)
}

// Ledger owns the invoice header and line tables. An invoice is either
// absent or committed; no intermediate state is observable outside the
// creation transaction.
type Ledger struct {
	db      *gorm.DB
	sellers SellerSource
	now     func() time.Time
}

func NewLedger(db *gorm.DB, sellers SellerSource) *Ledger {
	return &Ledger{db: db, sellers: sellers, now: time.Now}
}

func validateCreate(customer Customer, lines []LineInput) error {
	v := validation.Violations{}
	validation.Required("customer_name", customer.Name, v)
	validation.Required("customer_address", customer.Address, v)
	validation.NonEmptySlice("lines", lines, v)
	for i, ln := range lines {
		prefix := fmt.Sprintf("lines[%d].", i)
		validation.Required(prefix+"sku", ln.SKU, v)
		validation.Required(prefix+"name", ln.Name, v)
		validation.PositiveFloat(prefix+"price", ln.Price, v)
		validation.PositiveInt(prefix+"quantity", ln.Quantity, v)
	}
	if !v.Empty() {
		return &ValidationError{Violations: v}
	}
	return nil
}

// Create validates the candidate invoice, allocates the next number for
// the current fiscal year, and writes header plus lines as one atomic
// unit. Number allocation and the fiscal-year computation happen inside
// the same transaction as the insert, so a create racing a year boundary
// cannot produce a duplicate or gapped number. On a unique-index collision
// the whole transaction rolls back and ErrConflict is returned; the caller
// may retry the entire call.
func (l *Ledger) Create(customer Customer, lines []LineInput, sellerID uint) (*models.Invoice, error) {
	if err := validateCreate(customer, lines); err != nil {
		return nil, err
	}
	if sellerID == 0 {
		sellerID = DefaultSellerID
	}
	seller, err := l.sellers.ByID(sellerID)
	if errors.Is(err, ErrNotFound) {
		return nil, violation("seller_id", "unknown")
	}
	if err != nil {
		return nil, err
	}

	items := make([]models.InvoiceLine, len(lines))
	var total float64
	for i, ln := range lines {
		subtotal := ln.Price * float64(ln.Quantity)
		items[i] = models.InvoiceLine{
			SKU:      strings.TrimSpace(ln.SKU),
			Name:     strings.TrimSpace(ln.Name),
			Price:    ln.Price,
			Quantity: ln.Quantity,
			Subtotal: subtotal,
		}
		total += subtotal
	}

	var inv models.Invoice
	err = l.db.Transaction(func(tx *gorm.DB) error {
		now := l.now()
		fiscalYear := models.FiscalYear(now)
		running, err := nextRunningNumber(tx, fiscalYear)
		if err != nil {
			return err
		}
		inv = models.Invoice{
			InvoiceNumber:   models.FormatInvoiceNumber(running, fiscalYear),
			RunningNumber:   running,
			FiscalYear:      fiscalYear,
			IssueDate:       now.Format(models.IssueDateLayout),
			CustomerName:    strings.TrimSpace(customer.Name),
			CustomerAddress: strings.TrimSpace(customer.Address),
			CustomerTaxID:   strings.TrimSpace(customer.TaxID),
			SellerID:        sellerID,
			TotalAmount:     total,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = inv.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("allocate invoice number: %w", ErrConflict)
		}
		return nil, persistence("create invoice", err)
	}

	inv.Lines = items
	inv.Seller = seller
	return &inv, nil
}

// GetByID returns the header joined with its lines and the seller display
// data, or ErrNotFound.
func (l *Ledger) GetByID(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := l.db.Preload("Lines", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("invoice_lines.id ASC")
	}).First(&inv, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("load invoice", err)
	}
	if err := l.attachSeller(&inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByNumber is an exact match on the unique invoice number string.
func (l *Ledger) GetByNumber(number string) (*models.Invoice, error) {
	var inv models.Invoice
	err := l.db.Select("id").Where("invoice_number = ?", strings.TrimSpace(number)).First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistence("load invoice by number", err)
	}
	return l.GetByID(inv.ID)
}

// Search matches the query as a case-insensitive substring of invoice
// number, customer name, or issue date, newest first. An empty query
// returns the most recent invoices unfiltered. Lines are not loaded; use
// GetByID for the full document.
func (l *Ledger) Search(query string, limit int) ([]models.Invoice, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := l.db.Model(&models.Invoice{}).Order("created_at DESC, id DESC").Limit(limit)
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		like := "%" + strings.ToLower(trimmed) + "%"
		q = q.Where("LOWER(invoice_number) LIKE ? OR LOWER(customer_name) LIKE ? OR issue_date LIKE ?", like, like, like)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, persistence("search invoices", err)
	}
	sellers := map[uint]*models.SellerProfile{}
	for i := range invoices {
		profile, ok := sellers[invoices[i].SellerID]
		if !ok {
			var err error
			profile, err = l.sellers.ByID(invoices[i].SellerID)
			if errors.Is(err, ErrNotFound) {
				profile = nil
			} else if err != nil {
				return nil, err
			}
			sellers[invoices[i].SellerID] = profile
		}
		invoices[i].Seller = profile
	}
	return invoices, nil
}

func (l *Ledger) attachSeller(inv *models.Invoice) error {
	seller, err := l.sellers.ByID(inv.SellerID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	inv.Seller = seller
	return nil
}
