package models

import (
	"fmt"
	"time"
)

// IssueDateLayout is the local calendar date format stored on invoices.
const IssueDateLayout = "02/01/2006"

// SellerProfile holds the shop identity printed on invoices. Exactly one
// profile exists after first access; it is created lazily with placeholder
// values and updated in place, never deleted.
type SellerProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ShopName    string    `gorm:"size:255;not null" json:"shop_name"`
	ShopAddress string    `gorm:"size:500;not null" json:"shop_address"`
	TaxID       string    `gorm:"size:50;not null" json:"tax_id"`
	Phone       string    `gorm:"size:50;not null" json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (SellerProfile) TableName() string { return "seller_profile" }

// CatalogItem is a reference product row. SKU is a lookup key but not
// unique at the storage level; the catalog is replaced wholesale on import.
type CatalogItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SKU       string    `gorm:"size:100;not null;index" json:"sku"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	Category  string    `gorm:"size:100" json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Invoice is a committed sales invoice. Immutable once created: no update
// or delete is part of the core contract. The invoice number is a pure
// function of (RunningNumber, FiscalYear) and both are unique together.
type Invoice struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	InvoiceNumber   string    `gorm:"size:20;uniqueIndex;not null" json:"invoice_number"`
	RunningNumber   int       `gorm:"not null;uniqueIndex:idx_invoices_year_running,priority:2" json:"running_number"`
	FiscalYear      int       `gorm:"not null;uniqueIndex:idx_invoices_year_running,priority:1" json:"fiscal_year"`
	IssueDate       string    `gorm:"size:10;not null" json:"issue_date"`
	CustomerName    string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerAddress string    `gorm:"size:500;not null" json:"customer_address"`
	CustomerTaxID   string    `gorm:"size:50" json:"customer_tax_id,omitempty"`
	SellerID        uint      `gorm:"not null;index" json:"seller_id"`
	TotalAmount     float64   `gorm:"not null" json:"total_amount"`
	CreatedAt       time.Time `json:"created_at"`

	Lines []InvoiceLine `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`

	// Seller is the display snapshot hydrated on read; how it is resolved
	// (live join vs point-in-time) is the ledger's policy, not the model's.
	Seller *SellerProfile `gorm:"-" json:"seller,omitempty"`
}

// LineTotal sums the recomputed subtotals of all lines.
func (inv *Invoice) LineTotal() float64 {
	var total float64
	for i := range inv.Lines {
		total += inv.Lines[i].ComputeSubtotal()
	}
	return total
}

// InvoiceLine is a line item exclusively owned by one invoice.
// Subtotal is always price times quantity as recomputed by the ledger;
// caller-supplied subtotals are never trusted.
type InvoiceLine struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	InvoiceID uint    `gorm:"index;not null" json:"invoice_id"`
	SKU       string  `gorm:"size:100;not null" json:"sku"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
}

// ComputeSubtotal returns price times quantity regardless of the stored value.
func (l *InvoiceLine) ComputeSubtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// FiscalYear converts a wall-clock instant to the Buddhist calendar year
// used as the invoice numbering epoch.
func FiscalYear(t time.Time) int {
	return t.Year() + 543
}

// FormatInvoiceNumber renders the human-legible number, e.g. "001/2567".
func FormatInvoiceNumber(running, fiscalYear int) string {
	return fmt.Sprintf("%03d/%d", running, fiscalYear)
}
