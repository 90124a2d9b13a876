package entity

import "time"

// Supplier proveedor de mercancía.
type Supplier struct {
	ID           int64     `db:"id"`
	BusinessName string    `db:"business_name"` // razón social
	TaxID        string    `db:"tax_id"`        // NIT o cédula
	TaxIDType    string    `db:"tax_id_type"`
	ContactName  string    `db:"contact_name"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	Address      string    `db:"address"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
