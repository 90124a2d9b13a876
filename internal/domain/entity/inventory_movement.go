package entity

import "time"

// MovementKind tipo de movimiento del libro de inventario.
type MovementKind string

// Tipos de movimiento. La cantidad siempre es positiva; el tipo define la dirección.
const (
	MovementEntry         MovementKind = "ENTRY"          // entrada (compra, carga inicial)
	MovementExit          MovementKind = "EXIT"           // salida (venta, salida manual)
	MovementAdjustment    MovementKind = "ADJUSTMENT"     // ajuste positivo
	MovementReversalEntry MovementKind = "REVERSAL_ENTRY" // entrada por anulación de venta
)

// Valid indica si el tipo es conocido.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementEntry, MovementExit, MovementAdjustment, MovementReversalEntry:
		return true
	}
	return false
}

// Sign +1 para tipos que suman stock, -1 para EXIT.
func (k MovementKind) Sign() int {
	if k == MovementExit {
		return -1
	}
	return 1
}

// Movement registro inmutable del libro de inventario (kardex).
type Movement struct {
	ID          string       `db:"id"`
	ProductID   int64        `db:"product_id"`
	Kind        MovementKind `db:"kind"`
	Quantity    int          `db:"quantity"`
	ReferenceID *int64       `db:"reference_id"` // venta o compra que causó el movimiento
	Reason      string       `db:"reason"`
	CreatedBy   string       `db:"created_by"`
	CreatedAt   time.Time    `db:"created_at"`
}

// Signed cantidad con signo según el tipo.
func (m Movement) Signed() int {
	return m.Kind.Sign() * m.Quantity
}
