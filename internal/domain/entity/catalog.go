package entity

// ProductType tipo o categoría de producto (camiseta, pantalón, ...).
type ProductType struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Size talla del catálogo (S, M, L, 32, ...).
type Size struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
