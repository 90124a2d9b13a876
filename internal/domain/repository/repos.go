package repository

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Products  ProductRepository
	Catalog   CatalogRepository
	Stock     StockRepository
	Movements MovementRepository
	Sales     SaleRepository
	Customers CustomerRepository
	Suppliers SupplierRepository
	Purchases PurchaseRepository
	Users     UserRepository
}
