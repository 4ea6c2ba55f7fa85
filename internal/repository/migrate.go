package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRow{},
		&customerRow{},
		&partRow{},
		&supplierRow{},
		&employeeRow{},
		&orderRow{},
		&paymentRow{},
		&paymentMethodRow{},
	)
}

// Tables lists every collection table, in an order safe for bulk deletes.
func Tables() []string {
	return []string{
		"payments",
		"service_orders",
		"parts",
		"suppliers",
		"customers",
		"employees",
		"payment_methods",
		"users",
	}
}
