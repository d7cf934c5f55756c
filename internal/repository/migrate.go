package repository

import "gorm.io/gorm"

// Migrate creates the schema for every table this package owns. Used by
// local/dev sqlite setups and handler tests; production runs against an
// already-migrated postgres database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&businessModel{},
		&serviceModel{},
		&bookingModel{},
		&analyticsEventModel{},
	)
}
