package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"meatmarket/internal/model"
)

// tables lists the models in dependency order; drops run in reverse.
var tables = []interface{}{
	&model.User{},
	&model.Seller{},
	&model.Product{},
	&model.Review{},
	&model.Order{},
	&model.OrderProduct{},
}

// Migrate creates or updates the schema. When reset is true every table is
// dropped first.
func Migrate(gormDB *gorm.DB, reset bool) error {
	if reset {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for i := len(tables) - 1; i >= 0; i-- {
			if err := gormDB.Migrator().DropTable(tables[i]); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
	}

	if err := gormDB.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
