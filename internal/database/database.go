package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/credit"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema for local development. Production schemas are
// managed with SQL migrations; this keeps sqlite runs self-contained.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.UnavailablePeriod{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Review{},
		&domain.AuditLog{},
		&credit.Transaction{},
	)
}
