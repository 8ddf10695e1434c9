package infra

import (
	"strings"

	"github.com/AndreiWRoiko/InvetarioOp/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the backing store and migrates the five tables.
//
// A postgres:// DSN selects the relational deployment; anything else (or an
// empty DSN) selects the pure-Go sqlite driver, where "file::memory:" gives
// the in-process store used by development and tests. Identity generation
// and default values are applied by the models either way, so the two
// deployments behave identically at the repository contract.
func NewDatabase(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dsn = strings.TrimPrefix(dsn, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Notebook{},
		&model.Celular{},
		&model.Terminal{},
		&model.Historico{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
