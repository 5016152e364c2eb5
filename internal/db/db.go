package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sposioggi/espositori-api/internal/repository/dao"
)

// OpenInMemory opens a process-local sqlite database that lives only as
// long as the server does, then migrates and seeds the catalog tables.
// Shared cache keeps every pooled connection on the same database.
func OpenInMemory() (*gorm.DB, error) {
	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if err = dao.InitTables(conn); err != nil {
		return nil, fmt.Errorf("dao.InitTables -> %w", err)
	}

	if err = dao.Seed(conn); err != nil {
		return nil, fmt.Errorf("dao.Seed -> %w", err)
	}

	return conn, nil
}
