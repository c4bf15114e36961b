package sqlite

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open abre la base SQLite con claves foráneas activas. path ":memory:" crea una base efímera.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite sql.DB: %w", err)
	}
	// Un solo escritor: SQLite serializa escrituras y la base en memoria vive en una única conexión.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Migrate crea o actualiza las tablas.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CategoryModel{}, &ProductModel{}); err != nil {
		return fmt.Errorf("migrate sqlite: %w", err)
	}
	return nil
}

func dsn(path string) string {
	if path == "" {
		path = ":memory:"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return "file:" + path + sep + "_foreign_keys=on"
}
