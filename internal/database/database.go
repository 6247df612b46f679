package database

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"chessclub/backend/internal/config"
	"chessclub/backend/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var DB *gorm.DB

// Dialector picks the gorm dialector for a configured driver name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "":
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open opens a connection and runs migrations. Duplicate-key errors are
// translated to gorm.ErrDuplicatedKey for every driver.
func Open(driver, dsn string, out io.Writer, level logger.LogLevel) (*gorm.DB, error) {
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	if out == nil {
		out = os.Stdout
	}
	customLogger := logger.New(
		log.New(out, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite enforces foreign keys per connection and allows one writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Connect initializes the global database connection and runs migrations.
func Connect(cfg *config.Config, out io.Writer) {
	var err error

	DB, err = Open(cfg.DatabaseDriver, cfg.DatabaseURL, out, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.DatabaseDriver != DriverSQLite {
		sqlDB, err := DB.DB()
		if err != nil {
			log.Fatalf("Failed to get underlying sql.DB: %v", err)
		}
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Printf("Database connection established (%s).", cfg.DatabaseDriver)
	log.Println("Database migrated successfully.")
}
