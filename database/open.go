package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bikalpokharel/portfolio-backend/config"
)

// Open connects to the datastore selected by DB_TYPE: "postgres" for a real
// deployment, "sqlite" for small ones. Both the server and the sync-projects
// command go through here.
func Open(cfg map[string]string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	dbType := config.GetString(cfg, "DB_TYPE", "sqlite")
	switch dbType {
	case "postgres":
		dsn := config.GetString(cfg, "DATABASE_URL", "")
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				config.GetString(cfg, "DB_HOST", "localhost"),
				config.GetString(cfg, "DB_USER", "postgres"),
				config.GetString(cfg, "DB_PASSWORD", ""),
				config.GetString(cfg, "DB_NAME", "portfolio"),
				config.GetString(cfg, "DB_PORT", "5432"),
				config.GetString(cfg, "DB_SSLMODE", "disable"),
			)
		}
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      gormLogger,
		})
	case "sqlite":
		path := config.GetString(cfg, "SQLITE_PATH", "portfolio.db")
		return gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
			Logger: gormLogger,
		})
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}
