package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Open connects to the configured engine and verifies the connection.
// driver is "sqlite" (embedded, default for the demo) or "mysql".
func Open(driver, user, pass, host, port, name, path string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch driver {
	case "mysql":
		auth := user
		if pass != "" {
			auth = fmt.Sprintf("%s:%s", user, pass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, host, port, name)
		db, err = sql.Open("mysql", dsn)
	case "sqlite":
		db, err = sql.Open("sqlite", path)
		if db != nil {
			// modernc sqlite serializes writes; one connection avoids
			// SQLITE_BUSY under the demo's single-actor access pattern.
			db.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if driver == "mysql" {
		// Pool settings
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
