package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database from environment variables. With DB_DRIVER=mysql
// the usual DB_* variables are required; anything else falls back to a local
// sqlite file so development needs no running server.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	if driver == "mysql" {
		return gorm.Open(mysql.Open(mysqlDSN()), &gorm.Config{})
	}

	path := getenv("SQLITE_PATH", "reservations.db")
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// mysqlDSN builds the connection string from DB_* variables.
// clientFoundRows makes affected-row counts mean matched rows, as sqlite
// reports them. Without it a same-value UPDATE counts zero rows and the
// repository guards misread that as a missing record.
func mysqlDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_HOST", "127.0.0.1"),
		getenv("DB_PORT", "3306"),
		os.Getenv("DB_NAME"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
