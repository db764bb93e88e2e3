package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	mysqldriver "gorm.io/driver/mysql"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to MySQL when a DSN is configured, otherwise to the given
// SQLite file. The returned handle is passed explicitly to every component
// that needs it - there is no package-level instance.
func Open(mysqlDSN, sqliteFile string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}
	if mysqlDSN != "" {
		return gorm.Open(mysqldriver.Open(mysqlDSN), cfg)
	}
	if sqliteFile != "" {
		// SQLite does not enforce the cascading foreign keys on the
		// favorites relation unless asked to; the DSN flag applies the
		// pragma on every pooled connection.
		if !strings.Contains(sqliteFile, "?") {
			sqliteFile += "?_foreign_keys=on"
		}
		return gorm.Open(sqlitedriver.Open(sqliteFile), cfg)
	}
	return nil, fmt.Errorf("no database configured: set MYSQL_DSN or SQLITE_FILE")
}

// IsDuplicate reports whether err is a unique/primary key violation.
// Gorm translates most of these to ErrDuplicatedKey; the raw MySQL error is
// still checked since raw SQL paths bypass the translation.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
