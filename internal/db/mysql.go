package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. Timestamp columns scan into
// time.Time only when the DSN enables parseTime, so a DSN without it is
// rejected up front instead of failing on the first feed read.
func NewMySQL(dsn string) (*gorm.DB, error) {
	if !strings.Contains(dsn, "parseTime") {
		return nil, fmt.Errorf("mysql dsn must include parseTime=True")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// model hooks stamp rows in UTC; keep gorm's own bookkeeping consistent
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
