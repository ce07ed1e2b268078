package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance. The DSN must set loc=UTC so
// stored timestamps stay in the reference timezone. TranslateError surfaces
// driver unique-constraint violations as gorm.ErrDuplicatedKey, which the
// registration and bootstrap paths rely on to arbitrate races.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
