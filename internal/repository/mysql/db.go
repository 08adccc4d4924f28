package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the MySQL pool. TranslateError turns driver duplicate-key
// failures into gorm.ErrDuplicatedKey so repositories can map races on unique
// indexes to domain errors without sniffing driver codes.
func InitDB(dsn string) error {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return nil
}
