package sqlmodel

import (
	"fmt"

	"github.com/glebarez/sqlite" // pure go sqlite driver
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func OpenDatabase(driver string, dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	// Automatically migrate your schema, create tables if they do not exist
	err = db.AutoMigrate(
		&User{},
		&DNSRecord{},
		&Repository{},
		&PersonalInfo{},
		&MonitoringHistory{},
		&Alert{},
		&Setting{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
