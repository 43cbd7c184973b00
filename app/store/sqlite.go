package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is the single-table schema for the sqlite driver: a key-value pair
// per record. Reads and writes stay whole-record; SQL is only the container.
type record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte
}

func (record) TableName() string { return "records" }

// SQLiteDriver keeps records in a local sqlite database via GORM.
type SQLiteDriver struct {
	db *gorm.DB
}

func NewSQLiteDriver(dsn string) (*SQLiteDriver, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store/sqlite: open %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("store/sqlite: migrate: %w", err)
	}
	return &SQLiteDriver{db: db}, nil
}

func (d *SQLiteDriver) Read(key string) ([]byte, bool, error) {
	var rec record
	err := d.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store/sqlite: read %s: %w", key, err)
	}
	return rec.Value, true, nil
}

func (d *SQLiteDriver) Write(key string, value []byte) error {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&record{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("store/sqlite: write %s: %w", key, err)
	}
	return nil
}

func (d *SQLiteDriver) Delete(key string) error {
	if err := d.db.Delete(&record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store/sqlite: delete %s: %w", key, err)
	}
	return nil
}
