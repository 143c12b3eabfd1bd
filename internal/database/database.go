// Package database is the persistence boundary: the full book
// collection under one SQLite table, accessed through explicit
// read-modify-write calls. No other package touches the storage medium.
package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// ErrQuotaExceeded indicates the backing medium rejected a write for
// lack of space. Callers must surface it to the user; the most recent
// change may not have persisted.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Book{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetAllBooks returns the whole collection.
func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := d.DB.Find(&books).Error
	return books, err
}

// GetBookByID returns one record or gorm.ErrRecordNotFound.
func (d *Database) GetBookByID(id string) (*entities.Book, error) {
	var book entities.Book
	if err := d.DB.First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// ReplaceAllBooks swaps the entire collection for the given records in
// one transaction. This is the import path: either every record lands
// or the previous collection survives untouched.
func (d *Database) ReplaceAllBooks(books []entities.Book) error {
	err := d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		if len(books) == 0 {
			return nil
		}
		return tx.Create(&books).Error
	})
	return wrapWriteError(err)
}

// UpsertBook inserts the record or, when its id already exists, updates
// it in place.
func (d *Database) UpsertBook(book *entities.Book) error {
	err := d.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(book).Error
	return wrapWriteError(err)
}

// DeleteBook removes the record with the given id. Deleting an unknown
// id is not an error.
func (d *Database) DeleteBook(id string) error {
	return wrapWriteError(d.DB.Delete(&entities.Book{}, "id = ?", id).Error)
}

func (d *Database) CountBooks() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// wrapWriteError maps a full-medium failure from the driver to
// ErrQuotaExceeded so callers can branch on it without knowing SQLite
// error strings.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "database or disk is full") || strings.Contains(msg, "no space left on device") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return err
}
