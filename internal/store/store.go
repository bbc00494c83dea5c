package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no product matches the given id.
var ErrNotFound = errors.New("product not found")

// Product is the application-level shape of a catalog entry. InStock is
// a real boolean here; the 0/1 integer the database keeps never leaves
// this package.
type Product struct {
	ID          uint
	Name        string
	Category    string
	Price       float64
	InStock     bool
	Image       string
	Description string
}

// productRow — таблица products
type productRow struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Category    string  `gorm:"not null"`
	Price       float64 `gorm:"not null"`
	InStock     int     `gorm:"column:in_stock;not null"`
	Image       string  `gorm:"not null"`
	Description string  `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productRow) TableName() string { return "products" }

func toRow(p Product) productRow {
	stock := 0
	if p.InStock {
		stock = 1
	}
	return productRow{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		InStock:     stock,
		Image:       p.Image,
		Description: p.Description,
	}
}

func fromRow(r productRow) Product {
	return Product{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Price:       r.Price,
		InStock:     r.InStock != 0,
		Image:       r.Image,
		Description: r.Description,
	}
}

// Store owns all reads and writes of the products table.
type Store struct {
	db *gorm.DB
}

// New migrates the products table and returns a Store over db.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&productRow{}); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}
	return &Store{db: db}, nil
}

// Create inserts a new product and returns the assigned id.
func (s *Store) Create(p Product) (uint, error) {
	row := toRow(p)
	row.ID = 0
	if err := s.db.Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// List returns every product in store order.
func (s *Store) List() ([]Product, error) {
	var rows []productRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]Product, 0, len(rows))
	for _, r := range rows {
		items = append(items, fromRow(r))
	}
	return items, nil
}

// Get returns the product with the given id, or ErrNotFound.
func (s *Store) Get(id uint) (Product, error) {
	var row productRow
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return fromRow(row), nil
}

// Update replaces every mutable field of the product with id. It
// reports false when no row matched.
func (s *Store) Update(id uint, p Product) (bool, error) {
	row := toRow(p)
	res := s.db.Model(&productRow{}).Where("id = ?", id).Updates(map[string]any{
		"name":        row.Name,
		"category":    row.Category,
		"price":       row.Price,
		"in_stock":    row.InStock,
		"image":       row.Image,
		"description": row.Description,
	})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the product with id and returns its pre-delete
// snapshot, so callers can release any file the image referenced.
func (s *Store) Delete(id uint) (Product, error) {
	snapshot, err := s.Get(id)
	if err != nil {
		return Product{}, err
	}
	res := s.db.Delete(&productRow{}, "id = ?", id)
	if res.Error != nil {
		return Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return Product{}, ErrNotFound
	}
	return snapshot, nil
}

// SeedIfEmpty inserts the given products when the table has no rows.
func (s *Store) SeedIfEmpty(items []Product) error {
	var count int64
	if err := s.db.Model(&productRow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range items {
		if _, err := s.Create(p); err != nil {
			return err
		}
	}
	return nil
}
