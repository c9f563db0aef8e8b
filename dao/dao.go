package dao

import (
	"context"

	"gorm.io/gorm"
)

type Dao struct {
	DB *gorm.DB
}

func NewDao(db *gorm.DB) *Dao {
	return &Dao{DB: db}
}

// Transaction runs fn against a transactional Dao. Used where a completion
// insert and its points credit must land together.
func (d *Dao) Transaction(c context.Context, fn func(tx *Dao) error) error {
	return d.DB.WithContext(c).Transaction(func(tx *gorm.DB) error {
		return fn(&Dao{DB: tx})
	})
}
