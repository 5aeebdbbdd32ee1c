package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TagVocabulary is the fixed set of tags a menu item may carry.
var TagVocabulary = map[string]bool{
	"Spicy":          true,
	"Vegetarian":     true,
	"Chef's Special": true,
	"New":            true,
	"Popular":        true,
	"Healthy":        true,
	"Classic":        true,
	"Dessert":        true,
}

// TagList is a set of menu item tags, persisted as a JSON array column.
type TagList []string

// Value implements driver.Valuer so GORM can store the tags as JSON.
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner so GORM can read the tags back.
func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for tags column", value)
	}
	if len(raw) == 0 {
		*t = nil
		return nil
	}
	return json.Unmarshal(raw, t)
}

// MenuItem represents a dish or drink on the menu. Every item belongs to
// exactly one category; room and restaurant prices are kept separately.
type MenuItem struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name            string          `json:"name" validate:"required,min=2,max=255"`
	Description     string          `json:"description" validate:"omitempty,max=1000"`
	CategoryID      string          `json:"category_id" gorm:"type:varchar(36);index;not null" validate:"required"`
	Category        Category        `json:"category" gorm:"foreignKey:CategoryID"`
	PriceRoom       decimal.Decimal `json:"price_room" gorm:"type:decimal(10,2)"`
	PriceRestaurant decimal.Decimal `json:"price_restaurant" gorm:"type:decimal(10,2)"`
	Available       bool            `json:"available" gorm:"default:true"`
	ImageURL        string          `json:"image_url" validate:"omitempty,max=500"`
	Tags            TagList         `json:"tags" gorm:"type:text"`
	gorm.Model                      // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
