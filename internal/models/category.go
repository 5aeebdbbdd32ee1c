package models

import "gorm.io/gorm"

// Category groups for the public menu display.
const (
	GroupFood   = "FOOD"
	GroupDrinks = "DRINKS"
)

// ValidGroup reports whether g is one of the known category groups.
func ValidGroup(g string) bool {
	return g == GroupFood || g == GroupDrinks
}

// Category represents a menu category (e.g. STARTERS, COCKTAILS).
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=2,max=255"`
	Group      string `json:"group" gorm:"column:catalog_group;type:varchar(16);index" validate:"required,oneof=FOOD DRINKS"`
	SortOrder  int    `json:"sort_order" validate:"gte=0"`
	ImageURL   string `json:"image_url" validate:"omitempty,max=500"`
	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
