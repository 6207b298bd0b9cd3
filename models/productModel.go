package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductVariant struct {
	gorm.Model
	ProductID int    `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Value     string `json:"value" binding:"required"`
	InStock   bool   `json:"inStock"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Name           string           `json:"name" binding:"required"`
	Description    string           `json:"description" binding:"required"`
	Price          float64          `json:"price" binding:"required"`
	OriginalPrice  float64          `json:"originalPrice"`
	Category       string           `json:"category" binding:"required"`
	Tags           datatypes.JSON   `json:"tags"`
	InStock        bool             `json:"inStock"`
	StockQuantity  int              `json:"stockQuantity"`
	Rating         float64          `json:"rating"`
	ReviewCount    int              `json:"reviewCount"`
	Features       datatypes.JSON   `json:"features"`
	Specifications datatypes.JSON   `json:"specifications"`
	Variants       []ProductVariant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage   `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
