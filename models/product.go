package models

import (
	"gorm.io/gorm"
)

// ImageRef is a stored image reference with alt text
type ImageRef struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product represents a catalog entry
type Product struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex" json:"slug"`
	Description string  `json:"description"`
	Price       float64 `gorm:"index" json:"price"`

	CoverImage ImageRef   `gorm:"embedded;embeddedPrefix:cover_" json:"cover_image"`
	Images     []ImageRef `gorm:"serializer:json" json:"images"`

	Category    string   `gorm:"index" json:"category"`
	SubCategory string   `gorm:"index" json:"sub_category"`
	Brand       string   `gorm:"index" json:"brand"`
	Colors      []string `gorm:"serializer:json" json:"colors"`
	Sizes       []string `gorm:"serializer:json" json:"sizes"`
	Tags        []string `gorm:"serializer:json" json:"tags"`

	BestSeller    bool    `gorm:"index;default:false" json:"best_seller"`
	InStock       bool    `gorm:"index;default:true" json:"in_stock"`
	AverageRating float64 `gorm:"index;default:0" json:"average_rating"`
	ReviewCount   int     `gorm:"default:0" json:"review_count"`
}

// Review is a product review, one per (product, user)
type Review struct {
	gorm.Model
	ProductID uint   `json:"product_id" gorm:"uniqueIndex:idx_review_product_user"`
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_review_product_user"`
	User      User   `json:"user"`
	Rating    int    `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string `json:"comment"`
}

// Section is a merchandising block on the landing page
type Section struct {
	gorm.Model
	Title        string `gorm:"not null" json:"title"`
	Slug         string `gorm:"uniqueIndex" json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductIDs   []uint `gorm:"serializer:json" json:"product_ids"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	Active       bool   `gorm:"default:true" json:"active"`
}
