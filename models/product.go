// product.go - Defines the Product model and its API representation

package models

import (
	"strings"
	"time"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"not null;size:100" json:"category"`
	Stock       int       `gorm:"not null;default:0" json:"stock"`
	SKU         string    `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:2048" json:"-"` // Relative storage path or absolute URL
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductResource is the serialized form returned by the API. Description and
// image are nullable; image is always resolved to an absolute URL.
type ProductResource struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resource builds the API representation. Image values that already look like
// an absolute URL (seeded data) pass through unchanged; stored relative paths
// are expanded against the application URL.
func (p Product) Resource(appURL string) ProductResource {
	r := ProductResource{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Stock:     p.Stock,
		SKU:       p.SKU,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Description != "" {
		r.Description = &p.Description
	}
	if p.Image != "" {
		url := p.Image
		if !IsAbsoluteURL(url) {
			url = strings.TrimSuffix(appURL, "/") + "/storage/" + strings.TrimPrefix(url, "/")
		}
		r.Image = &url
	}
	return r
}

// ProductResources serializes a page of products.
func ProductResources(products []Product, appURL string) []ProductResource {
	resources := make([]ProductResource, 0, len(products))
	for _, p := range products {
		resources = append(resources, p.Resource(appURL))
	}
	return resources
}

func IsAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
