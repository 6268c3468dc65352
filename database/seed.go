// seed.go - Sample catalog data for development environments

package database

import (
	"fmt"
	"math/rand"

	"product-catalog/models"
)

// Categories matches the suggested set offered by the product form. The data
// model treats category as free text; this list only drives seeding and UI
// suggestions.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Toys",
	"Food & Beverages",
	"Health & Beauty",
}

var seedNames = []string{
	"Wireless Headphones", "Ceramic Mug", "Yoga Mat", "Desk Lamp",
	"Cotton T-Shirt", "Mystery Novel", "Garden Trowel", "Protein Bar",
	"Face Cream", "Building Blocks", "Bluetooth Speaker", "Running Shoes",
	"Notebook Set", "Scented Candle", "Water Bottle", "Phone Stand",
	"Wool Scarf", "Cookbook", "Hand Soap", "Puzzle Cube",
}

// Seed inserts sample products when the table is empty. Seeded products carry
// absolute image URLs, exercising the pass-through path of image resolution.
func Seed(count int) error {
	var existing int64
	if err := DB.Model(&models.Product{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, models.Product{
			Name:        seedNames[i%len(seedNames)],
			Price:       float64(rand.Intn(99000)+999) / 100,
			Category:    Categories[rand.Intn(len(Categories))],
			Stock:       rand.Intn(101),
			SKU:         fmt.Sprintf("SKU-%04d-%c%c%c", i+1, 'A'+rand.Intn(26), 'A'+rand.Intn(26), 'A'+rand.Intn(26)),
			Description: "Seeded sample product.",
			Image:       fmt.Sprintf("https://picsum.photos/400/300?random=%d", rand.Intn(1000)+1),
		})
	}
	return DB.Create(&products).Error
}
