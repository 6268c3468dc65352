// products.go - Handles the product listing and creation endpoints

package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"product-catalog/config"
	"product-catalog/database"
	"product-catalog/models"
	"product-catalog/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const productsPerPage = 15

// maxImageBytes caps uploads at 2048 KB.
const maxImageBytes = 2048 * 1024

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type ProductInput struct {
	Name        string   `form:"name" binding:"required,max=255"`
	Price       *float64 `form:"price" binding:"required,gte=0.01"`
	Category    string   `form:"category" binding:"required,max=100"`
	Stock       *int     `form:"stock" binding:"required,gte=0"`
	SKU         string   `form:"sku" binding:"required,max=100"`
	Description string   `form:"description"`
}

// ListProducts returns the catalog in primary-key order, 15 items per page.
func ListProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	query := database.DB.Model(&models.Product{}).Order("id")
	var products []models.Product
	meta, err := response.Paginate(query, page, productsPerPage, &products)
	if err != nil {
		response.Error(c, "Failed to retrieve products", err.Error(), http.StatusInternalServerError)
		return
	}

	cfg := config.Load()
	response.Paginated(c, models.ProductResources(products, cfg.AppURL), meta, "Products retrieved successfully")
}

// CreateProduct validates the multipart form, stores an optional image file
// and inserts the product. Requires authentication (enforced by middleware
// before validation runs).
func CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBind(&input); err != nil {
		response.Error(c, "The given data was invalid.", ValidationErrors(err), http.StatusUnprocessableEntity)
		return
	}

	var count int64
	if err := database.DB.Model(&models.Product{}).Where("sku = ?", input.SKU).Count(&count).Error; err != nil {
		response.Error(c, "Failed to create product", err.Error(), http.StatusInternalServerError)
		return
	}
	if count > 0 {
		response.Error(c, "The given data was invalid.", map[string][]string{
			"sku": {"The sku has already been taken."},
		}, http.StatusUnprocessableEntity)
		return
	}

	cfg := config.Load()

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			response.Error(c, "The given data was invalid.", map[string][]string{
				"image": {"The image must be a file of type: jpeg, png, jpg, gif."},
			}, http.StatusUnprocessableEntity)
			return
		}
		if file.Size > maxImageBytes {
			response.Error(c, "The given data was invalid.", map[string][]string{
				"image": {"The image may not be greater than 2048 kilobytes."},
			}, http.StatusUnprocessableEntity)
			return
		}

		// Collision-resistant name: upload time plus a random UUID.
		name := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)
		dir := filepath.Join(cfg.StoragePath, "products")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			response.Error(c, "Failed to create product", err.Error(), http.StatusInternalServerError)
			return
		}
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			response.Error(c, "Failed to create product", err.Error(), http.StatusInternalServerError)
			return
		}
		imagePath = "products/" + name
	}

	product := models.Product{
		Name:        input.Name,
		Price:       *input.Price,
		Category:    input.Category,
		Stock:       *input.Stock,
		SKU:         input.SKU,
		Description: input.Description,
		Image:       imagePath,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		response.Error(c, "Failed to create product", err.Error(), http.StatusInternalServerError)
		return
	}

	response.Success(c, product.Resource(cfg.AppURL), "Product created successfully", http.StatusCreated)
}
