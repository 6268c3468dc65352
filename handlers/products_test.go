// products_test.go - Tests for product listing, creation and image handling

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"product-catalog/database"
	"product-catalog/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productForm builds a multipart body with the given fields plus an optional
// file under the "image" field.
func productForm(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func postProduct(router *gin.Engine, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validProductFields(sku string) map[string]string {
	return map[string]string{
		"name":        "Wireless Headphones",
		"price":       "149.99",
		"category":    "Electronics",
		"stock":       "25",
		"sku":         sku,
		"description": "Noise cancelling over-ear headphones.",
	}
}

func TestCreateProductRequiresAuth(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	body, contentType := productForm(t, validProductFields("SKU-0001-ABC"), "", nil)
	w := postProduct(router, "", body, contentType)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	database.DB.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count, "an unauthenticated create must not insert a row")
}

func TestCreateProduct(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token := registerUser(t, router, "Alice", "alice@example.com")

	body, contentType := productForm(t, validProductFields("SKU-0001-ABC"), "", nil)
	w := postProduct(router, token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env.Status)

	var product models.ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "Wireless Headphones", product.Name)
	assert.Equal(t, 149.99, product.Price)
	assert.Equal(t, "SKU-0001-ABC", product.SKU)
	assert.Equal(t, 25, product.Stock)
	assert.Nil(t, product.Image)
	require.NotNil(t, product.Description)
	assert.Equal(t, "Noise cancelling over-ear headphones.", *product.Description)
}

func TestCreateProductValidation(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token := registerUser(t, router, "Alice", "alice@example.com")

	fields := validProductFields("SKU-0001-ABC")
	fields["price"] = "0"
	fields["name"] = ""
	body, contentType := productForm(t, fields, "", nil)

	w := postProduct(router, token, body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "price")
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token := registerUser(t, router, "Alice", "alice@example.com")

	body, contentType := productForm(t, validProductFields("SKU-0001-ABC"), "", nil)
	require.Equal(t, http.StatusCreated, postProduct(router, token, body, contentType).Code)

	body, contentType = productForm(t, validProductFields("SKU-0001-ABC"), "", nil)
	w := postProduct(router, token, body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, []string{"The sku has already been taken."}, env.Errors["sku"])

	var count int64
	database.DB.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 1, count, "the failed attempt must not change the product count")
}

func TestCreateProductWithImage(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token := registerUser(t, router, "Alice", "alice@example.com")

	body, contentType := productForm(t, validProductFields("SKU-0002-IMG"), "photo.png", []byte("\x89PNG fake image bytes"))
	w := postProduct(router, token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	var product models.ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &product))

	require.NotNil(t, product.Image)
	assert.True(t, strings.HasPrefix(*product.Image, "http://localhost:8080/storage/products/"), *product.Image)
	assert.True(t, strings.HasSuffix(*product.Image, ".png"), *product.Image)

	// The file really landed under the storage dir.
	rel := strings.TrimPrefix(*product.Image, "http://localhost:8080/storage/")
	_, err := os.Stat(filepath.Join(os.Getenv("STORAGE_PATH"), rel))
	assert.NoError(t, err)
}

func TestCreateProductRejectsBadImage(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()
	token := registerUser(t, router, "Alice", "alice@example.com")

	// Wrong extension.
	body, contentType := productForm(t, validProductFields("SKU-0003-BAD"), "notes.txt", []byte("not an image"))
	w := postProduct(router, token, body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Errors, "image")

	// Over the size cap.
	big := bytes.Repeat([]byte("x"), maxImageBytes+1)
	body, contentType = productForm(t, validProductFields("SKU-0003-BAD"), "big.jpg", big)
	w = postProduct(router, token, body, contentType)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env = decodeEnvelope(t, w)
	assert.Contains(t, env.Errors, "image")

	var count int64
	database.DB.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestListProductsPagination(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	for i := 1; i <= 20; i++ {
		require.NoError(t, database.DB.Create(&models.Product{
			Name:     fmt.Sprintf("Product %d", i),
			Price:    9.99,
			Category: "Books",
			Stock:    i,
			SKU:      fmt.Sprintf("SKU-%04d-AAA", i),
		}).Error)
	}

	w := doJSON(router, "GET", "/api/products?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var items []models.ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 5)

	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 20, env.Pagination.Total)
	assert.Equal(t, 15, env.Pagination.PerPage)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.LastPage)
	assert.Equal(t, 16, env.Pagination.From)
	assert.Equal(t, 20, env.Pagination.To)

	// Items keep primary-key order across the window boundary.
	assert.Equal(t, "Product 16", items[0].Name)
	assert.Equal(t, "Product 20", items[4].Name)
}

func TestListProductsEmptyAndBeyondLastPage(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doJSON(router, "GET", "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.EqualValues(t, 0, env.Pagination.Total)
	assert.Equal(t, 1, env.Pagination.LastPage)
	assert.Zero(t, env.Pagination.From)
	assert.Zero(t, env.Pagination.To)

	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Solo", Price: 1.00, Category: "Toys", Stock: 1, SKU: "SKU-0001-ONE",
	}).Error)

	w = doJSON(router, "GET", "/api/products?page=9", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var items []models.ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Empty(t, items)
	assert.Equal(t, 9, env.Pagination.CurrentPage, "pages beyond the end are not clamped")
	assert.Equal(t, 1, env.Pagination.LastPage)
}

func TestImageURLResolution(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	// Seeded products carry absolute URLs which must pass through unchanged.
	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Seeded", Price: 10, Category: "Books", Stock: 1,
		SKU: "SKU-0001-EXT", Image: "https://picsum.photos/400/300?random=7",
	}).Error)
	// Uploaded products store a relative path which is expanded at read time.
	require.NoError(t, database.DB.Create(&models.Product{
		Name: "Uploaded", Price: 10, Category: "Books", Stock: 1,
		SKU: "SKU-0002-LOC", Image: "products/123_abc.png",
	}).Error)

	w := doJSON(router, "GET", "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var items []models.ProductResource
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Image)
	assert.Equal(t, "https://picsum.photos/400/300?random=7", *items[0].Image)
	require.NotNil(t, items[1].Image)
	assert.Equal(t, "http://localhost:8080/storage/products/123_abc.png", *items[1].Image)
}
