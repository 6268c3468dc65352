package response

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func paginateDB(t *testing.T, rows int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "paginate.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	for i := 1; i <= rows; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("w%d", i)}).Error)
	}
	return db
}

func TestPaginateWindows(t *testing.T) {
	db := paginateDB(t, 20)

	var items []widget
	meta, err := Paginate(db.Model(&widget{}).Order("id"), 2, 15, &items)
	require.NoError(t, err)

	assert.Len(t, items, 5)
	assert.EqualValues(t, 20, meta.Total)
	assert.Equal(t, 15, meta.PerPage)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 2, meta.LastPage)
	assert.Equal(t, 16, meta.From)
	assert.Equal(t, 20, meta.To)
	assert.Equal(t, "w16", items[0].Name)
}

func TestPaginateFirstPage(t *testing.T) {
	db := paginateDB(t, 20)

	var items []widget
	meta, err := Paginate(db.Model(&widget{}).Order("id"), 1, 15, &items)
	require.NoError(t, err)

	assert.Len(t, items, 15)
	assert.Equal(t, 1, meta.From)
	assert.Equal(t, 15, meta.To)
}

func TestPaginateEmptyTable(t *testing.T) {
	db := paginateDB(t, 0)

	var items []widget
	meta, err := Paginate(db.Model(&widget{}).Order("id"), 1, 15, &items)
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.EqualValues(t, 0, meta.Total)
	assert.Equal(t, 1, meta.LastPage, "last page never drops below 1")
	assert.Zero(t, meta.From)
	assert.Zero(t, meta.To)
}

func TestPaginatePageOutOfRange(t *testing.T) {
	db := paginateDB(t, 3)

	// Page below 1 is treated as page 1.
	var items []widget
	meta, err := Paginate(db.Model(&widget{}).Order("id"), 0, 15, &items)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Len(t, items, 3)

	// A page past the end returns an empty window, not an error.
	items = nil
	meta, err = Paginate(db.Model(&widget{}).Order("id"), 5, 15, &items)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 5, meta.CurrentPage)
	assert.Zero(t, meta.From)
}
