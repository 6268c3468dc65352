package response

import (
	"reflect"

	"gorm.io/gorm"
)

// Paginate runs query windowed to the requested page, loading the items into
// dest (a pointer to a slice) and returning the pagination meta. Pages start
// at 1; a page number beyond the last returns an empty window rather than
// clamping, and the last page is never below 1.
func Paginate(query *gorm.DB, page, perPage int, dest interface{}) (*Pagination, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	offset := (page - 1) * perPage
	if err := query.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return nil, err
	}

	count := reflect.ValueOf(dest).Elem().Len()
	meta := &Pagination{
		Total:       total,
		PerPage:     perPage,
		CurrentPage: page,
		LastPage:    lastPage,
	}
	if count > 0 {
		meta.From = offset + 1
		meta.To = offset + count
	}
	return meta, nil
}
