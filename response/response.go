// response.go - Uniform JSON envelope shared by every API handler

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response. Data and Errors are omitted
// when nil; Pagination is only present on paginated listings.
type Envelope struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	From        int   `json:"from"` // 1-based ordinal of the first item in the window, 0 when empty
	To          int   `json:"to"`   // 1-based ordinal of the last item in the window, 0 when empty
}

// Success writes a success envelope. Message defaults to "Success".
func Success(c *gin.Context, data interface{}, message string, code int) {
	if message == "" {
		message = "Success"
	}
	if code == 0 {
		code = http.StatusOK
	}
	c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}

// Error writes an error envelope. Errs carries validation details and may be nil.
func Error(c *gin.Context, message string, errs interface{}, code int) {
	if code == 0 {
		code = http.StatusBadRequest
	}
	c.JSON(code, Envelope{Status: "error", Message: message, Errors: errs})
}

// Paginated writes a success envelope whose data is the current page of items.
func Paginated(c *gin.Context, items interface{}, meta *Pagination, message string) {
	if message == "" {
		message = "Success"
	}
	c.JSON(http.StatusOK, Envelope{
		Status:     "success",
		Message:    message,
		Data:       items,
		Pagination: meta,
	})
}
