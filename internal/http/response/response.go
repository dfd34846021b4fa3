package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody error response
type ErrorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// PageResponse paginated list response
type PageResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination page info
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// NewPagination computes the page count for total rows
func NewPagination(page, pageSize int, total int64) Pagination {
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	}
}

// Success writes data with 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(CodeOK, data)
}

// Created writes data with 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(CodeCreated, data)
}

// Message writes {"message": msg} merged with extra fields
func Message(c *gin.Context, msg string, extra gin.H) {
	body := gin.H{"message": msg}
	for key, value := range extra {
		body[key] = value
	}
	c.JSON(CodeOK, body)
}

// SuccessWithPage writes a page of items
func SuccessWithPage(c *gin.Context, items interface{}, pagination Pagination) {
	c.JSON(CodeOK, PageResponse{
		Items:      items,
		Pagination: pagination,
	})
}

// Error writes {"error": msg} with the given status
func Error(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, ErrorBody{
		Error:     msg,
		RequestID: requestID(c),
	})
}

// Abort writes the error and stops the handler chain
func Abort(c *gin.Context, statusCode int, msg string) {
	Error(c, statusCode, msg)
	c.Abort()
}

// NotFound 404
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// BadRequest 400
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
