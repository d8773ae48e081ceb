package utils

import "github.com/gin-gonic/gin"

// Page is the data payload of paginated list endpoints.
type Page struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors reports per-field validation messages alongside the error.
func JSONFieldErrors(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, gin.H{"success": false, "error": message, "errors": fields})
}

func JSONPage(c *gin.Context, code int, items interface{}, total int64, page, limit int) {
	JSONSuccess(c, code, Page{Items: items, Total: total, Page: page, Limit: limit})
}
