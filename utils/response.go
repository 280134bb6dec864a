// utils/response.go - Uniform JSON envelope
//
// Every endpoint answers with {status, message, count?, data?} so the
// frontend can treat all five resources the same way.
package utils

import "github.com/gin-gonic/gin"

// Success writes a success envelope with optional data.
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
	})
}

// SuccessData writes a success envelope carrying a single object.
func SuccessData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// SuccessList writes a success envelope carrying a collection and its count.
func SuccessList(c *gin.Context, code int, message string, count int, data interface{}) {
	c.JSON(code, gin.H{
		"status":  "success",
		"message": message,
		"count":   count,
		"data":    data,
	})
}

// Error writes an error envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  "error",
		"message": message,
	})
}
