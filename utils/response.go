package utils

import "github.com/gin-gonic/gin"

// SuccessResponse wraps a payload in the standard response envelope.
func SuccessResponse(message string, data interface{}) gin.H {
	res := gin.H{"success": true}
	if message != "" {
		res["message"] = message
	}
	if data != nil {
		res["data"] = data
	}
	return res
}

// ListResponse is SuccessResponse plus a count field for collection payloads.
func ListResponse(data interface{}, count int) gin.H {
	return gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	}
}

// ErrorResponse wraps a failure message in the standard response envelope.
func ErrorResponse(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}

// ErrorResponseWithDetail carries the underlying failure alongside the
// message. Used for 500s in development mode only.
func ErrorResponseWithDetail(message, detail string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
		"error":   detail,
	}
}
