package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONWarning responds with data that was applied in memory but could not be
// persisted; the caller should surface the warning and offer a retry.
func JSONWarning(c *gin.Context, code int, data interface{}, warning string) {
	c.JSON(code, gin.H{"success": true, "data": data, "warning": warning})
}
