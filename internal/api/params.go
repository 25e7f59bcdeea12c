package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter, writing a 400 response itself
// when the value is not a positive integer.
func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
