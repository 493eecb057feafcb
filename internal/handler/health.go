package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the root healthcheck.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Agile Passion API is running 🚀",
		"status":  "ok",
	})
}
