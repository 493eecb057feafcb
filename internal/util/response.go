package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail 统一错误返回：{"error": "<reason>"}，reason 是短的机器可读字符串
func Fail(c *gin.Context, httpStatus int, reason string) {
	c.JSON(httpStatus, gin.H{"error": reason})
}

// OK 统一成功返回：{"success": true}
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
