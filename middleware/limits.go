package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodySizeLimit 请求体大小上限中间件
// 超出上限的上传在写入任何内容之前就以413拒绝
func BodySizeLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		// Content-Length 不可信时由 MaxBytesReader 在读取阶段兜底
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
