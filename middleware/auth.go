package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionKeyLoggedIn 会话中的登录标记键
const SessionKeyLoggedIn = "logged_in"

// AdminAuth 后台会话认证中间件
// 这是面向页面的会话门禁：未登录一律302回登录页，不返回API错误
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		loggedIn, ok := session.Get(SessionKeyLoggedIn).(bool)
		if !ok || !loggedIn {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
