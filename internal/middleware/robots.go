package middleware

import "github.com/gin-gonic/gin"

const robotsDirective = "noindex, nofollow, noarchive, nosnippet, nocache"

// NoIndex tells crawlers not to index or follow any route.
func NoIndex() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Robots-Tag", robotsDirective)
		c.Next()
	}
}
