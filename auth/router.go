package auth

import (
	"net/http"
	"placeserver/models"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HandlerFunc receives the authenticated user pre-loaded from the store.
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds bearer-token checks + User pre-loading
type Router struct {
	Base *gin.Engine
	DB   *gorm.DB
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access denied"})
		return
	}
	claims, err := ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access denied"})
		return
	}
	// The token may outlive the account; re-load the user on every request.
	user := models.User{}
	if cr.DB.First(&user, claims.ID).Error != nil || user.ID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access denied"})
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
