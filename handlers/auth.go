package handlers

import (
	"errors"
	"net/http"
	"placeserver/auth"
	"placeserver/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Auth holds the handlers that don't require an authenticated user.
type Auth struct {
	DB *gorm.DB
}

func (h *Auth) Register(c *gin.Context) {
	req := RegisterRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{err.Error()})
		return
	}
	user, err := models.UserRegister(h.DB, req.Email, req.Password)
	if err != nil {
		// Duplicate email and store failures both answer 400 here; the
		// message is the only distinction, matching the original API.
		c.JSON(http.StatusBadRequest, MessageResponse{registerErrorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func registerErrorMessage(err error) string {
	if errors.Is(err, models.ErrEmailTaken) {
		return models.ErrEmailTaken.Error()
	}
	return "Registration failed"
}

func (h *Auth) Login(c *gin.Context) {
	req := LoginRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{err.Error()})
		return
	}
	user, ok, err := models.UserLogin(h.DB, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{"Internal server error"})
		return
	}
	if !ok {
		// Deliberately the same answer for unknown email and wrong
		// password.
		c.JSON(http.StatusUnauthorized, InvalidCredsResponse)
		return
	}
	token, err := auth.IssueToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{"Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
