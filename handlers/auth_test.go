package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"placeserver/auth"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func authTestRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	h := &Auth{DB: db}
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	router := authTestRouter(openTestDB(t))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantInBody string
	}{
		{"valid", `{"email":"a@b.com","password":"secret123"}`, http.StatusCreated, `"email":"a@b.com"`},
		{"invalid email", `{"email":"bad","password":"secret123"}`, http.StatusBadRequest, "Email"},
		{"short password", `{"email":"c@d.com","password":"x"}`, http.StatusBadRequest, "Password"},
		{"missing body fields", `{}`, http.StatusBadRequest, "required"},
		{"duplicate email", `{"email":"a@b.com","password":"secret123"}`, http.StatusBadRequest, "User already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/register", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantInBody)
		})
	}
}

func TestRegisterReturnsID(t *testing.T) {
	router := authTestRouter(openTestDB(t))

	w := postJSON(router, "/api/auth/register", `{"email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID    uint64 `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "a@b.com", resp.Email)
}

func TestLogin(t *testing.T) {
	router := authTestRouter(openTestDB(t))
	w := postJSON(router, "/api/auth/register", `{"email":"a@b.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("correct credentials issue a token", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"a@b.com","password":"secret123"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"a@b.com","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("unknown email gets the same answer", func(t *testing.T) {
		w := postJSON(router, "/api/auth/login", `{"email":"x@y.com","password":"secret123"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}
