package main

import (
	"log"
	"strings"
	"time"

	"placeserver/auth"
	"placeserver/config"
	"placeserver/db"
	"placeserver/favorites"
	"placeserver/handlers"
	"placeserver/models"
	"placeserver/places"
	"placeserver/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	dbc, err := db.Open(config.MYSQL_DSN, config.SQLITE_FILE)
	if err != nil {
		log.Fatalf("DB connection error: %v", err)
	}
	if err = models.Init(dbc); err != nil {
		log.Fatalf("DB migration error: %v", err)
	}
	zap.L().Info("Database connected")

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	_ = router.SetTrustedProxies([]string{})
	router.Use(utils.RequestLogMiddleware)
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	authHandlers := &handlers.Auth{DB: dbc}
	searchHandlers := &handlers.PlaceSearch{Service: &places.Service{Store: &places.GormStore{DB: dbc}}}
	userHandlers := &handlers.User{Favorites: &favorites.Manager{DB: dbc}}

	// Auth handlers
	router.POST("/api/auth/register", authHandlers.Register)
	router.POST("/api/auth/login", authHandlers.Login)
	// Place search
	router.GET("/api/places/search",
		(&utils.CacheRouter{CacheTime: 60, Public: true}).Handler(),
		searchHandlers.Search)
	// Favorites - behind the bearer-token router
	authRouter := &auth.Router{Base: router, DB: dbc}
	authRouter.GET("/api/users/favorites", userHandlers.GetFavorites)
	authRouter.POST("/api/users/favorites", userHandlers.AddFavorite)
	authRouter.DELETE("/api/users/favorites/:placeId", userHandlers.RemoveFavorite)

	zap.L().Info("Server starting", zap.String("bind", config.BIND_ADDRESS))
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}

func newLogger() *zap.Logger {
	if config.DEBUG_MODE {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
