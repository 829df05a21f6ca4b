package main

import (
	"net/http"
	"path/filepath"

	_ "stadium-api/docs"
	"stadium-api/internal/handler"
	"stadium-api/internal/metrics"
	"stadium-api/internal/middleware"
	"stadium-api/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type routerDeps struct {
	webDir   string
	loader   service.CatalogLoader
	tokens   handler.TokenProvider
	recorder *metrics.Recorder
}

func newRouter(deps routerDeps) *gin.Engine {
	// Initialize layers
	selectionService := service.NewSelectionService(deps.loader)
	catalogService := service.NewCatalogService(deps.loader)

	stadiumHandler := handler.NewStadiumHandler(selectionService, catalogService, deps.recorder)
	pageHandler := handler.NewPageHandler(deps.tokens)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(deps.recorder),
		gin.Recovery(),
	)

	r.LoadHTMLGlob(filepath.Join(deps.webDir, "templates", "*.html"))
	r.Static("/static", filepath.Join(deps.webDir, "static"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", pageHandler.Index)
	r.GET("/game", pageHandler.Game)
	r.GET("/results", pageHandler.Results)
	r.GET("/about", pageHandler.About)

	api := r.Group("/api")
	api.GET("/stadiums", stadiumHandler.ListStadiums)
	api.GET("/stadium/random", stadiumHandler.RandomStadium)
	api.GET("/sports", stadiumHandler.ListSports)

	r.GET("/metrics", gin.WrapH(deps.recorder.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
