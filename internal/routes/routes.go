package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/NikhilChaurasiya01/E-Commerce-web-scrapper/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, h *handlers.ProductHandler) {
	api := router.Group("/api")
	{
		api.GET("/products", h.GetProducts)
		api.GET("/stats", h.GetStats)
	}

	// Frontend landing page, when deployed alongside the API.
	if _, err := os.Stat("index.html"); err == nil {
		router.StaticFile("/", "./index.html")
	}
}
