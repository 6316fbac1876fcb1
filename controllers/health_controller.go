package controllers

import (
	"pentouz/config"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

// GetHealth godoc
// @Summary System health panel: DB, Redis and process stats
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func GetHealth(c *gin.Context) {
	health := services.CheckHealth(c.Request.Context(), config.DB, config.RedisClient, Version)
	response.Success(c, health)
}
