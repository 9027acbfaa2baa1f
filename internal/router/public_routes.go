package router

import (
	"net/http"

	"github.com/1nFrastr/miao-bbq-app/internal/consts"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"name":    consts.ApplicationName,
			"version": consts.ApplicationVersion,
		})
	})
}
