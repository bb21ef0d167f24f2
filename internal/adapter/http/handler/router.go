package handler

import "github.com/gin-gonic/gin"

// NewRouter は HTTP ハンドラーを紐づけた gin.Engine を返す。
func NewRouter(platformHandler *PlatformHandler, generateHandler *GenerateHandler, validateHandler *ValidateHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/platforms", platformHandler.ListPlatforms)
	router.GET("/platforms/:platform/rules", platformHandler.GetRules)
	router.POST("/generate", generateHandler.Generate)
	router.POST("/generate/batch", generateHandler.GenerateBatch)
	router.POST("/validate", validateHandler.Validate)

	return router
}
