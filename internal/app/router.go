// internal/app/router.go
package app

import (
	"net/http"

	cfgHandler "hotpromo-service/internal/handlers/cfg"
	editorHandler "hotpromo-service/internal/handlers/editor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	EditorHandler *editorHandler.EditorHandler
	CfgHandler    *cfgHandler.CfgHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Config Codec ====================
	api.GET("/options", h.CfgHandler.Options)
	cfg := api.Group("/cfg")
	{
		cfg.POST("/:kind/parse", h.CfgHandler.Parse)
		cfg.POST("/:kind/serialize", h.CfgHandler.Serialize)
	}

	// ==================== Editor Sessions ====================
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.EditorHandler.CreateSession)
		sessions.GET("/:id", h.EditorHandler.GetSession)
		sessions.DELETE("/:id", h.EditorHandler.CloseSession)

		sessions.PUT("/:id/raw", h.EditorHandler.SetRawInput)
		sessions.POST("/:id/load", h.EditorHandler.LoadDocument)
		sessions.PATCH("/:id/campaign", h.EditorHandler.UpdateCampaign)
		sessions.POST("/:id/export", h.EditorHandler.Export)
	}

	// ==================== Missions ====================
	missions := sessions.Group("/:id/missions")
	{
		missions.POST("", h.EditorHandler.AddMission)
		missions.POST("/reorder", h.EditorHandler.ReorderMission)
		missions.PATCH("/:index", h.EditorHandler.UpdateMission)
		missions.DELETE("/:index", h.EditorHandler.RemoveMission)
		missions.POST("/:index/duplicate", h.EditorHandler.DuplicateMission)
		missions.PUT("/:index/cfg/:kind", h.EditorHandler.SetMissionConfigText)
		missions.PUT("/:index/cfg/:kind/rows", h.EditorHandler.SetMissionConfigRows)
	}

	logger.Info("routes registered", zap.Int("count", len(r.Routes())))
}
