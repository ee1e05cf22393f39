// internal/handlers/editor/editor_handler.go
package editor

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"hotpromo-service/internal/domain/campaign"
	"hotpromo-service/internal/domain/session"
	"hotpromo-service/internal/pkg/cfglang"
	"hotpromo-service/internal/pkg/response"
	service "hotpromo-service/internal/service/editor"

	"github.com/gin-gonic/gin"
)

type EditorHandler struct {
	editorService *service.EditorService
}

func NewEditorHandler(editorService *service.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
	}
}

// ========== Sessions ==========

func (h *EditorHandler) CreateSession(c *gin.Context) {
	sess, err := h.editorService.CreateSession(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to create session", err)
		return
	}

	response.Success(c, http.StatusCreated, "session created successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) GetSession(c *gin.Context) {
	sess, err := h.editorService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to get session", err)
		return
	}

	response.Success(c, http.StatusOK, "session retrieved successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) CloseSession(c *gin.Context) {
	if err := h.editorService.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, "failed to close session", err)
		return
	}

	response.Success(c, http.StatusOK, "session closed successfully", nil)
}

// ========== Document ==========

func (h *EditorHandler) SetRawInput(c *gin.Context) {
	var req campaign.RawInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.SetRawInput(c.Request.Context(), c.Param("id"), req.RawInput)
	if err != nil {
		response.FromError(c, "failed to store raw input", err)
		return
	}

	response.Success(c, http.StatusOK, "raw input stored successfully", session.NewSessionResponse(sess))
}

// LoadDocument loads the body's raw_input, or the stored raw input when the
// body is empty or omits it.
func (h *EditorHandler) LoadDocument(c *gin.Context) {
	var req campaign.LoadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.LoadDocument(c.Request.Context(), c.Param("id"), req.RawInput)
	if err != nil {
		response.FromError(c, "failed to load document", err)
		return
	}

	response.Success(c, http.StatusOK, "document loaded successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) UpdateCampaign(c *gin.Context) {
	var req campaign.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.UpdateCampaign(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, "failed to update campaign", err)
		return
	}

	response.Success(c, http.StatusOK, "campaign updated successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) Export(c *gin.Context) {
	out, err := h.editorService.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to export campaign", err)
		return
	}

	response.Success(c, http.StatusOK, "campaign exported successfully", gin.H{"export_json": out})
}

// ========== Missions ==========

func (h *EditorHandler) AddMission(c *gin.Context) {
	sess, err := h.editorService.AddMission(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, "failed to add mission", err)
		return
	}

	response.Success(c, http.StatusCreated, "mission added successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) UpdateMission(c *gin.Context) {
	index, ok := missionIndex(c)
	if !ok {
		return
	}

	var req campaign.UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.UpdateMission(c.Request.Context(), c.Param("id"), index, &req)
	if err != nil {
		response.FromError(c, "failed to update mission", err)
		return
	}

	response.Success(c, http.StatusOK, "mission updated successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) RemoveMission(c *gin.Context) {
	index, ok := missionIndex(c)
	if !ok {
		return
	}

	sess, err := h.editorService.RemoveMission(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		response.FromError(c, "failed to remove mission", err)
		return
	}

	response.Success(c, http.StatusOK, "mission removed successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) DuplicateMission(c *gin.Context) {
	index, ok := missionIndex(c)
	if !ok {
		return
	}

	sess, err := h.editorService.DuplicateMission(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		response.FromError(c, "failed to duplicate mission", err)
		return
	}

	response.Success(c, http.StatusCreated, "mission duplicated successfully", session.NewSessionResponse(sess))
}

func (h *EditorHandler) ReorderMission(c *gin.Context) {
	var req campaign.ReorderMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.ReorderMission(c.Request.Context(), c.Param("id"), *req.From, *req.To)
	if err != nil {
		response.FromError(c, "failed to reorder missions", err)
		return
	}

	response.Success(c, http.StatusOK, "missions reordered successfully", session.NewSessionResponse(sess))
}

// SetMissionConfigText replaces a config list from its inline text form.
func (h *EditorHandler) SetMissionConfigText(c *gin.Context) {
	index, ok := missionIndex(c)
	if !ok {
		return
	}
	kind, ok := configKind(c)
	if !ok {
		return
	}

	var req campaign.ConfigTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.SetMissionConfigText(c.Request.Context(), c.Param("id"), index, kind, req.Text)
	if err != nil {
		response.FromError(c, "failed to update mission config", err)
		return
	}

	response.Success(c, http.StatusOK, "mission config updated successfully", session.NewSessionResponse(sess))
}

// SetMissionConfigRows replaces a config list from structured rows. The
// body is the JSON array itself.
func (h *EditorHandler) SetMissionConfigRows(c *gin.Context) {
	index, ok := missionIndex(c)
	if !ok {
		return
	}
	kind, ok := configKind(c)
	if !ok {
		return
	}

	rows, err := c.GetRawData()
	if err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	sess, err := h.editorService.SetMissionConfigRows(c.Request.Context(), c.Param("id"), index, kind, rows)
	if err != nil {
		response.FromError(c, "failed to update mission config", err)
		return
	}

	response.Success(c, http.StatusOK, "mission config updated successfully", session.NewSessionResponse(sess))
}

// ========== Helpers ==========

func missionIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		response.ValidationError(c, "invalid mission index", fmt.Errorf("index %q", c.Param("index")))
		return 0, false
	}
	return index, true
}

func configKind(c *gin.Context) (cfglang.Kind, bool) {
	kind, err := cfglang.ParseKind(c.Param("kind"))
	if err != nil {
		response.ValidationError(c, "invalid config kind", err)
		return "", false
	}
	return kind, true
}
