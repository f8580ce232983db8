package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielsvicente/my-finance-api/internal/apperrors"
	portssvc "github.com/danielsvicente/my-finance-api/internal/core/ports/services"
	"github.com/danielsvicente/my-finance-api/internal/dto"
	"github.com/danielsvicente/my-finance-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler handles HTTP requests for account history and notes.
type historyHandler struct {
	historyService portssvc.HistorySvc
}

func newHistoryHandler(hs portssvc.HistorySvc) *historyHandler {
	return &historyHandler{
		historyService: hs,
	}
}

// registerHistoryRoutes registers routes related to account history snapshots.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvc) {
	h := newHistoryHandler(historyService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("/:accountID/history", h.listAccountHistory)
		accounts.POST("/:accountID/history/:historyID/notes", h.addNote)
		accounts.GET("/:accountID/history/:historyID/notes", h.listNotes)
	}
}

// listAccountHistory godoc
// @Summary List an account's monthly snapshots
// @Description Returns the account's history, newest first. An account without snapshots yields an empty list.
// @Tags history
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.ListAccountHistoryResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountID}/history [get]
func (h *historyHandler) listAccountHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	history, err := h.historyService.ListAccountHistory(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to list account history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list account history"})
		}
		return
	}

	responses := make([]dto.AccountHistoryResponse, len(history))
	for i, snapshot := range history {
		responses[i] = dto.ToAccountHistoryResponse(&snapshot)
	}

	c.JSON(http.StatusOK, dto.ListAccountHistoryResponse{History: responses})
}

// addNote godoc
// @Summary Attach a note to a monthly snapshot
// @Tags history
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param historyID path string true "History snapshot ID"
// @Param note body dto.CreateNoteRequest true "Note text"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account or snapshot not found"
// @Router /accounts/{accountID}/history/{historyID}/notes [post]
func (h *historyHandler) addNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	historyID := c.Param("historyID")

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	note, err := h.historyService.AddNote(c.Request.Context(), accountID, historyID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding note", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Snapshot not found", slog.String("history_id", historyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "History snapshot not found"})
		default:
			logger.Error("Failed to add note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		}
		return
	}

	logger.Info("Note added successfully", slog.String("note_id", note.NoteID))
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// listNotes godoc
// @Summary List the notes attached to a monthly snapshot
// @Tags history
// @Produce json
// @Param accountID path string true "Account ID"
// @Param historyID path string true "History snapshot ID"
// @Success 200 {object} dto.ListNotesResponse
// @Failure 404 {object} map[string]string "Account or snapshot not found"
// @Router /accounts/{accountID}/history/{historyID}/notes [get]
func (h *historyHandler) listNotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")
	historyID := c.Param("historyID")

	notes, err := h.historyService.ListNotes(c.Request.Context(), accountID, historyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Snapshot not found", slog.String("history_id", historyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "History snapshot not found"})
		} else {
			logger.Error("Failed to list notes", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notes"})
		}
		return
	}

	responses := make([]dto.NoteResponse, len(notes))
	for i, note := range notes {
		responses[i] = dto.ToNoteResponse(&note)
	}

	c.JSON(http.StatusOK, dto.ListNotesResponse{Notes: responses})
}
