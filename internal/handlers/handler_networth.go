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

// netWorthHandler handles HTTP requests for the aggregated net-worth total.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvc
}

func newNetWorthHandler(ns portssvc.NetWorthSvc) *netWorthHandler {
	return &netWorthHandler{
		netWorthService: ns,
	}
}

// registerNetWorthRoutes registers routes related to the net-worth total.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvc) {
	h := newNetWorthHandler(netWorthService)

	networth := rg.Group("/networth")
	{
		networth.GET("", h.getTotal)
		networth.GET("/history", h.listTotalHistory)
	}
}

// getTotal godoc
// @Summary Current net-worth total
// @Description Recomputes the EUR-normalized total over all accounts with the daily rate and reconciles the monthly total snapshot
// @Tags networth
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Failure 502 {object} map[string]string "Exchange rate source unavailable"
// @Router /networth [get]
func (h *netWorthHandler) getTotal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.netWorthService.RefreshTotal(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Error("Rate source unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate source unavailable"})
		} else {
			logger.Error("Failed to compute total", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute total"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalResponse(total))
}

// listTotalHistory godoc
// @Summary List the monthly net-worth snapshots
// @Description Refreshes the total, then returns all monthly total snapshots, newest first
// @Tags networth
// @Produce json
// @Success 200 {object} dto.ListTotalHistoryResponse
// @Failure 502 {object} map[string]string "Exchange rate source unavailable"
// @Router /networth/history [get]
func (h *netWorthHandler) listTotalHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.netWorthService.ListTotalHistory(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Error("Rate source unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate source unavailable"})
		} else {
			logger.Error("Failed to list total history", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list total history"})
		}
		return
	}

	responses := make([]dto.TotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = dto.ToTotalResponse(&total)
	}

	c.JSON(http.StatusOK, dto.ListTotalHistoryResponse{Totals: responses})
}
