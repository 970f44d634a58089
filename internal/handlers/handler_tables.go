package handlers

import (
	"net/http"

	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/continental-snooker/snooker_booking_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type TablesHandler struct {
	rates domain.RateTable
}

func NewTablesHandler(rates domain.RateTable) *TablesHandler {
	return &TablesHandler{rates: rates}
}

// ListTables godoc
// @Summary List bookable tables
// @Description Returns the fixed resource set with hourly rates plus the form's default start/end times, so a client can render the booking form without hard-coding the venue's tables
// @Tags tables
// @Produce json
// @Success 200 {object} dto.ListTablesResponse
// @Router /tables/ [get]
func (h *TablesHandler) ListTables(c *gin.Context) {
	ids := h.rates.TableIDs()
	tables := make([]dto.TableResponse, len(ids))
	for i, id := range ids {
		tables[i] = dto.TableResponse{TableID: string(id), HourlyRate: h.rates[id]}
	}
	c.JSON(http.StatusOK, dto.ListTablesResponse{
		Tables:           tables,
		DefaultStartTime: defaultStartTime,
		DefaultEndTime:   defaultEndTime,
	})
}
