package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/service"
)

const dateLayout = "2006-01-02"

type AvailabilityHandler struct {
	availability *service.AvailabilityService
}

func NewAvailabilityHandler(availability *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Overview обрабатывает GET /v1/availability.
// Принимает либо ?date=YYYY-MM-DD (один день), либо пару
// ?start_date=&end_date= (диапазон включительно).
func (h *AvailabilityHandler) Overview(c *gin.Context) {
	date := c.Query("date")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var from, to time.Time

	switch {
	case date != "":
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			respondError(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
			return
		}
		from = parsed
		to = parsed.AddDate(0, 0, 1)
	case startDate != "" && endDate != "":
		parsedStart, err := time.Parse(dateLayout, startDate)
		if err != nil {
			respondError(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
			return
		}
		parsedEnd, err := time.Parse(dateLayout, endDate)
		if err != nil {
			respondError(c, apperr.Validation("Invalid date format. Use YYYY-MM-DD"))
			return
		}
		from = parsedStart
		// Конечная дата входит в диапазон
		to = parsedEnd.AddDate(0, 0, 1)
	default:
		respondError(c, apperr.Validation(`Either "date" or both "start_date" and "end_date" parameters are required`))
		return
	}

	availability, err := h.availability.Overview(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": availability,
		"query": gin.H{
			"start_date": from.Format(dateLayout),
			"end_date":   to.AddDate(0, 0, -1).Format(dateLayout),
		},
	})
}
