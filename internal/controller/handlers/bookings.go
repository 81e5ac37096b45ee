package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/service"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// createBookingRequest тело POST /v1/bookings.
// json.Number принимает id и числом, и строкой ("1" и 1), как это
// делал исторический клиент
type createBookingRequest struct {
	StudentID json.Number `json:"student_id"`
	SlotID    json.Number `json:"slot_id"`
}

// Create обрабатывает POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	studentID := parseID(req.StudentID)
	slotID := parseID(req.SlotID)
	if studentID <= 0 || slotID <= 0 {
		// Хранилище не трогаем: валидация до открытия транзакции
		respondError(c, apperr.Validation("Student ID and slot ID are required"))
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), studentID, slotID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// ListByStudent обрабатывает GET /v1/bookings?student_id=
func (h *BookingHandler) ListByStudent(c *gin.Context) {
	raw := c.Query("student_id")
	if raw == "" {
		respondError(c, apperr.Validation("Student ID is required"))
		return
	}

	studentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || studentID <= 0 {
		respondError(c, apperr.Validation("Student ID is required"))
		return
	}

	bookings, err := h.bookings.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListRecent обрабатывает GET /v1/bookings/recent?limit=
func (h *BookingHandler) ListRecent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperr.Validation("Invalid limit parameter"))
			return
		}
		limit = parsed
	}

	bookings, err := h.bookings.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func parseID(n json.Number) int64 {
	id, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
