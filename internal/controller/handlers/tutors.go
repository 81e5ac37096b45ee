package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/service"
)

type TutorHandler struct {
	tutors *service.TutorService
}

func NewTutorHandler(tutors *service.TutorService) *TutorHandler {
	return &TutorHandler{tutors: tutors}
}

type createTutorRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Subjects        []string `json:"subjects"`
	About           string   `json:"about"`
	Qualifications  []string `json:"qualifications"`
	HourlyRate      float64  `json:"hourly_rate"`
	Rating          float64  `json:"rating"`
	ExperienceYears int      `json:"experience_years"`
}

// Create обрабатывает POST /v1/tutors
func (h *TutorHandler) Create(c *gin.Context) {
	var req createTutorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	tutor := &model.Tutor{
		Name:            req.Name,
		Email:           req.Email,
		Subjects:        req.Subjects,
		About:           req.About,
		Qualifications:  req.Qualifications,
		HourlyRate:      req.HourlyRate,
		Rating:          req.Rating,
		ExperienceYears: req.ExperienceYears,
	}

	if err := h.tutors.Create(c.Request.Context(), tutor); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tutor)
}

// List обрабатывает GET /v1/tutors
func (h *TutorHandler) List(c *gin.Context) {
	tutors, err := h.tutors.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tutors": tutors})
}

type createSlotRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// AddSlot обрабатывает POST /v1/tutors/:tutor_id/availability
func (h *TutorHandler) AddSlot(c *gin.Context) {
	tutorID, err := tutorIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req createSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	slot, err := h.tutors.AddSlot(c.Request.Context(), tutorID, req.StartTime, req.EndTime)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, slot)
}

// ListSlots обрабатывает GET /v1/tutors/:tutor_id/availability
func (h *TutorHandler) ListSlots(c *gin.Context) {
	tutorID, err := tutorIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	slots, err := h.tutors.ListSlots(c.Request.Context(), tutorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func tutorIDParam(c *gin.Context) (int64, error) {
	tutorID, err := strconv.ParseInt(c.Param("tutor_id"), 10, 64)
	if err != nil || tutorID <= 0 {
		return 0, apperr.NotFound("Tutor not found")
	}
	return tutorID, nil
}
