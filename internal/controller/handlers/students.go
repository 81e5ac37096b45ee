package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/service"
)

type StudentHandler struct {
	students *service.StudentService
}

func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type createStudentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Create обрабатывает POST /v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("Invalid request body"))
		return
	}

	student := &model.Student{Name: req.Name, Email: req.Email}

	if err := h.students.Create(c.Request.Context(), student); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// List обрабатывает GET /v1/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}
