package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/tutorhive/tutor_marketplace/internal/apperr"
)

// respondError отдаёт клиенту статус и стабильное сообщение из
// таксономии; всё неразмеченное превращается в 500 без деталей
func respondError(c *gin.Context, err error) {
	e := apperr.From(err)
	c.JSON(e.Status, gin.H{"error": e.Message})
}
