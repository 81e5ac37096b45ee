package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository"
	"go.uber.org/zap"
)

// StudentStore хранилище студентов
type StudentStore interface {
	Create(ctx context.Context, student *model.Student) error
	List(ctx context.Context) ([]*model.Student, error)
}

type StudentService struct {
	students StudentStore
	logger   *zap.Logger
}

func NewStudentService(students StudentStore, logger *zap.Logger) *StudentService {
	return &StudentService{
		students: students,
		logger:   logger,
	}
}

// Create регистрирует нового студента
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	if strings.TrimSpace(student.Name) == "" || strings.TrimSpace(student.Email) == "" {
		return apperr.Validation(msgNameEmailRequired)
	}

	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperr.Conflict(msgEmailExists)
		}
		s.logger.Error("Failed to create student", zap.String("email", student.Email), zap.Error(err))
		return apperr.Internal(err)
	}

	s.logger.Info("Student registered",
		zap.Int64("student_id", student.ID),
		zap.String("name", student.Name),
	)

	return nil
}

// List получает всех студентов, новые первыми
func (s *StudentService) List(ctx context.Context) ([]*model.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list students", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if students == nil {
		students = []*model.Student{}
	}
	return students, nil
}
