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

// Сообщения CRUD-операций репетиторов
const (
	msgNameEmailRequired = "Name and email are required"
	msgEmailExists       = "Email already exists"
	msgTutorNotFound     = "Tutor not found"
	msgTimesRequired     = "Start time and end time are required"
	msgEndBeforeStart    = "End time must be after start time"
	msgSlotOverlaps      = "Time slot overlaps with existing availability"
)

// Профиль по умолчанию для новых репетиторов
const (
	defaultHourlyRate      = 45.00
	defaultRating          = 4.8
	defaultExperienceYears = 3
)

// TutorStore хранилище репетиторов
type TutorStore interface {
	Create(ctx context.Context, tutor *model.Tutor) error
	List(ctx context.Context) ([]*model.Tutor, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// TutorSlotStore хранилище слотов доступности
type TutorSlotStore interface {
	Create(ctx context.Context, slot *model.AvailabilitySlot) error
	ListUpcomingByTutor(ctx context.Context, tutorID int64) ([]*model.AvailabilitySlot, error)
}

type TutorService struct {
	tutors TutorStore
	slots  TutorSlotStore
	logger *zap.Logger
}

func NewTutorService(tutors TutorStore, slots TutorSlotStore, logger *zap.Logger) *TutorService {
	return &TutorService{
		tutors: tutors,
		slots:  slots,
		logger: logger,
	}
}

// Create создаёт репетитора; незаполненные поля профиля получают
// значения по умолчанию
func (s *TutorService) Create(ctx context.Context, tutor *model.Tutor) error {
	if strings.TrimSpace(tutor.Name) == "" || strings.TrimSpace(tutor.Email) == "" {
		return apperr.Validation(msgNameEmailRequired)
	}

	if tutor.Subjects == nil {
		tutor.Subjects = []string{}
	}
	if tutor.Qualifications == nil {
		tutor.Qualifications = []string{}
	}
	if tutor.HourlyRate == 0 {
		tutor.HourlyRate = defaultHourlyRate
	}
	if tutor.Rating == 0 {
		tutor.Rating = defaultRating
	}
	if tutor.ExperienceYears == 0 {
		tutor.ExperienceYears = defaultExperienceYears
	}

	if err := s.tutors.Create(ctx, tutor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperr.Conflict(msgEmailExists)
		}
		s.logger.Error("Failed to create tutor", zap.String("email", tutor.Email), zap.Error(err))
		return apperr.Internal(err)
	}

	s.logger.Info("Tutor created",
		zap.Int64("tutor_id", tutor.ID),
		zap.String("name", tutor.Name),
	)

	return nil
}

// List получает всех репетиторов, новые первыми
func (s *TutorService) List(ctx context.Context) ([]*model.Tutor, error) {
	tutors, err := s.tutors.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list tutors", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if tutors == nil {
		tutors = []*model.Tutor{}
	}
	return tutors, nil
}

// AddSlot создаёт слот доступности репетитора.
// Интервальные инварианты (end > start, отсутствие пересечений)
// проверяет база; сюда их нарушения приходят sentinel-ошибками.
func (s *TutorService) AddSlot(ctx context.Context, tutorID int64, start, end string) (*model.AvailabilitySlot, error) {
	if start == "" || end == "" {
		return nil, apperr.Validation(msgTimesRequired)
	}

	startTime, err := parseTimestamp(start)
	if err != nil {
		return nil, apperr.Validation(msgTimesRequired)
	}
	endTime, err := parseTimestamp(end)
	if err != nil {
		return nil, apperr.Validation(msgTimesRequired)
	}

	exists, err := s.tutors.Exists(ctx, tutorID)
	if err != nil {
		s.logger.Error("Failed to check tutor", zap.Int64("tutor_id", tutorID), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound(msgTutorNotFound)
	}

	slot := &model.AvailabilitySlot{
		TutorID:   tutorID,
		StartTime: startTime,
		EndTime:   endTime,
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidTimeRange):
			return nil, apperr.Validation(msgEndBeforeStart)
		case errors.Is(err, repository.ErrSlotOverlap):
			return nil, apperr.Conflict(msgSlotOverlaps)
		}
		s.logger.Error("Failed to create slot", zap.Int64("tutor_id", tutorID), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	s.logger.Info("Availability slot created",
		zap.Int64("slot_id", slot.ID),
		zap.Int64("tutor_id", tutorID),
		zap.Time("start_time", slot.StartTime),
	)

	return slot, nil
}

// ListSlots получает будущие слоты репетитора; пустой список - валидный
// результат, ошибка только если репетитора не существует
func (s *TutorService) ListSlots(ctx context.Context, tutorID int64) ([]*model.AvailabilitySlot, error) {
	exists, err := s.tutors.Exists(ctx, tutorID)
	if err != nil {
		s.logger.Error("Failed to check tutor", zap.Int64("tutor_id", tutorID), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound(msgTutorNotFound)
	}

	slots, err := s.slots.ListUpcomingByTutor(ctx, tutorID)
	if err != nil {
		s.logger.Error("Failed to list slots", zap.Int64("tutor_id", tutorID), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if slots == nil {
		slots = []*model.AvailabilitySlot{}
	}
	return slots, nil
}
