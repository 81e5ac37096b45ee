package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository"
	"go.uber.org/zap"
)

// Стабильные сообщения об ошибках бронирования (видны клиенту)
const (
	msgIDsRequired       = "Student ID and slot ID are required"
	msgStudentIDRequired = "Student ID is required"
	msgStudentNotFound   = "Student not found"
	msgSlotNotFound      = "Slot not found"
	msgSlotAlreadyBooked = "Slot is already booked"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// BookingStore транзакционный доступ к хранилищу бронирований.
// В тестах подменяется фейком без живого пула.
type BookingStore interface {
	WithinTx(ctx context.Context, fn func(tx repository.BookingTx) error) error
	ListByStudent(ctx context.Context, studentID int64) ([]*model.StudentBooking, error)
	ListRecent(ctx context.Context, limit int) ([]*model.RecentBooking, error)
}

// StudentDirectory проверка существования студента вне транзакции
type StudentDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type BookingService struct {
	store    BookingStore
	students StudentDirectory
	logger   *zap.Logger
}

func NewBookingService(store BookingStore, students StudentDirectory, logger *zap.Logger) *BookingService {
	return &BookingService{
		store:    store,
		students: students,
		logger:   logger,
	}
}

// CreateBooking атомарно бронирует слот для студента.
//
// Вся последовательность (проверка студента, проверка слота, вставка
// бронирования, перевод слота в is_booked) выполняется в одной
// транзакции: либо фиксируется целиком, либо откатывается целиком.
// Флаг is_booked служит быстрой предварительной проверкой; финальная
// гарантия от двойного бронирования - уникальность bookings.slot_id.
func (s *BookingService) CreateBooking(ctx context.Context, studentID, slotID int64) (*model.BookingResult, error) {
	// Повторная валидация входа: хендлер уже проверил наличие полей,
	// но значения приходят из произвольного клиентского ввода
	if studentID <= 0 || slotID <= 0 {
		return nil, apperr.Validation(msgIDsRequired)
	}

	var result *model.BookingResult

	err := s.store.WithinTx(ctx, func(tx repository.BookingTx) error {
		exists, err := tx.StudentExists(ctx, studentID)
		if err != nil {
			return fmt.Errorf("check student: %w", err)
		}
		if !exists {
			return apperr.NotFound(msgStudentNotFound)
		}

		slot, err := tx.SlotByID(ctx, slotID)
		if err != nil {
			return fmt.Errorf("get slot: %w", err)
		}
		if slot == nil {
			return apperr.NotFound(msgSlotNotFound)
		}
		if slot.IsBooked {
			return apperr.Conflict(msgSlotAlreadyBooked)
		}

		booking, err := tx.InsertBooking(ctx, slotID, studentID)
		if err != nil {
			if errors.Is(err, repository.ErrSlotTaken) {
				return apperr.Conflict(msgSlotAlreadyBooked)
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		if err := tx.MarkSlotBooked(ctx, slotID); err != nil {
			return fmt.Errorf("mark slot booked: %w", err)
		}

		result = &model.BookingResult{
			ID:        booking.ID,
			SlotID:    booking.SlotID,
			StudentID: booking.StudentID,
			BookedAt:  booking.BookedAt,
			TutorID:   slot.TutorID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}

		return nil
	})

	if err != nil {
		// Гонка могла дожить до коммита: unique violation там
		// приходит уже из WithinTx
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, apperr.Conflict(msgSlotAlreadyBooked)
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, ae
		}
		s.logger.Error("Failed to create booking",
			zap.Int64("student_id", studentID),
			zap.Int64("slot_id", slotID),
			zap.Error(err),
		)
		return nil, apperr.Internal(err)
	}

	s.logger.Info("Slot booked",
		zap.Int64("booking_id", result.ID),
		zap.Int64("student_id", studentID),
		zap.Int64("slot_id", slotID),
		zap.Int64("tutor_id", result.TutorID),
		zap.Time("start_time", result.StartTime),
	)

	return result, nil
}

// ListByStudent получает бронирования студента, свежие занятия первыми
func (s *BookingService) ListByStudent(ctx context.Context, studentID int64) ([]*model.StudentBooking, error) {
	if studentID <= 0 {
		return nil, apperr.Validation(msgStudentIDRequired)
	}

	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		s.logger.Error("Failed to check student", zap.Int64("student_id", studentID), zap.Error(err))
		return nil, apperr.Internal(err)
	}
	if !exists {
		return nil, apperr.NotFound(msgStudentNotFound)
	}

	bookings, err := s.store.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("Failed to list bookings", zap.Int64("student_id", studentID), zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if bookings == nil {
		bookings = []*model.StudentBooking{}
	}
	return bookings, nil
}

// ListRecent получает последние бронирования, лимит приводится к [1, 100]
func (s *BookingService) ListRecent(ctx context.Context, limit int) ([]*model.RecentBooking, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	bookings, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list recent bookings", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	if bookings == nil {
		bookings = []*model.RecentBooking{}
	}
	return bookings, nil
}
