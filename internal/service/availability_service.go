package service

import (
	"context"
	"sort"
	"time"

	"github.com/tutorhive/tutor_marketplace/internal/apperr"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"go.uber.org/zap"
)

// SlotRangeLister будущие слоты всех репетиторов в диапазоне дат
type SlotRangeLister interface {
	ListInRange(ctx context.Context, from, to time.Time) ([]*model.SlotWithTutor, error)
}

// TutorLister id и имена всех репетиторов
type TutorLister interface {
	ListRefs(ctx context.Context) ([]model.PersonRef, error)
}

// AvailabilityService сводка открытых слотов по репетиторам и датам.
// Только чтение, без транзакций и переходов состояния.
type AvailabilityService struct {
	slots  SlotRangeLister
	tutors TutorLister
	logger *zap.Logger
}

func NewAvailabilityService(slots SlotRangeLister, tutors TutorLister, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		slots:  slots,
		tutors: tutors,
		logger: logger,
	}
}

// Overview собирает доступность всех репетиторов по дням диапазона
// [from, to). Забронированные слоты входят в total_slots, но не в
// список открытых. Репетиторы без слотов в диапазоне присутствуют
// в ответе с пустыми датами; пустой диапазон - валидный результат.
func (s *AvailabilityService) Overview(ctx context.Context, from, to time.Time) ([]*model.TutorAvailability, error) {
	slots, err := s.slots.ListInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Failed to list slots in range", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	byTutor := make(map[int64]*model.TutorAvailability)

	for _, slot := range slots {
		entry, ok := byTutor[slot.TutorID]
		if !ok {
			entry = &model.TutorAvailability{
				TutorID:   slot.TutorID,
				TutorName: slot.TutorName,
				Dates:     map[string]*model.DayAvailability{},
			}
			byTutor[slot.TutorID] = entry
		}

		date := slot.StartTime.UTC().Format("2006-01-02")
		day, ok := entry.Dates[date]
		if !ok {
			day = &model.DayAvailability{Date: date, Slots: []model.OpenSlot{}}
			entry.Dates[date] = day
		}

		day.TotalSlots++
		if !slot.IsBooked {
			day.AvailableSlots++
			day.HasAvailability = true
			day.Slots = append(day.Slots, model.OpenSlot{
				ID:        slot.ID,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}
	}

	// Репетиторы без слотов в диапазоне тоже попадают в сводку
	refs, err := s.tutors.ListRefs(ctx)
	if err != nil {
		s.logger.Error("Failed to list tutors", zap.Error(err))
		return nil, apperr.Internal(err)
	}

	for _, ref := range refs {
		if _, ok := byTutor[ref.ID]; !ok {
			byTutor[ref.ID] = &model.TutorAvailability{
				TutorID:   ref.ID,
				TutorName: ref.Name,
				Dates:     map[string]*model.DayAvailability{},
			}
		}
	}

	result := make([]*model.TutorAvailability, 0, len(byTutor))
	for _, entry := range byTutor {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TutorName != result[j].TutorName {
			return result[i].TutorName < result[j].TutorName
		}
		return result[i].TutorID < result[j].TutorID
	})

	return result, nil
}
