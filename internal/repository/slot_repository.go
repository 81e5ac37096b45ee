package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository/base"
)

type SlotRepository struct {
	db base.Querier
}

func NewSlotRepository(db base.Querier) *SlotRepository {
	return &SlotRepository{db: db}
}

// Create создаёт новый слот доступности.
// Ограничения интервалов (end > start, отсутствие пересечений у
// репетитора) проверяет сама база; здесь коды ошибок переводятся
// в sentinel-ошибки.
func (r *SlotRepository) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (tutor_id, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, is_booked, created_at
	`

	err := r.db.QueryRow(ctx, query, slot.TutorID, slot.StartTime, slot.EndTime).
		Scan(&slot.ID, &slot.IsBooked, &slot.CreatedAt)

	if err != nil {
		if base.IsCheckViolation(err) {
			return ErrInvalidTimeRange
		}
		if base.IsExclusionViolation(err) {
			return ErrSlotOverlap
		}
		return fmt.Errorf("create slot: %w", err)
	}

	return nil
}

// ListUpcomingByTutor получает будущие слоты репетитора по возрастанию времени
func (r *SlotRepository) ListUpcomingByTutor(ctx context.Context, tutorID int64) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, tutor_id, start_time, end_time, is_booked, created_at
		FROM availability_slots
		WHERE tutor_id = $1 AND start_time > now()
		ORDER BY start_time ASC
	`

	rows, err := r.db.Query(ctx, query, tutorID)
	if err != nil {
		return nil, fmt.Errorf("list slots by tutor: %w", err)
	}
	defer rows.Close()

	var slots []*model.AvailabilitySlot
	for rows.Next() {
		var slot model.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.TutorID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsBooked,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

// ListInRange получает будущие слоты всех репетиторов в диапазоне дат
// для сводки доступности
func (r *SlotRepository) ListInRange(ctx context.Context, from, to time.Time) ([]*model.SlotWithTutor, error) {
	query := `
		SELECT s.id, s.tutor_id, t.name, s.start_time, s.end_time, s.is_booked
		FROM availability_slots s
		JOIN tutors t ON t.id = s.tutor_id
		WHERE s.start_time >= $1
		  AND s.start_time < $2
		  AND s.start_time > now()
		ORDER BY t.name, s.start_time
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots in range: %w", err)
	}
	defer rows.Close()

	var slots []*model.SlotWithTutor
	for rows.Next() {
		var slot model.SlotWithTutor
		err := rows.Scan(
			&slot.ID,
			&slot.TutorID,
			&slot.TutorName,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsBooked,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot with tutor: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}
