package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository/base"
)

// BookingTx операции, доступные внутри транзакции бронирования.
// Сервис получает реализацию через WithinTx и не видит pgx.
type BookingTx interface {
	StudentExists(ctx context.Context, studentID int64) (bool, error)
	SlotByID(ctx context.Context, slotID int64) (*model.AvailabilitySlot, error)
	InsertBooking(ctx context.Context, slotID, studentID int64) (*model.Booking, error)
	MarkSlotBooked(ctx context.Context, slotID int64) error
}

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// WithinTx выполняет fn в одной транзакции.
// Rollback гарантирован на любом пути кроме успешного Commit;
// соединение принадлежит ровно одному вызову и возвращается в пул
// при выходе. Unique violation на коммите переводится в ErrSlotTaken,
// как и при вставке: клиент видит один и тот же конфликт независимо
// от того, какой путь гонки сработал.
func (r *BookingRepository) WithinTx(ctx context.Context, fn func(tx BookingTx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(&bookingTx{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if base.IsUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// bookingTx реализация BookingTx поверх открытой транзакции
type bookingTx struct {
	q pgx.Tx
}

func (t *bookingTx) StudentExists(ctx context.Context, studentID int64) (bool, error) {
	query := `SELECT id FROM students WHERE id = $1`

	var found int64
	err := t.q.QueryRow(ctx, query, studentID).Scan(&found)
	if err != nil {
		if base.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}

	return true, nil
}

func (t *bookingTx) SlotByID(ctx context.Context, slotID int64) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, tutor_id, start_time, end_time, is_booked, created_at
		FROM availability_slots
		WHERE id = $1
	`

	var slot model.AvailabilitySlot
	err := t.q.QueryRow(ctx, query, slotID).Scan(
		&slot.ID,
		&slot.TutorID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
		&slot.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot by id: %w", err)
	}

	return &slot, nil
}

func (t *bookingTx) InsertBooking(ctx context.Context, slotID, studentID int64) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (slot_id, student_id)
		VALUES ($1, $2)
		RETURNING id, slot_id, student_id, booked_at
	`

	var booking model.Booking
	err := t.q.QueryRow(ctx, query, slotID, studentID).Scan(
		&booking.ID,
		&booking.SlotID,
		&booking.StudentID,
		&booking.BookedAt,
	)

	if err != nil {
		// Две транзакции прошли проверку is_booked одновременно:
		// вторая вставка упирается в уникальность slot_id
		if base.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return &booking, nil
}

func (t *bookingTx) MarkSlotBooked(ctx context.Context, slotID int64) error {
	query := `UPDATE availability_slots SET is_booked = true WHERE id = $1`

	if _, err := t.q.Exec(ctx, query, slotID); err != nil {
		return fmt.Errorf("mark slot booked: %w", err)
	}

	return nil
}

// ListByStudent получает бронирования студента с данными репетитора,
// свежие занятия первыми
func (r *BookingRepository) ListByStudent(ctx context.Context, studentID int64) ([]*model.StudentBooking, error) {
	query := `
		SELECT b.id, t.id, t.name, s.start_time, s.end_time, b.booked_at
		FROM bookings b
		JOIN availability_slots s ON b.slot_id = s.id
		JOIN tutors t ON s.tutor_id = t.id
		WHERE b.student_id = $1
		ORDER BY s.start_time DESC
	`

	rows, err := r.pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by student: %w", err)
	}
	defer rows.Close()

	var bookings []*model.StudentBooking
	for rows.Next() {
		var booking model.StudentBooking
		err := rows.Scan(
			&booking.ID,
			&booking.Tutor.ID,
			&booking.Tutor.Name,
			&booking.StartTime,
			&booking.EndTime,
			&booking.BookedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// ListRecent получает последние бронирования для админской сводки
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]*model.RecentBooking, error) {
	query := `
		SELECT b.id, st.id, st.name, t.id, t.name, s.start_time, s.end_time, b.booked_at
		FROM bookings b
		JOIN availability_slots s ON b.slot_id = s.id
		JOIN tutors t ON s.tutor_id = t.id
		JOIN students st ON b.student_id = st.id
		ORDER BY b.booked_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.RecentBooking
	for rows.Next() {
		var booking model.RecentBooking
		err := rows.Scan(
			&booking.ID,
			&booking.Student.ID,
			&booking.Student.Name,
			&booking.Tutor.ID,
			&booking.Tutor.Name,
			&booking.StartTime,
			&booking.EndTime,
			&booking.BookedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan recent booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
