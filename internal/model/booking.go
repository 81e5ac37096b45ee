package model

import "time"

// Booking связывает студента со слотом. Запись неизменяема.
// slot_id уникален в пределах таблицы - это и есть финальная
// защита от двойного бронирования на уровне хранилища.
type Booking struct {
	ID        int64     `json:"id"`
	SlotID    int64     `json:"slot_id"`
	StudentID int64     `json:"student_id"`
	BookedAt  time.Time `json:"booked_at"`
}

// BookingResult результат успешного бронирования: сама запись
// плюс данные слота, чтобы клиенту не требовался повторный запрос
type BookingResult struct {
	ID        int64     `json:"id"`
	SlotID    int64     `json:"slot_id"`
	StudentID int64     `json:"student_id"`
	BookedAt  time.Time `json:"booked_at"`
	TutorID   int64     `json:"tutor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// StudentBooking бронирование в списке студента (с репетитором)
type StudentBooking struct {
	ID        int64     `json:"id"`
	Tutor     PersonRef `json:"tutor"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	BookedAt  time.Time `json:"booked_at"`
}

// RecentBooking бронирование в админской сводке последних записей
type RecentBooking struct {
	ID        int64     `json:"id"`
	Student   PersonRef `json:"student"`
	Tutor     PersonRef `json:"tutor"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	BookedAt  time.Time `json:"booked_at"`
}
