package model

import "time"

// AvailabilitySlot окно доступности репетитора.
// Переходит из is_booked=false в is_booked=true ровно один раз,
// только при успешном бронировании. Обратного перехода нет.
type AvailabilitySlot struct {
	ID        int64     `json:"id"`
	TutorID   int64     `json:"tutor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
	CreatedAt time.Time `json:"created_at"`
}

// OpenSlot свободный слот в сводке доступности
type OpenSlot struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SlotWithTutor строка join-запроса слотов с репетитором
type SlotWithTutor struct {
	ID        int64
	TutorID   int64
	TutorName string
	StartTime time.Time
	EndTime   time.Time
	IsBooked  bool
}

// DayAvailability сводка доступности репетитора за один день
type DayAvailability struct {
	Date            string     `json:"date"`
	TotalSlots      int        `json:"total_slots"`
	AvailableSlots  int        `json:"available_slots"`
	HasAvailability bool       `json:"has_availability"`
	Slots           []OpenSlot `json:"slots"`
}

// TutorAvailability доступность репетитора по дням в диапазоне дат
type TutorAvailability struct {
	TutorID   int64                       `json:"tutor_id"`
	TutorName string                      `json:"tutor_name"`
	Dates     map[string]*DayAvailability `json:"dates"`
}
