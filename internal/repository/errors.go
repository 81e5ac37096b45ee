package repository

import "errors"

// Sentinel-ошибки, в которые репозитории переводят коды ограничений
// PostgreSQL. Сервисы сопоставляют их с доменной таксономией,
// коды и сообщения драйвера наружу не выходят.
var (
	// ErrDuplicateEmail email уже занят (unique violation)
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrSlotTaken на слот уже есть бронирование (unique violation
	// по bookings.slot_id при гонке двух транзакций)
	ErrSlotTaken = errors.New("slot already has a booking")

	// ErrInvalidTimeRange end_time не позже start_time (check violation)
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrSlotOverlap слот пересекается с существующим у того же
	// репетитора (exclusion violation)
	ErrSlotOverlap = errors.New("slot overlaps with existing availability")
)
