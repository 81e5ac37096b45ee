package model

import "time"

type Tutor struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Subjects        []string  `json:"subjects"`
	About           string    `json:"about"`
	Qualifications  []string  `json:"qualifications"`
	HourlyRate      float64   `json:"hourly_rate"`
	Rating          float64   `json:"rating"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
}

// PersonRef краткая ссылка на участника (для joined-ответов)
type PersonRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
