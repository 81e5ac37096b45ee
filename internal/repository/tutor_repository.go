package repository

import (
	"context"
	"fmt"

	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository/base"
)

type TutorRepository struct {
	db base.Querier
}

func NewTutorRepository(db base.Querier) *TutorRepository {
	return &TutorRepository{db: db}
}

// Create создаёт нового репетитора
func (r *TutorRepository) Create(ctx context.Context, tutor *model.Tutor) error {
	query := `
		INSERT INTO tutors (name, email, subjects, about, qualifications, hourly_rate, rating, experience_years)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		tutor.Name,
		tutor.Email,
		tutor.Subjects,
		tutor.About,
		tutor.Qualifications,
		tutor.HourlyRate,
		tutor.Rating,
		tutor.ExperienceYears,
	).Scan(&tutor.ID, &tutor.CreatedAt)

	if err != nil {
		if base.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create tutor: %w", err)
	}

	return nil
}

// List получает всех репетиторов, новые первыми
func (r *TutorRepository) List(ctx context.Context) ([]*model.Tutor, error) {
	query := `
		SELECT id, name, email, subjects, about, qualifications, hourly_rate, rating, experience_years, created_at
		FROM tutors
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		var tutor model.Tutor
		err := rows.Scan(
			&tutor.ID,
			&tutor.Name,
			&tutor.Email,
			&tutor.Subjects,
			&tutor.About,
			&tutor.Qualifications,
			&tutor.HourlyRate,
			&tutor.Rating,
			&tutor.ExperienceYears,
			&tutor.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, &tutor)
	}

	return tutors, nil
}

// Exists проверяет существование репетитора
func (r *TutorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT id FROM tutors WHERE id = $1`

	var found int64
	err := r.db.QueryRow(ctx, query, id).Scan(&found)
	if err != nil {
		if base.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check tutor: %w", err)
	}

	return true, nil
}

// ListRefs получает id и имена всех репетиторов по алфавиту
func (r *TutorRepository) ListRefs(ctx context.Context) ([]model.PersonRef, error) {
	query := `SELECT id, name FROM tutors ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tutor refs: %w", err)
	}
	defer rows.Close()

	var refs []model.PersonRef
	for rows.Next() {
		var ref model.PersonRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan tutor ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, nil
}
