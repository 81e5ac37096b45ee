package repository

import (
	"context"
	"fmt"

	"github.com/tutorhive/tutor_marketplace/internal/model"
	"github.com/tutorhive/tutor_marketplace/internal/repository/base"
)

type StudentRepository struct {
	db base.Querier
}

func NewStudentRepository(db base.Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create создаёт нового студента
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (name, email)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, student.Name, student.Email).
		Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		if base.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// List получает всех студентов, новые первыми
func (r *StudentRepository) List(ctx context.Context) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, created_at
		FROM students
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(&student.ID, &student.Name, &student.Email, &student.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}

	return students, nil
}

// Exists проверяет существование студента
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT id FROM students WHERE id = $1`

	var found int64
	err := r.db.QueryRow(ctx, query, id).Scan(&found)
	if err != nil {
		if base.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}

	return true, nil
}
