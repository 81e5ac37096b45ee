package base

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL, которые слой репозиториев переводит
// в доменные sentinel-ошибки
const (
	pgUniqueViolation    = "23505"
	pgCheckViolation     = "23514"
	pgExclusionViolation = "23P01"
)

// Querier общий интерфейс пула и транзакции.
// Репозитории работают через него, поэтому одни и те же запросы
// выполняются и вне, и внутри транзакции бронирования.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IsNotFound проверяет является ли ошибка "строка не найдена"
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation нарушение уникального ограничения
func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsCheckViolation нарушение check-ограничения
func IsCheckViolation(err error) bool {
	return pgCode(err) == pgCheckViolation
}

// IsExclusionViolation нарушение exclusion-ограничения
func IsExclusionViolation(err error) bool {
	return pgCode(err) == pgExclusionViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
