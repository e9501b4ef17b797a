package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

// IsUniqueViolation 判斷錯誤是否為唯一性約束衝突（重複 email、重複標題）
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsNotFound 判斷錯誤是否為查無資料
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
