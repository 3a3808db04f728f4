package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"fatherhood-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.SignupRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		SignupRepository: NewSignupRepository(db),
	}
}
