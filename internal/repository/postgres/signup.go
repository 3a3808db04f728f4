package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/lib/pq"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/repository"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const uniqueViolation = "23505"

const signupColumns = `id, full_name, email, phone_number, address, zip_code,
	number_of_children, children_ages, referral_source, interests, availability,
	additional_notes, consent_to_contact, consent_to_sms, status, signup_date, created_at`

type signupRepository struct {
	db *sql.DB
}

func NewSignupRepository(db *sql.DB) repository.SignupRepository {
	return &signupRepository{db: db}
}

func (r *signupRepository) Create(ctx context.Context, s *domain.Signup) error {
	query := `INSERT INTO fatherhood_signups
	          (full_name, email, phone_number, address, zip_code, number_of_children,
	           children_ages, referral_source, interests, availability, additional_notes,
	           consent_to_contact, consent_to_sms, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          RETURNING id, signup_date, created_at`

	childrenAges, err := marshalJSONB(s.ChildrenAges)
	if err != nil {
		return err
	}
	interests, err := marshalJSONB(s.Interests)
	if err != nil {
		return err
	}

	logger.DatabaseCall("INSERT", "fatherhood_signups", "email", s.Email)
	err = r.db.QueryRowContext(ctx, query,
		s.FullName, s.Email, s.PhoneNumber, s.Address, s.ZipCode, s.NumberOfChildren,
		childrenAges, s.ReferralSource, interests, s.Availability, s.AdditionalNotes,
		s.ConsentToContact, s.ConsentToSMS, s.Status,
	).Scan(&s.ID, &s.SignupDate, &s.CreatedAt)
	if err != nil {
		logger.DatabaseResult("INSERT", err, "email", s.Email)
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	logger.DatabaseResult("INSERT", nil, "id", s.ID)
	return nil
}

func (r *signupRepository) FindIDByEmail(ctx context.Context, email string) (string, error) {
	query := `SELECT id FROM fatherhood_signups WHERE email ILIKE $1`
	var id string
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrSignupNotFound
		}
		return "", err
	}
	return id, nil
}

func (r *signupRepository) GetByID(ctx context.Context, id string) (*domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM fatherhood_signups WHERE id = $1`
	s, err := scanSignup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSignupNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *signupRepository) List(ctx context.Context, status domain.SignupStatus, limit, offset int) ([]domain.Signup, int, error) {
	countQuery := `SELECT COUNT(*) FROM fatherhood_signups`
	listQuery := `SELECT ` + signupColumns + ` FROM fatherhood_signups`

	var countArgs, listArgs []any
	if status != "" {
		countQuery += ` WHERE status = $1`
		listQuery += ` WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		countArgs = []any{status}
		listArgs = []any{status, limit, offset}
	} else {
		listQuery += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		listArgs = []any{limit, offset}
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	logger.DatabaseCall("SELECT", "fatherhood_signups", "status", status, "limit", limit, "offset", offset)
	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		logger.DatabaseResult("SELECT", err)
		return nil, 0, err
	}
	defer rows.Close()

	var signups []domain.Signup
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, 0, err
		}
		signups = append(signups, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	logger.DatabaseResult("SELECT", nil, "count", len(signups), "total", total)
	return signups, total, nil
}

func (r *signupRepository) UpdateStatus(ctx context.Context, id string, status domain.SignupStatus) (*domain.Signup, error) {
	query := `UPDATE fatherhood_signups SET status = $1 WHERE id = $2 RETURNING ` + signupColumns
	logger.DatabaseCall("UPDATE", "fatherhood_signups", "id", id, "status", status)
	s, err := scanSignup(r.db.QueryRowContext(ctx, query, status, id))
	if err != nil {
		logger.DatabaseResult("UPDATE", err, "id", id)
		if err == sql.ErrNoRows {
			return nil, domain.ErrSignupNotFound
		}
		return nil, err
	}
	logger.DatabaseResult("UPDATE", nil, "id", id)
	return s, nil
}

func (r *signupRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fatherhood_signups`).Scan(&count)
	return count, err
}

func (r *signupRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM fatherhood_signups WHERE created_at >= $1`
	var count int
	err := r.db.QueryRowContext(ctx, query, since).Scan(&count)
	return count, err
}

func (r *signupRepository) ListStatuses(ctx context.Context) ([]domain.SignupStatus, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status FROM fatherhood_signups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []domain.SignupStatus
	for rows.Next() {
		var s domain.SignupStatus
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSignup(row rowScanner) (*domain.Signup, error) {
	s := &domain.Signup{}
	var (
		address, zipCode, referralSource, availability, additionalNotes sql.NullString
		numberOfChildren                                                sql.NullInt64
		childrenAges, interests                                         []byte
	)

	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.PhoneNumber, &address, &zipCode,
		&numberOfChildren, &childrenAges, &referralSource, &interests, &availability,
		&additionalNotes, &s.ConsentToContact, &s.ConsentToSMS, &s.Status,
		&s.SignupDate, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Address = nullableString(address)
	s.ZipCode = nullableString(zipCode)
	s.ReferralSource = nullableString(referralSource)
	s.Availability = nullableString(availability)
	s.AdditionalNotes = nullableString(additionalNotes)
	if numberOfChildren.Valid {
		n := int(numberOfChildren.Int64)
		s.NumberOfChildren = &n
	}
	if len(childrenAges) > 0 {
		if err := json.Unmarshal(childrenAges, &s.ChildrenAges); err != nil {
			return nil, err
		}
	}
	if len(interests) > 0 {
		if err := json.Unmarshal(interests, &s.Interests); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func marshalJSONB(v []any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
