package repositories

import (
	"context"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/yokva-landing/internal/logger"
)

// MaxRecentSignups bounds the recent-signups window returned to clients.
const MaxRecentSignups = 80

// SignupReadRepository reads the waitlist table.
type SignupReadRepository struct {
	db *sqlx.DB
}

// NewSignupReadRepository creates a read repository over db.
func NewSignupReadRepository(db *sqlx.DB) *SignupReadRepository {
	return &SignupReadRepository{db: db}
}

// Count returns the number of distinct signups.
func (r *SignupReadRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM waitlist_emails`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("count signups",
		"query", query,
		"args", []any{},
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecent returns the newest MaxRecentSignups emails, oldest first.
func (r *SignupReadRepository) ListRecent(ctx context.Context) ([]string, error) {
	query := r.db.Rebind(`
		SELECT email
		FROM waitlist_emails
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`)
	args := []any{MaxRecentSignups}

	emails := make([]string, 0, MaxRecentSignups)
	err := r.db.SelectContext(ctx, &emails, query, args...)

	logger.Log.Infow("list recent signups",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(emails),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	slices.Reverse(emails)
	return emails, nil
}

// SignupWriteRepository inserts waitlist rows.
type SignupWriteRepository struct {
	db *sqlx.DB
}

func NewSignupWriteRepository(db *sqlx.DB) *SignupWriteRepository {
	return &SignupWriteRepository{db: db}
}

// InsertIfAbsent stores email unless it is already present and reports
// whether a new row was created. A duplicate is not an error.
func (r *SignupWriteRepository) InsertIfAbsent(ctx context.Context, email string) (bool, error) {
	query := r.db.Rebind(`
		INSERT INTO waitlist_emails (email)
		VALUES (?)
		ON CONFLICT (email) DO NOTHING
	`)
	args := []any{email}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("insert signup",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
