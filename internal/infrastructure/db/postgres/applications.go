package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yaparim/marketplace/internal/core/domain"
	"github.com/yaparim/marketplace/internal/core/ports"
)

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

const applicationColumns = `id, task_id, applicant_id, applicant_name, applicant_city, applicant_rating, proposal, offered_price, status, created_at`

// Create inserts an application. The (task_id, applicant_id) unique index
// rejects a second application from the same provider.
func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	const query = `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TaskID, a.ApplicantID, a.ApplicantName, a.ApplicantCity, a.ApplicantRating,
		a.Proposal, a.OfferedPrice, string(a.Status), a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, taskID, applicantID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM applications WHERE task_id = $1 AND applicant_id = $2);`
	var ok bool
	if err := r.pool.QueryRow(ctx, query, taskID, applicantID).Scan(&ok); err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return ok, nil
}

func (r *ApplicationRepository) ListByTask(ctx context.Context, taskID string) ([]*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE task_id = $1 ORDER BY created_at ASC;`
	return r.query(ctx, query, taskID)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC;`
	return r.query(ctx, query, applicantID)
}

func (r *ApplicationRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := []*domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	var status string
	err := row.Scan(&a.ID, &a.TaskID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantCity, &a.ApplicantRating,
		&a.Proposal, &a.OfferedPrice, &status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Status = domain.ApplicationStatus(status)
	a.CreatedAt = a.CreatedAt.UTC()
	return &a, nil
}
