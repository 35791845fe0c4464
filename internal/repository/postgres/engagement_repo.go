package postgres

import (
	"context"
	"errors"
	"time"

	"initiative-discovery-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// engagementRepo keeps the initiative counters honest: every record
// insert/delete runs in one transaction with the matching counter
// update, so save_count/application_count/view_count always equal the
// number of corresponding rows.
type engagementRepo struct {
	db *pgxpool.Pool
}

func NewEngagementRepository(db *pgxpool.Pool) domain.EngagementRepository {
	return &engagementRepo{db: db}
}

func (r *engagementRepo) CreateSave(ctx context.Context, save *domain.SavedInitiative) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if save.SavedAt.IsZero() {
		save.SavedAt = time.Now()
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO saved_initiatives (user_id, initiative_id, saved_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		save.UserID, save.InitiativeID, save.SavedAt,
	).Scan(&save.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE initiatives SET save_count = save_count + 1 WHERE id = $1`,
		save.InitiativeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *engagementRepo) DeleteSave(ctx context.Context, userID, initiativeID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`DELETE FROM saved_initiatives WHERE user_id = $1 AND initiative_id = $2`,
		userID, initiativeID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	// Clamped at zero; the guard only matters if a counter ever
	// drifted, the transaction coupling otherwise keeps them exact.
	if _, err := tx.Exec(ctx,
		`UPDATE initiatives SET save_count = GREATEST(save_count - 1, 0) WHERE id = $1`,
		initiativeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *engagementRepo) FetchSavedInitiatives(ctx context.Context, userID int64) ([]domain.Initiative, error) {
	query := `
		SELECT ` + initiativeColumns + `
		FROM initiatives
		WHERE id IN (SELECT initiative_id FROM saved_initiatives WHERE user_id = $1)
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var initiatives []domain.Initiative
	for rows.Next() {
		ini, err := scanInitiative(rows)
		if err != nil {
			return nil, err
		}
		initiatives = append(initiatives, *ini)
	}
	return initiatives, rows.Err()
}

func (r *engagementRepo) CreateApplication(ctx context.Context, app *domain.InitiativeApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO initiative_applications (user_id, initiative_id, message, status, applied_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		app.UserID, app.InitiativeID, app.Message, app.Status, app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE initiatives SET application_count = application_count + 1 WHERE id = $1`,
		app.InitiativeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const applicationColumns = `
	a.id, a.user_id, a.initiative_id, a.message, a.status, a.applied_at,
	i.title AS initiative_title,
	u.full_name AS applicant_name`

func scanApplication(row pgx.Row) (*domain.InitiativeApplication, error) {
	var app domain.InitiativeApplication
	err := row.Scan(
		&app.ID, &app.UserID, &app.InitiativeID, &app.Message, &app.Status, &app.AppliedAt,
		&app.InitiativeTitle, &app.ApplicantName,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *engagementRepo) GetApplicationByID(ctx context.Context, id int64) (*domain.InitiativeApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM initiative_applications a
		LEFT JOIN initiatives i ON i.id = a.initiative_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

func (r *engagementRepo) fetchApplications(ctx context.Context, where string, arg any) ([]domain.InitiativeApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM initiative_applications a
		LEFT JOIN initiatives i ON i.id = a.initiative_id
		LEFT JOIN users u ON u.id = a.user_id
		WHERE ` + where + `
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.InitiativeApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *engagementRepo) FetchApplicationsByUser(ctx context.Context, userID int64) ([]domain.InitiativeApplication, error) {
	return r.fetchApplications(ctx, "a.user_id = $1", userID)
}

func (r *engagementRepo) FetchApplicationsByInitiative(ctx context.Context, initiativeID int64) ([]domain.InitiativeApplication, error) {
	return r.fetchApplications(ctx, "a.initiative_id = $1", initiativeID)
}

func (r *engagementRepo) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE initiative_applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *engagementRepo) CreateView(ctx context.Context, view *domain.InitiativeView) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now()
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO initiative_views (user_id, initiative_id, viewed_at)
		 VALUES ($1, $2, $3) RETURNING id`,
		view.UserID, view.InitiativeID, view.ViewedAt,
	).Scan(&view.ID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE initiatives SET view_count = view_count + 1 WHERE id = $1`,
		view.InitiativeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
