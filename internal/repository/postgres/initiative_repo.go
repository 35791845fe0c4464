package postgres

import (
	"context"
	"errors"

	"initiative-discovery-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type initiativeRepo struct {
	db *pgxpool.Pool
}

func NewInitiativeRepository(db *pgxpool.Pool) domain.InitiativeRepository {
	return &initiativeRepo{db: db}
}

const initiativeColumns = `
	id, title, description,
	COALESCE(practice_area, ''), skills_needed, industries, tags,
	COALESCE(time_commitment, ''), duration, COALESCE(duration_details, ''),
	COALESCE(role_type, ''), COALESCE(contact_person, ''), COALESCE(contact_email, ''),
	status, owner_id, view_count, save_count, application_count,
	created_at, updated_at`

func scanInitiative(row pgx.Row) (*domain.Initiative, error) {
	var ini domain.Initiative
	var skillsNeeded, industries, tags []string
	err := row.Scan(
		&ini.ID, &ini.Title, &ini.Description,
		&ini.PracticeArea, pq.Array(&skillsNeeded), pq.Array(&industries), pq.Array(&tags),
		&ini.TimeCommitment, &ini.Duration, &ini.DurationDetails,
		&ini.RoleType, &ini.ContactPerson, &ini.ContactEmail,
		&ini.Status, &ini.OwnerID, &ini.ViewCount, &ini.SaveCount, &ini.ApplicationCount,
		&ini.CreatedAt, &ini.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ini.SkillsNeeded = skillsNeeded
	ini.Industries = industries
	ini.Tags = tags
	return &ini, nil
}

func (r *initiativeRepo) Create(ctx context.Context, ini *domain.Initiative) error {
	query := `
		INSERT INTO initiatives (title, description, practice_area, skills_needed, industries, tags,
		                         time_commitment, duration, duration_details, role_type,
		                         contact_person, contact_email, status, owner_id,
		                         created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		ini.Title, ini.Description, ini.PracticeArea,
		pq.Array(ini.SkillsNeeded), pq.Array(ini.Industries), pq.Array(ini.Tags),
		ini.TimeCommitment, ini.Duration, ini.DurationDetails, ini.RoleType,
		ini.ContactPerson, ini.ContactEmail, ini.Status, ini.OwnerID,
		ini.CreatedAt, ini.UpdatedAt,
	).Scan(&ini.ID)
}

func (r *initiativeRepo) GetByID(ctx context.Context, id int64) (*domain.Initiative, error) {
	ini, err := scanInitiative(r.db.QueryRow(ctx,
		`SELECT `+initiativeColumns+` FROM initiatives WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ini, nil
}

func (r *initiativeRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.Initiative, error) {
	rows, err := r.db.Query(ctx, query, args...)
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

// FetchAll materializes the whole table ordered by id; the filter
// engine runs over the snapshot in memory.
func (r *initiativeRepo) FetchAll(ctx context.Context) ([]domain.Initiative, error) {
	return r.fetch(ctx, `SELECT `+initiativeColumns+` FROM initiatives ORDER BY id`)
}

func (r *initiativeRepo) FetchByStatus(ctx context.Context, status string) ([]domain.Initiative, error) {
	return r.fetch(ctx,
		`SELECT `+initiativeColumns+` FROM initiatives WHERE status = $1 ORDER BY id`, status)
}

func (r *initiativeRepo) FetchByOwner(ctx context.Context, ownerID int64) ([]domain.Initiative, error) {
	return r.fetch(ctx,
		`SELECT `+initiativeColumns+` FROM initiatives WHERE owner_id = $1 ORDER BY id`, ownerID)
}

func (r *initiativeRepo) Update(ctx context.Context, ini *domain.Initiative) error {
	query := `
		UPDATE initiatives SET
			title = $2,
			description = $3,
			practice_area = $4,
			skills_needed = $5,
			industries = $6,
			tags = $7,
			time_commitment = $8,
			duration = $9,
			duration_details = $10,
			role_type = $11,
			contact_person = $12,
			contact_email = $13,
			status = $14,
			updated_at = $15
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		ini.ID, ini.Title, ini.Description, ini.PracticeArea,
		pq.Array(ini.SkillsNeeded), pq.Array(ini.Industries), pq.Array(ini.Tags),
		ini.TimeCommitment, ini.Duration, ini.DurationDetails, ini.RoleType,
		ini.ContactPerson, ini.ContactEmail, ini.Status, ini.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the initiative; its engagement records go with it via
// ON DELETE CASCADE.
func (r *initiativeRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM initiatives WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
