package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/db"
	"github.com/medicamp/backend/internal/pkg/apperrors"
)

// campColumns is the column list scanned into a models.Camp
var campColumns = []string{
	"id", "name", "location", "fees", "healthcare_professional", "date",
	"description", "image_url", "organizer_email", "participants",
	"created_at", "updated_at",
}

// SortableCampColumns maps API sort field names to camp table columns.
// Sorting is only ever applied through this whitelist.
var SortableCampColumns = map[string]string{
	"name":         "name",
	"fees":         "fees",
	"date":         "date",
	"participants": "participants",
	"createdAt":    "created_at",
}

// CampRepository handles persistence for camps, including the participants
// counter mutations used by the registration lifecycle.
type CampRepository struct {
	db *pgxpool.Pool
}

// NewCampRepository creates a new CampRepository
func NewCampRepository(db *pgxpool.Pool) *CampRepository {
	return &CampRepository{db: db}
}

// Create inserts a new camp and fills in its generated identifier
func (r *CampRepository) Create(ctx context.Context, camp *models.Camp) error {
	camp.ID = uuid.NewString()
	now := time.Now().UTC()
	camp.CreatedAt = now
	camp.UpdatedAt = now

	query := squirrel.Insert("camps").
		Columns(
			"id", "name", "location", "fees", "healthcare_professional", "date",
			"description", "image_url", "organizer_email", "participants",
			"created_at", "updated_at",
		).
		Values(
			camp.ID, camp.Name, camp.Location, camp.Fees, camp.HealthcareProfessional, camp.Date,
			camp.Description, camp.ImageURL, camp.OrganizerEmail, camp.Participants,
			camp.CreatedAt, camp.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a camp by its identifier
func (r *CampRepository) GetByID(ctx context.Context, id string) (*models.Camp, error) {
	query := squirrel.Select(campColumns...).
		From("camps").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	camp, err := scanCamp(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCampNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return camp, nil
}

// GetAll retrieves camps, optionally sorted descending by a whitelisted
// column and capped to limit rows (limit 0 means no cap)
func (r *CampRepository) GetAll(ctx context.Context, sortColumn string, limit int) ([]*models.Camp, error) {
	query := squirrel.Select(campColumns...).
		From("camps").
		PlaceholderFormat(squirrel.Dollar)

	if sortColumn != "" {
		query = query.OrderBy(sortColumn + " DESC")
	} else {
		query = query.OrderBy("created_at DESC")
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectCamps(rows)
}

// GetByOrganizer retrieves all camps published by an organizer
func (r *CampRepository) GetByOrganizer(ctx context.Context, email string) ([]*models.Camp, error) {
	query := squirrel.Select(campColumns...).
		From("camps").
		Where("organizer_email = ?", email).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	return collectCamps(rows)
}

// Update applies a partial column patch to a camp
func (r *CampRepository) Update(ctx context.Context, id string, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}
	patch["updated_at"] = time.Now().UTC()

	query := squirrel.Update("camps").
		SetMap(patch).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCampNotFound
	}

	return nil
}

// Delete removes a camp by identifier
func (r *CampRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("camps").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCampNotFound
	}

	return nil
}

// IncrementParticipants applies a +1 delta to a camp's participants counter.
// The delta is applied in a single UPDATE so concurrent registrations for the
// same camp never lose an update. Runs on q so it can join a transaction.
func (r *CampRepository) IncrementParticipants(ctx context.Context, q db.Querier, id string) error {
	return r.applyParticipantsDelta(ctx, q, id, "participants + 1")
}

// DecrementParticipants applies a -1 delta to a camp's participants counter,
// clamped at zero. With registration and counter updates sharing a
// transaction the clamp never engages through the API; it guards data that
// was edited out-of-band.
func (r *CampRepository) DecrementParticipants(ctx context.Context, q db.Querier, id string) error {
	return r.applyParticipantsDelta(ctx, q, id, "GREATEST(participants - 1, 0)")
}

func (r *CampRepository) applyParticipantsDelta(ctx context.Context, q db.Querier, id string, expr string) error {
	if q == nil {
		q = r.db
	}

	sql := fmt.Sprintf("UPDATE camps SET participants = %s, updated_at = $2 WHERE id = $1", expr)
	result, err := q.Exec(ctx, sql, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCampNotFound
	}

	return nil
}

// scanCamp scans a single camp row
func scanCamp(row pgx.Row) (*models.Camp, error) {
	var camp models.Camp
	err := row.Scan(
		&camp.ID,
		&camp.Name,
		&camp.Location,
		&camp.Fees,
		&camp.HealthcareProfessional,
		&camp.Date,
		&camp.Description,
		&camp.ImageURL,
		&camp.OrganizerEmail,
		&camp.Participants,
		&camp.CreatedAt,
		&camp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// collectCamps scans all rows into camps
func collectCamps(rows pgx.Rows) ([]*models.Camp, error) {
	var camps []*models.Camp
	for rows.Next() {
		camp, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		camps = append(camps, camp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}
	return camps, nil
}
