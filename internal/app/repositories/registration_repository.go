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

// registrationColumns is the column list scanned into a models.Registration
var registrationColumns = []string{
	"id", "camp_id", "camp_name", "camp_fees", "location",
	"healthcare_professional", "organizer_email",
	"participant_name", "participant_email", "age", "phone", "gender",
	"emergency_contact", "payment_status", "confirmation_status", "created_at",
}

// RegistrationRepository handles persistence for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a registration row and fills in its generated identifier.
// Runs on q so it shares a transaction with the camp counter increment.
func (r *RegistrationRepository) Create(ctx context.Context, q db.Querier, reg *models.Registration) error {
	if q == nil {
		q = r.db
	}

	reg.ID = uuid.NewString()
	reg.CreatedAt = time.Now().UTC()

	query := squirrel.Insert("registrations").
		Columns(registrationColumns...).
		Values(
			reg.ID, reg.CampID, reg.CampName, reg.CampFees, reg.Location,
			reg.HealthcareProfessional, reg.OrganizerEmail,
			reg.ParticipantName, reg.ParticipantEmail, reg.Age, reg.Phone, reg.Gender,
			reg.EmergencyContact, reg.PaymentStatus, reg.ConfirmationStatus, reg.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetByID retrieves a registration by its identifier
func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	query := squirrel.Select(registrationColumns...).
		From("registrations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// Delete removes a registration. Runs on q so it shares a transaction with
// the camp counter decrement.
func (r *RegistrationRepository) Delete(ctx context.Context, q db.Querier, id string) error {
	if q == nil {
		q = r.db
	}

	query := squirrel.Delete("registrations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// GetByParticipant retrieves all registrations made with a participant email
func (r *RegistrationRepository) GetByParticipant(ctx context.Context, email string) ([]*models.Registration, error) {
	return r.getByColumn(ctx, "participant_email", email)
}

// GetByOrganizer retrieves all registrations for camps run by an organizer
func (r *RegistrationRepository) GetByOrganizer(ctx context.Context, email string) ([]*models.Registration, error) {
	return r.getByColumn(ctx, "organizer_email", email)
}

func (r *RegistrationRepository) getByColumn(ctx context.Context, column, value string) ([]*models.Registration, error) {
	query := squirrel.Select(registrationColumns...).
		From("registrations").
		Where(column+" = ?", value).
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

	var regs []*models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}

	return regs, nil
}

// scanRegistration scans a single registration row
func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID,
		&reg.CampID,
		&reg.CampName,
		&reg.CampFees,
		&reg.Location,
		&reg.HealthcareProfessional,
		&reg.OrganizerEmail,
		&reg.ParticipantName,
		&reg.ParticipantEmail,
		&reg.Age,
		&reg.Phone,
		&reg.Gender,
		&reg.EmergencyContact,
		&reg.PaymentStatus,
		&reg.ConfirmationStatus,
		&reg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}
