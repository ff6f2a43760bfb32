// Package services implements business logic, validation, and orchestration
// between HTTP controllers and the repository layer.
package services

import (
	"context"

	"github.com/medicamp/backend/internal/app/models"
	"github.com/medicamp/backend/internal/db"
)

// TxRunner runs a function inside a store transaction. Implemented by
// db.PostgresDB.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CampStore is the camp persistence surface the services consume
type CampStore interface {
	Create(ctx context.Context, camp *models.Camp) error
	GetByID(ctx context.Context, id string) (*models.Camp, error)
	GetAll(ctx context.Context, sortColumn string, limit int) ([]*models.Camp, error)
	GetByOrganizer(ctx context.Context, email string) ([]*models.Camp, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, q db.Querier, id string) error
	DecrementParticipants(ctx context.Context, q db.Querier, id string) error
}

// RegistrationStore is the registration persistence surface
type RegistrationStore interface {
	Create(ctx context.Context, q db.Querier, reg *models.Registration) error
	GetByID(ctx context.Context, id string) (*models.Registration, error)
	Delete(ctx context.Context, q db.Querier, id string) error
	GetByParticipant(ctx context.Context, email string) ([]*models.Registration, error)
	GetByOrganizer(ctx context.Context, email string) ([]*models.Registration, error)
}

// UserStore is the user persistence surface
type UserStore interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Upsert(ctx context.Context, user *models.User) error
}
