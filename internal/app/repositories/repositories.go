package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	CampRepository         *CampRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CampRepository:         NewCampRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
	}
}
