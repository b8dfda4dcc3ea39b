package repository

import (
	"context"

	apperrors "company-services-backend/internal/errors"

	"gorm.io/gorm"
)

// GormGateway implements Gateway on top of a gorm connection pool
type GormGateway struct {
	db *gorm.DB
}

// Ensure GormGateway implements Gateway
var _ Gateway = (*GormGateway)(nil)

// NewGateway creates a new gorm-backed gateway
func NewGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// WithConnection pins one pooled connection for fn. gorm returns the
// connection to the pool on every exit path, including panics in fn.
func (g *GormGateway) WithConnection(ctx context.Context, fn func(store Store) error) error {
	acquired := false
	err := g.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		acquired = true
		return fn(NewStore(tx))
	})
	if err != nil && !acquired {
		return apperrors.NewStorageError("acquire connection", err)
	}
	return err
}

type store struct {
	*DepartmentRepository
	*EmployeeRepository
	*TimecardRepository
}

// NewStore binds all entity repositories to db. Each call through the store
// starts from a fresh statement, so conditions never leak between queries.
func NewStore(db *gorm.DB) Store {
	db = db.Session(&gorm.Session{NewDB: true})
	return &store{
		DepartmentRepository: NewDepartmentRepository(db),
		EmployeeRepository:   NewEmployeeRepository(db),
		TimecardRepository:   NewTimecardRepository(db),
	}
}
