package repository

import (
	"context"
	"errors"
	"time"

	"staffhive/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type Company struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Industry    string
	Website     string
	Address     string
	IsVerified  bool
	CreatedAt   time.Time
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Company, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (Company, error)
	Create(ctx context.Context, c Company) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, owner_id, name, description, industry, website, address, is_verified, created_at`

func (r *PostgresCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE owner_id = $1`, ownerID)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, owner_id, name, description, industry, website, address, is_verified)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		c.ID, c.OwnerID, c.Name, c.Description, c.Industry, c.Website, c.Address, c.IsVerified,
	)
	return err
}

func scanCompany(row database.Row) (Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Description, &c.Industry, &c.Website, &c.Address, &c.IsVerified, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}
