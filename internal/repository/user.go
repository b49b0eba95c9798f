package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/xautrade/meeting-server-go/internal/database"
	"github.com/xautrade/meeting-server-go/internal/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByMobile(ctx context.Context, mobileNumber string) (*model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (*model.User, error)
}

type userRepo struct {
	db database.DBTX
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM users WHERE email = $1
	`, email)
	return HandleNotFound(&user, err)
}

func (r *userRepo) FindByMobile(ctx context.Context, mobileNumber string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM users WHERE mobile_number = $1
	`, mobileNumber)
	return HandleNotFound(&user, err)
}

func (r *userRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		INSERT INTO users (first_name, last_name, mobile_number, email, password, country_id, state_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *
	`, params.FirstName, params.LastName, params.MobileNumber, params.Email,
		params.PasswordHash, params.CountryID, params.StateID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
