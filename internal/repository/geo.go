package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/xautrade/meeting-server-go/internal/database"
	"github.com/xautrade/meeting-server-go/internal/model"
)

type GeoRepository interface {
	CountriesWithStates(ctx context.Context) ([]model.Country, error)
	FindCountryByID(ctx context.Context, id int64) (*model.Country, error)
	FindStateByID(ctx context.Context, id int64) (*model.State, error)
}

type geoRepo struct {
	db database.DBTX
}

func NewGeoRepository(db *sqlx.DB) GeoRepository {
	return &geoRepo{db: db}
}

func (r *geoRepo) CountriesWithStates(ctx context.Context) ([]model.Country, error) {
	var countries []model.Country
	err := r.db.SelectContext(ctx, &countries, `
		SELECT id, name FROM countries ORDER BY id
	`)
	if err != nil {
		return nil, err
	}

	var states []model.State
	err = r.db.SelectContext(ctx, &states, `
		SELECT id, name, country_id FROM states ORDER BY country_id, id
	`)
	if err != nil {
		return nil, err
	}

	byCountry := make(map[int64][]model.State, len(countries))
	for _, s := range states {
		byCountry[s.CountryID] = append(byCountry[s.CountryID], s)
	}

	for i := range countries {
		countries[i].States = byCountry[countries[i].ID]
		if countries[i].States == nil {
			countries[i].States = []model.State{}
		}
	}

	return countries, nil
}

func (r *geoRepo) FindCountryByID(ctx context.Context, id int64) (*model.Country, error) {
	var country model.Country
	err := r.db.GetContext(ctx, &country, `
		SELECT id, name FROM countries WHERE id = $1
	`, id)
	return HandleNotFound(&country, err)
}

func (r *geoRepo) FindStateByID(ctx context.Context, id int64) (*model.State, error) {
	var state model.State
	err := r.db.GetContext(ctx, &state, `
		SELECT id, name, country_id FROM states WHERE id = $1
	`, id)
	return HandleNotFound(&state, err)
}
