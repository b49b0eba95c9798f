package database

import "context"

// The unique constraints on users are the real guard against concurrent
// duplicate registrations; the service-level lookups are only a best-effort
// check for friendlier error messages.
const schema = `
CREATE TABLE IF NOT EXISTS countries (
	id   SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	CONSTRAINT countries_name_key UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS states (
	id         SERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	country_id INTEGER NOT NULL REFERENCES countries (id)
);

CREATE INDEX IF NOT EXISTS states_country_id_idx ON states (country_id);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	mobile_number TEXT NOT NULL,
	email         TEXT NOT NULL,
	password      TEXT NOT NULL,
	country_id    INTEGER REFERENCES countries (id),
	state_id      INTEGER REFERENCES states (id),
	CONSTRAINT users_email_key UNIQUE (email),
	CONSTRAINT users_mobile_number_key UNIQUE (mobile_number)
);
`

// EnsureSchema creates the tables if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
