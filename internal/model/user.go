package model

type User struct {
	ID           int64  `db:"id" json:"id"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	MobileNumber string `db:"mobile_number" json:"mobile_number"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
	CountryID    int64  `db:"country_id" json:"country_id"`
	StateID      int64  `db:"state_id" json:"state_id"`
}

type CreateUserParams struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Email        string
	PasswordHash string
	CountryID    int64
	StateID      int64
}

// UserProfile is the denormalized shape returned on login. Country and state
// names are pointers because either reference may be absent.
type UserProfile struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobile_number"`
	CountryID    int64   `json:"country_id"`
	CountryName  *string `json:"country_name"`
	StateID      int64   `json:"state_id"`
	StateName    *string `json:"state_name"`
}
