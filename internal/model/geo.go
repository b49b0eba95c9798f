package model

type Country struct {
	ID     int64   `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	States []State `json:"states"`
}

type State struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CountryID int64  `db:"country_id" json:"-"`
}
