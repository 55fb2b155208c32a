package models

// ClientListQuery selects one page of the filtered client list. Page is 1-based;
// zero values fall back to the configured defaults.
type ClientListQuery struct {
	Query string
	Page  int
	Limit int
}
