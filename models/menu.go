package models

// MenuItem is a row from the Menu sheet. Price is whole baht.
type MenuItem struct {
	ID          string
	Name        string
	Category    string
	Price       int64
	ImageURL    string
	Description string
}
