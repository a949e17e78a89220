package models

// Account is a locally known user, keyed to the Google subject that first
// signed in. One Google subject maps to exactly one account.
type Account struct {
	BaseModel

	GoogleID string `json:"google_id" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}
