package domain

// Category groups transactions and budgets. Names are unique per user.
type Category struct {
	CategoryID string `json:"categoryID"`
	UserID     string `json:"-"`
	Name       string `json:"name"`
	AuditFields
}
