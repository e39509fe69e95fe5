package models

// Employee represents an employee entity. The zero ID marks an employee
// that has not been persisted yet; the store assigns one on first save.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
