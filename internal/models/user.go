package models

// UserRecord is a registered account. Email is the unique key (exact,
// case-sensitive match). Password is stored verbatim.
type UserRecord struct {
	FullName  string    `json:"fullnames"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt Timestamp `json:"createdAt"`
}

// FindByEmail returns the index of the record with exactly this email, or -1.
func FindByEmail(users []UserRecord, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
