package models

// User is a verified ChangaYa account. Rows only exist after the emailed
// verification link is redeemed; there is no partially-registered state in
// the table (it lives inside the signed verification token instead).
type User struct {
	BaseModel
	Username     string   `gorm:"not null" json:"username"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	NationalID   string   `gorm:"not null" json:"national_id"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	PasswordHash string   `gorm:"not null" json:"-"`
}
