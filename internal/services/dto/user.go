package dto

type UpdateUserRequest struct {
	Username   string `json:"username" validate:"omitempty,min=3,max=50"`
	FirstName  string `json:"first_name" validate:"omitempty,max=100"`
	LastName   string `json:"last_name" validate:"omitempty,max=100"`
	NationalID string `json:"national_id" validate:"omitempty,max=20"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
