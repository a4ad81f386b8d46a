package model

import "time"

const (
	RoleAdmin     = "admin"
	RoleAgency    = "agency"
	RoleEmployer  = "employer"
	RoleJobSeeker = "job_seeker"
)

type User struct {
	ID                 int64      `json:"id"`
	Email              string     `json:"email"`
	AuthID             *string    `json:"auth_id,omitempty"`
	FullName           string     `json:"full_name"`
	Phone              *string    `json:"phone"`
	Role               string     `json:"role"`
	PlanID             *int64     `json:"plan_id"`
	CustomerID         *string    `json:"customer_id,omitempty"`
	SubscriptionID     *string    `json:"subscription_id,omitempty"`
	SubscriptionStatus *string    `json:"subscription_status"`
	SubscriptionEndsAt *time.Time `json:"subscription_ends_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Contact is the addressee of a notification email.
type Contact struct {
	UserID   int64  `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// IncompleteProfile is a job seeker due a profile completion reminder.
type IncompleteProfile struct {
	Contact
	JobSeekerID int64 `json:"job_seeker_id"`
	Completion  int   `json:"profile_completion"`
}

type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	AuthID   *string `json:"auth_id" validate:"omitempty,min=1"`
	FullName string  `json:"full_name" validate:"required,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Role     string  `json:"role" validate:"required,oneof=admin agency employer job_seeker"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName string  `json:"full_name" validate:"required,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Role     string  `json:"role" validate:"required,oneof=agency employer job_seeker"`
}

func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateUserRequest struct {
	ID       int64   `param:"id" json:"-" validate:"required,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	AuthID   *string `json:"auth_id" validate:"omitempty,min=1"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=32"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin agency employer job_seeker"`
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

type ListUsersRequest struct {
	PaginationQuery
	Role string `query:"role" validate:"omitempty,oneof=admin agency employer job_seeker"`
	Q    string `query:"q" validate:"omitempty,max=200"`
}

func (r *ListUsersRequest) Validate() error {
	return validate.Struct(r)
}
