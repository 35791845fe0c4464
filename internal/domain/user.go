package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleAnalyst = "analyst"
	RoleLeader  = "leader"
	RoleAdmin   = "admin"
)

// User is both the account and the matching profile. The tag-set
// fields (skills, interests, industries, certifications) are stored
// as native text[] columns and always handled as plain slices here.
type User struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	FullName        string     `json:"full_name" validate:"required,min=2,max=100"`
	Role            string     `json:"role"`
	Bio             string     `json:"bio" validate:"max=1000"`
	Practice        string     `json:"practice"` // e.g. Strategy, Technology, Risk
	Skills          []string   `json:"skills"`
	Interests       []string   `json:"interests"`
	Industries      []string   `json:"industries"`
	Certifications  []string   `json:"certifications"`
	ExperienceYears *int       `json:"experience_years,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password, fullName, role string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

type UserUsecase interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, user *User) (*User, error)
	List(ctx context.Context, page, pageSize int) ([]User, int64, error)
	// Delete removes an account and, via cascade, its initiatives and
	// engagement records. Allowed for the account itself or an admin.
	Delete(ctx context.Context, actorID int64, actorRole string, id int64) error
}
