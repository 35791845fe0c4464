package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

// Initiative status values
const (
	StatusOpen   = "open"
	StatusActive = "active"
	StatusFull   = "full"
	StatusClosed = "closed"
)

// Initiative duration values
const (
	DurationShortTerm     = "short_term"
	DurationOngoing       = "ongoing"
	DurationFixedDuration = "fixed_duration"
)

// ValidStatus reports whether s is a known initiative status.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusActive, StatusFull, StatusClosed:
		return true
	}
	return false
}

// ValidDuration reports whether d is a known duration kind.
func ValidDuration(d string) bool {
	switch d {
	case DurationShortTerm, DurationOngoing, DurationFixedDuration:
		return true
	}
	return false
}

// Initiative is a postable volunteering/work opportunity.
//
// The engagement counters mirror the engagement tables: they are
// adjusted in the same transaction as the corresponding record
// insert/delete and never go below zero.
type Initiative struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title" validate:"required,min=3,max=200"`
	Description      string    `json:"description" validate:"required"`
	PracticeArea     string    `json:"practice_area"`
	SkillsNeeded     []string  `json:"skills_needed"`
	Industries       []string  `json:"industries"`
	Tags             []string  `json:"tags"`
	TimeCommitment   string    `json:"time_commitment"` // e.g. "5 hours/week"
	Duration         string    `json:"duration"`
	DurationDetails  string    `json:"duration_details"` // e.g. "3 months"
	RoleType         string    `json:"role_type"`        // e.g. "Researcher", "Developer"
	ContactPerson    string    `json:"contact_person"`
	ContactEmail     string    `json:"contact_email" validate:"omitempty,email"`
	Status           string    `json:"status"`
	OwnerID          int64     `json:"owner_id"`
	ViewCount        int       `json:"view_count"`
	SaveCount        int       `json:"save_count"`
	ApplicationCount int       `json:"application_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SearchCriteria narrows a collection of initiatives. Every field is
// optional; absent fields impose no constraint and present fields
// combine with logical AND. The skills and industries lists use
// match-any (OR) semantics within the list.
type SearchCriteria struct {
	Query          string
	Skills         []string
	PracticeArea   string
	Industries     []string
	TimeCommitment string
	Status         string
	Skip           int
	Limit          int
}

// InitiativeList is a page of search/listing results.
type InitiativeList struct {
	Total    int          `json:"total"`
	Items    []Initiative `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type InitiativeRepository interface {
	Create(ctx context.Context, ini *Initiative) error
	GetByID(ctx context.Context, id int64) (*Initiative, error)
	// FetchAll materializes every initiative; the in-memory filter
	// engine takes it from there.
	FetchAll(ctx context.Context) ([]Initiative, error)
	FetchByStatus(ctx context.Context, status string) ([]Initiative, error)
	FetchByOwner(ctx context.Context, ownerID int64) ([]Initiative, error)
	Update(ctx context.Context, ini *Initiative) error
	Delete(ctx context.Context, id int64) error
}

type InitiativeUsecase interface {
	Create(ctx context.Context, ownerID int64, ini *Initiative) error
	// GetDetails returns the initiative and, when viewerID != 0,
	// records a view for the viewer.
	GetDetails(ctx context.Context, id int64, viewerID int64) (*Initiative, error)
	List(ctx context.Context, criteria SearchCriteria) (*InitiativeList, error)
	Search(ctx context.Context, criteria SearchCriteria) (*InitiativeList, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Initiative, error)
	Update(ctx context.Context, actorID int64, actorRole string, ini *Initiative) (*Initiative, error)
	Delete(ctx context.Context, actorID int64, actorRole string, id int64) error
}
