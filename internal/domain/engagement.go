package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// SavedInitiative bookmarks an initiative for a user. A (user,
// initiative) pair can be saved at most once.
type SavedInitiative struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	InitiativeID int64     `json:"initiative_id"`
	SavedAt      time.Time `json:"saved_at"`
}

// InitiativeApplication is an expression of interest with an optional
// message to the owner. At most one per (user, initiative) pair.
type InitiativeApplication struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	InitiativeID int64     `json:"initiative_id"`
	Message      *string   `json:"message,omitempty"`
	Status       string    `json:"status"` // pending → accepted / rejected
	AppliedAt    time.Time `json:"applied_at"`

	// Joined data for list responses
	InitiativeTitle *string `json:"initiative_title,omitempty"`
	ApplicantName   *string `json:"applicant_name,omitempty"`
}

// InitiativeView is an append-only record; repeat views are allowed.
type InitiativeView struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	InitiativeID int64     `json:"initiative_id"`
	ViewedAt     time.Time `json:"viewed_at"`
}

// EngagementRepository couples each engagement-record mutation with
// the matching counter adjustment on the initiative row. Both happen
// inside one transaction so the counters always equal the record
// counts. Duplicate (user, initiative) inserts return ErrConflict.
type EngagementRepository interface {
	CreateSave(ctx context.Context, save *SavedInitiative) error
	DeleteSave(ctx context.Context, userID, initiativeID int64) error
	FetchSavedInitiatives(ctx context.Context, userID int64) ([]Initiative, error)

	CreateApplication(ctx context.Context, app *InitiativeApplication) error
	GetApplicationByID(ctx context.Context, id int64) (*InitiativeApplication, error)
	FetchApplicationsByUser(ctx context.Context, userID int64) ([]InitiativeApplication, error)
	FetchApplicationsByInitiative(ctx context.Context, initiativeID int64) ([]InitiativeApplication, error)
	UpdateApplicationStatus(ctx context.Context, id int64, status string) error

	CreateView(ctx context.Context, view *InitiativeView) error
}

type EngagementUsecase interface {
	Save(ctx context.Context, userID, initiativeID int64) error
	Unsave(ctx context.Context, userID, initiativeID int64) error
	ListSaved(ctx context.Context, userID int64) ([]Initiative, error)

	Apply(ctx context.Context, userID, initiativeID int64, message string) (*InitiativeApplication, error)
	MyApplications(ctx context.Context, userID int64) ([]InitiativeApplication, error)
	InitiativeApplications(ctx context.Context, actorID int64, actorRole string, initiativeID int64) ([]InitiativeApplication, error)
	SetApplicationStatus(ctx context.Context, actorID int64, actorRole string, applicationID int64, status string) error
}
