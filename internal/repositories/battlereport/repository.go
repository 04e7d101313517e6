// Package battlereport stores the outcome of finished and running battles.
package battlereport

//go:generate mockgen -destination=mock/mock_repository.go -package=battlereportmock github.com/KirkDiggler/rpg-battle/internal/repositories/battlereport Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/engine/battle"
	"github.com/KirkDiggler/rpg-battle/internal/engine/character"
	"github.com/KirkDiggler/rpg-battle/internal/engine/combatlog"
)

// DefaultListLimit is used when a List call does not set a limit.
const DefaultListLimit = 20

// Repository defines the storage interface for battle reports
type Repository interface {
	// Save creates or replaces a report
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a report by battle ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns the most recently saved reports, newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a report
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// Report is the persisted view of one battle
type Report struct {
	ID       string              `json:"id"`
	Result   battle.Result       `json:"result"`
	Rounds   int                 `json:"rounds"`
	Location battle.Location     `json:"location"`
	Players  []character.Summary `json:"players"`
	Enemies  []character.Summary `json:"enemies"`
	Log      []combatlog.Entry   `json:"log,omitempty"`
	Rewards  *battle.Rewards     `json:"rewards,omitempty"`
	// Error holds the reason an aborted battle stopped.
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveInput defines the request for saving a report
type SaveInput struct {
	Report *Report
}

// SaveOutput defines the response for saving a report
type SaveOutput struct {
	Report *Report
}

// GetInput defines the request for retrieving a report
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving a report
type GetOutput struct {
	Report *Report
}

// ListInput defines the request for listing reports
type ListInput struct {
	Limit int
}

// ListOutput defines the response for listing reports
type ListOutput struct {
	Reports []*Report
}

// DeleteInput defines the request for deleting a report
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting a report
type DeleteOutput struct{}
