package battlereport

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage.
// Reports never expire.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Report
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Report),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a report
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Report == nil {
		return nil, errors.InvalidArgument(errReportNil)
	}
	if input.Report.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	report := copyReport(input.Report)
	now := r.clock.Now()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}
	report.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[report.ID] = report

	return &SaveOutput{Report: copyReport(report)}, nil
}

// Get retrieves a report by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("battle report %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Report: copyReport(report)}, nil
}

// List returns the newest reports first
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	limit := DefaultListLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*Report, 0, len(r.store))
	for _, report := range r.store {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].UpdatedAt.Equal(reports[j].UpdatedAt) {
			return reports[i].UpdatedAt.After(reports[j].UpdatedAt)
		}
		return reports[i].ID > reports[j].ID
	})
	if len(reports) > limit {
		reports = reports[:limit]
	}

	out := &ListOutput{Reports: make([]*Report, len(reports))}
	for i, report := range reports {
		out.Reports[i] = copyReport(report)
	}
	return out, nil
}

// Delete removes a report
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument(errReportIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("battle report %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

func copyReport(in *Report) *Report {
	out := *in
	out.Players = append(out.Players[:0:0], in.Players...)
	out.Enemies = append(out.Enemies[:0:0], in.Enemies...)
	out.Log = append(out.Log[:0:0], in.Log...)
	return &out
}
