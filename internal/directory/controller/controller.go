// Package controller implements the core business logic (service layer)
// for the subcontractor directory: final-step aggregate creation,
// search/listing, site lookup, and the trade catalog.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	e "github.com/tradesite/directory/internal/directory/errors"
	"github.com/tradesite/directory/internal/directory/events"
	"github.com/tradesite/directory/internal/directory/models"
	"github.com/tradesite/directory/internal/directory/slug"
	"github.com/tradesite/directory/internal/directory/validation"
)

const (
	maxLimit = 50

	// createAttempts bounds the duplicate-slug retry: the probe loop is
	// a pre-check, the unique index is the guarantee, and one re-resolve
	// covers the check-then-insert race.
	createAttempts = 2
)

type EventProducer interface {
	Produce(eventType events.EventType, sub *models.Subcontractor)
}

// Repository defines the storage interface for the directory.
type Repository interface {
	CreateSubcontractor(ctx context.Context, sub *models.Subcontractor, mainContactIdx int) error
	GetSubcontractorBySlug(ctx context.Context, slug string) (*models.Subcontractor, error)
	GetSubcontractorByID(ctx context.Context, id uint) (*models.Subcontractor, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SearchSubcontractors(ctx context.Context, filter *models.SearchFilter) ([]models.Subcontractor, int64, error)
	ListTrades(ctx context.Context) ([]models.Trade, error)
	MissingTradeIDs(ctx context.Context, ids []uint) ([]uint, error)
	Close() error
}

// DirectoryService provides the business operations behind the wizard,
// search, and site endpoints.
type DirectoryService struct {
	repo     Repository
	slugs    *slug.Resolver
	producer EventProducer
	logger   *zap.Logger
}

// NewDirectoryService constructs a DirectoryService with a repository,
// an event producer, and a logger.
func NewDirectoryService(repo Repository, producer EventProducer, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		repo:     repo,
		slugs:    slug.NewResolver(repo),
		producer: producer,
		logger:   logger.Named("directory_service"),
	}
}

// ListTrades returns the full trade catalog.
func (s *DirectoryService) ListTrades(ctx context.Context) ([]models.Trade, error) {
	trades, err := s.repo.ListTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nil
}

// ValidateTradeIDs checks that at least one trade was selected and that
// every id resolves to a catalog entry. Field errors are returned as a
// value; the error return is reserved for storage failures.
func (s *DirectoryService) ValidateTradeIDs(ctx context.Context, ids []uint) (validation.FieldErrors, error) {
	if errs := validation.Step4(ids); len(errs) > 0 {
		return errs, nil
	}
	missing, err := s.repo.MissingTradeIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check trade ids: %w", err)
	}
	if len(missing) > 0 {
		return validation.FieldErrors{
			"tradeIds": fmt.Sprintf("Invalid trade ID: %d", missing[0]),
		}, nil
	}
	return nil, nil
}

// CreateSubcontractor is the final wizard step: it revalidates the
// complete resubmitted payload, resolves a unique slug, and persists
// the aggregate in one transaction. A validation.FieldErrors error
// reports recoverable input problems; any other error is a storage
// failure.
func (s *DirectoryService) CreateSubcontractor(ctx context.Context, sub *models.Submission) (*models.Subcontractor, error) {
	if errs := validation.Submission(sub); len(errs) > 0 {
		return nil, errs
	}
	if errs, err := s.ValidateTradeIDs(ctx, sub.TradeIDs); err != nil {
		return nil, err
	} else if len(errs) > 0 {
		return nil, errs
	}

	// The main contact is addressed by position in the submitted
	// employee list, so it always references a member of the aggregate.
	mainContactIdx := -1
	for i, emp := range sub.Employees {
		if emp.IsMainContact {
			mainContactIdx = i
			break
		}
	}

	agg := &models.Subcontractor{
		Name:        sub.Name,
		ABN:         sub.ABN,
		Mobile:      sub.Mobile,
		Email:       sub.Email,
		Logo:        sub.Logo,
		Documents:   sub.Documents,
		CurrentStep: 5,
	}
	for _, emp := range sub.Employees {
		agg.Employees = append(agg.Employees, models.Employee{
			Name:           emp.Name,
			JobTitle:       emp.JobTitle,
			Mobile:         emp.Mobile,
			Email:          emp.Email,
			ProfilePicture: emp.ProfilePicture,
		})
	}
	for _, id := range sub.TradeIDs {
		agg.Trades = append(agg.Trades, models.Trade{ID: id})
	}

	for attempt := 1; ; attempt++ {
		resolved, err := s.slugs.Resolve(ctx, sub.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve slug: %w", err)
		}
		agg.Slug = resolved

		err = s.repo.CreateSubcontractor(ctx, agg, mainContactIdx)
		if err == nil {
			break
		}
		if errors.Is(err, e.ErrDuplicateSlug) && attempt < createAttempts {
			s.logger.Warn("slug taken at insert time, re-resolving",
				zap.String("slug", resolved),
			)
			continue
		}
		return nil, fmt.Errorf("failed to create subcontractor: %w", err)
	}

	go func() {
		s.producer.Produce(events.SubcontractorCreated, agg)
	}()
	return agg, nil
}

// Search runs a filtered, paginated query over the directory. Page is
// clamped to >= 1 and limit to [1, 50]; a filter with no query and no
// trade ids is a plain listing.
func (s *DirectoryService) Search(ctx context.Context, filter *models.SearchFilter) (*models.SearchResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 1
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	items, total, err := s.repo.SearchSubcontractors(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search subcontractors: %w", err)
	}
	return &models.SearchResult{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// GetSite resolves a public profile: exact slug match first, then a
// numeric-id fallback when the identifier is all digits.
func (s *DirectoryService) GetSite(ctx context.Context, identifier string) (*models.Subcontractor, error) {
	sub, err := s.repo.GetSubcontractorBySlug(ctx, identifier)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	id, parseErr := strconv.ParseUint(identifier, 10, 32)
	if parseErr != nil {
		return nil, e.ErrNotFound
	}
	sub, err = s.repo.GetSubcontractorByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return sub, nil
}
