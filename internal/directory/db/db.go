// Package db implements the directory store on top of GORM, holding
// subcontractors, their employees, the trade catalog, and the
// subcontractor-trade junction.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbmodels "github.com/tradesite/directory/internal/directory/db/models"
	e "github.com/tradesite/directory/internal/directory/errors"
	"github.com/tradesite/directory/internal/directory/models"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		return err
	}
	if err := backoff.Retry(connect, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&dbmodels.Trade{}, &dbmodels.Subcontractor{}, &dbmodels.Employee{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// SeedTrades populates the trade catalog on first boot. A non-empty
// trades table is left untouched.
func (r *Repository) SeedTrades(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&dbmodels.Trade{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	trades := make([]dbmodels.Trade, 0, len(tradeCatalog))
	for _, name := range tradeCatalog {
		trades = append(trades, dbmodels.Trade{Name: name})
	}
	return r.db.WithContext(ctx).CreateInBatches(trades, 50).Error
}

// CreateSubcontractor persists the whole aggregate in one transaction:
// the subcontractor row, its employees, and its trade links.
// mainContactIdx indexes into sub.Employees; pass -1 for none. The
// referenced employee always belongs to the same aggregate because the
// reference is positional, not a free pointer.
func (r *Repository) CreateSubcontractor(ctx context.Context, sub *models.Subcontractor, mainContactIdx int) error {
	row := subcontractorFromDomain(sub)

	err := r.WithTransaction(ctx, func(txRepo *Repository) error {
		// Omit("Trades.*") links existing catalog rows without
		// touching the trades table itself.
		if err := txRepo.db.WithContext(ctx).Omit("Trades.*").Create(row).Error; err != nil {
			return err
		}
		if mainContactIdx >= 0 && mainContactIdx < len(row.Employees) {
			id := row.Employees[mainContactIdx].ID
			if err := txRepo.db.WithContext(ctx).Model(&dbmodels.Subcontractor{}).
				Where("id = ?", row.ID).
				Update("main_contact_employee_id", id).Error; err != nil {
				return err
			}
			row.MainContactEmployeeID = &id
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return e.ErrDuplicateSlug
		}
		return err
	}

	*sub = *subcontractorToDomain(row)
	return nil
}

// SlugExists reports whether any subcontractor already uses the slug.
func (r *Repository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&dbmodels.Subcontractor{}).
		Where("slug = ?", slug).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// GetSubcontractorBySlug loads the full aggregate by its slug.
func (r *Repository) GetSubcontractorBySlug(ctx context.Context, slug string) (*models.Subcontractor, error) {
	return r.getSubcontractor(ctx, "slug = ?", slug)
}

// GetSubcontractorByID loads the full aggregate by its surrogate id.
func (r *Repository) GetSubcontractorByID(ctx context.Context, id uint) (*models.Subcontractor, error) {
	return r.getSubcontractor(ctx, "id = ?", id)
}

func (r *Repository) getSubcontractor(ctx context.Context, query string, arg interface{}) (*models.Subcontractor, error) {
	var row dbmodels.Subcontractor
	result := r.db.WithContext(ctx).
		Preload("Trades").
		Preload("Employees").
		First(&row, query, arg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, e.ErrNotFound
		}
		return nil, result.Error
	}
	return subcontractorToDomain(&row), nil
}

// SearchSubcontractors returns one page of matches and the total count
// over the filtered, pre-pagination set. Results are ordered by name
// with id as the tie-breaker so pagination is deterministic. The trade
// filter goes through a junction subquery, so a subcontractor linked to
// several requested trades still appears once.
func (r *Repository) SearchSubcontractors(ctx context.Context, filter *models.SearchFilter) ([]models.Subcontractor, int64, error) {
	q := r.db.WithContext(ctx).Model(&dbmodels.Subcontractor{})
	if filter.Query != "" {
		q = q.Where("LOWER(name) LIKE ? OR abn LIKE ?",
			"%"+strings.ToLower(filter.Query)+"%",
			"%"+filter.Query+"%",
		)
	}
	if len(filter.TradeIDs) > 0 {
		links := r.db.Table("subcontractor_trade").
			Select("subcontractor_id").
			Where("trade_id IN ?", filter.TradeIDs)
		q = q.Where("id IN (?)", links)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dbmodels.Subcontractor
	err := q.Session(&gorm.Session{}).
		Order("name ASC, id ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("Trades").
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.Subcontractor, 0, len(rows))
	for i := range rows {
		items = append(items, *subcontractorToDomain(&rows[i]))
	}
	return items, total, nil
}

// ListTrades returns the whole trade catalog in id order.
func (r *Repository) ListTrades(ctx context.Context) ([]models.Trade, error) {
	var rows []dbmodels.Trade
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	trades := make([]models.Trade, 0, len(rows))
	for _, row := range rows {
		trades = append(trades, models.Trade{ID: row.ID, Name: row.Name})
	}
	return trades, nil
}

// MissingTradeIDs returns the subset of ids with no matching trade row,
// in the order they were given.
func (r *Repository) MissingTradeIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []uint
	err := r.db.WithContext(ctx).Model(&dbmodels.Trade{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}

	known := make(map[uint]bool, len(found))
	for _, id := range found {
		known[id] = true
	}
	var missing []uint
	for _, id := range ids {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
