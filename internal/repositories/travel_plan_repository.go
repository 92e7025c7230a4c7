package repositories

import (
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderplan/internal/models/db_models"
)

type TravelPlanRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*db_models.TravelPlan, error)
	CreateIfAbsent(ctx context.Context, plan *db_models.TravelPlan) (*db_models.TravelPlan, error)
}

type TravelPlanRepository struct {
	db *gorm.DB
}

func NewTravelPlanRepository(db *gorm.DB) TravelPlanRepositoryInterface {
	return &TravelPlanRepository{db: db}
}

func (r *TravelPlanRepository) FindBySlug(ctx context.Context, slug string) (*db_models.TravelPlan, error) {
	var plan db_models.TravelPlan
	err := r.db.WithContext(ctx).First(&plan, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// CreateIfAbsent inserts the plan unless a record with the same slug already
// exists. The unique index on slug makes the insert atomic against concurrent
// writers; whoever loses the race gets the winner's record back instead of an
// error.
func (r *TravelPlanRepository) CreateIfAbsent(ctx context.Context, plan *db_models.TravelPlan) (*db_models.TravelPlan, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(plan)

	if result.Error != nil {
		if !isUniqueViolation(result.Error) {
			return nil, result.Error
		}
	} else if result.RowsAffected > 0 {
		return plan, nil
	}

	existing, err := r.FindBySlug(ctx, plan.Slug)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("plan %q missing after conflicting insert", plan.Slug)
	}
	return existing, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
