package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/hirelens/hirelens/internal/models"
	"github.com/hirelens/hirelens/internal/utils"
)

type SearchLogRepository interface {
	Create(ctx context.Context, l *models.SearchLog) error
	Recent(ctx context.Context, limit int) ([]models.SearchLog, error)
}

type searchLogRepo struct {
	db *gorm.DB
}

func NewSearchLogRepo(db *gorm.DB) SearchLogRepository {
	return &searchLogRepo{db: db}
}

func (r *searchLogRepo) Create(ctx context.Context, l *models.SearchLog) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return utils.E(utils.CodeInternal, "SearchLogRepo.Create", "failed to write search log", err)
	}
	return nil
}

func (r *searchLogRepo) Recent(ctx context.Context, limit int) ([]models.SearchLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []models.SearchLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, utils.E(utils.CodeInternal, "SearchLogRepo.Recent", "failed to list search logs", err)
	}
	return out, nil
}
