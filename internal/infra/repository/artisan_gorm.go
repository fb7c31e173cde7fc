package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ArtisanGormRepository struct {
	db *gorm.DB
}

func NewArtisanGormRepository(db *gorm.DB) *ArtisanGormRepository {
	return &ArtisanGormRepository{db: db}
}

func (r *ArtisanGormRepository) FindByID(ctx context.Context, id int64) (model.ArtisanProfile, error) {
	var a model.ArtisanProfile
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ArtisanProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ArtisanProfile{}, err
	}
	return a, nil
}

func (r *ArtisanGormRepository) FindByUserID(ctx context.Context, userID int64) (model.ArtisanProfile, error) {
	var a model.ArtisanProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ArtisanProfile{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ArtisanProfile{}, err
	}
	return a, nil
}

func (r *ArtisanGormRepository) Create(ctx context.Context, a model.ArtisanProfile) (model.ArtisanProfile, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.ArtisanProfile{}, err
	}
	return a, nil
}

func (r *ArtisanGormRepository) Update(ctx context.Context, a model.ArtisanProfile) error {
	res := r.db.WithContext(ctx).Model(&model.ArtisanProfile{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"display_name": a.DisplayName,
		"location":     a.Location,
		"story":        a.Story,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ArtisanGormRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.ArtisanProfile{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ArtisanGormRepository) ListActive(ctx context.Context, limit int, excludeID int64) ([]model.ArtisanProfile, error) {
	tx := r.db.WithContext(ctx).Where("is_active = ?", true)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}

	var artisans []model.ArtisanProfile
	if err := tx.Order("created_at desc").Order("id desc").Limit(limit).Find(&artisans).Error; err != nil {
		return []model.ArtisanProfile{}, err
	}
	return artisans, nil
}
