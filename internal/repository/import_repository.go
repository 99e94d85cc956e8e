package repository

import (
	"quizboard_backend/internal/model"

	"gorm.io/gorm"
)

type ImportRepository struct {
	DB *gorm.DB
}

func NewImportRepository(db *gorm.DB) *ImportRepository {
	return &ImportRepository{DB: db}
}

func (r *ImportRepository) Create(record *model.ImportRecord) error {
	return r.DB.Create(record).Error
}

func (r *ImportRepository) List(page, limit int) ([]model.ImportRecord, int64, error) {
	var records []model.ImportRecord
	var total int64

	if err := r.DB.Model(&model.ImportRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *ImportRepository) FindByID(id uint) (*model.ImportRecord, error) {
	var record model.ImportRecord
	if err := r.DB.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
