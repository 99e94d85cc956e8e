package repository

import (
	"errors"

	"quizboard_backend/internal/model"

	"gorm.io/gorm"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

// GetPreference returns the stored template name, or "" when none exists.
func (r *TemplateRepository) GetPreference() (string, error) {
	var pref model.TemplatePreference
	err := r.DB.Order("id").First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Name, nil
}

// SavePreference upserts the single preference row.
func (r *TemplateRepository) SavePreference(name string) error {
	var pref model.TemplatePreference
	err := r.DB.Order("id").First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(&model.TemplatePreference{Name: name}).Error
	}
	if err != nil {
		return err
	}
	pref.Name = name
	return r.DB.Save(&pref).Error
}
