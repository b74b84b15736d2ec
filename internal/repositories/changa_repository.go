package repositories

import (
	"errors"

	"gorm.io/gorm"

	"changaya_backend/internal/models"
)

var ErrChangaNotFound = errors.New("changa not found")

type ChangaRepository interface {
	Create(changa *models.Changa) error
	FindByID(id string) (*models.Changa, error)
	FindByStatus(status models.ChangaStatus) ([]models.Changa, error)
	FindByWorker(workerID string) ([]models.Changa, error)
	FindByEmployer(employerID string) ([]models.Changa, error)
	Update(changa *models.Changa) error
	Delete(id string) error
}

type ChangaRepositoryImpl struct {
	db *gorm.DB
}

func NewChangaRepository(db *gorm.DB) ChangaRepository {
	return &ChangaRepositoryImpl{db: db}
}

func (r *ChangaRepositoryImpl) Create(changa *models.Changa) error {
	return r.db.Create(changa).Error
}

func (r *ChangaRepositoryImpl) FindByID(id string) (*models.Changa, error) {
	var changa models.Changa
	err := r.db.First(&changa, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangaNotFound
		}
		return nil, err
	}
	return &changa, nil
}

func (r *ChangaRepositoryImpl) FindByStatus(status models.ChangaStatus) ([]models.Changa, error) {
	var changas []models.Changa
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&changas).Error
	return changas, err
}

func (r *ChangaRepositoryImpl) FindByWorker(workerID string) ([]models.Changa, error) {
	var changas []models.Changa
	err := r.db.Where("worker_id = ?", workerID).Order("created_at DESC").Find(&changas).Error
	return changas, err
}

func (r *ChangaRepositoryImpl) FindByEmployer(employerID string) ([]models.Changa, error) {
	var changas []models.Changa
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&changas).Error
	return changas, err
}

func (r *ChangaRepositoryImpl) Update(changa *models.Changa) error {
	result := r.db.Model(changa).Updates(map[string]interface{}{
		"title":        changa.Title,
		"description":  changa.Description,
		"compensation": changa.Compensation,
		"start_time":   changa.StartTime,
		"end_time":     changa.EndTime,
		"status":       changa.Status,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChangaNotFound
	}
	return nil
}

func (r *ChangaRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Changa{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrChangaNotFound
	}
	return nil
}
