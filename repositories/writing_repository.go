package repositories

import (
	"errors"

	"writings-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type WritingRepository interface {
	Create(writing *models.Writing) error
	GetAll() ([]models.Writing, error)
	GetBySlug(slug string) (*models.Writing, error)
	GetByID(id uint) (*models.Writing, error)
	Update(writing *models.Writing) error
	Delete(id uint) error
}

type writingRepository struct {
	db *gorm.DB
}

func NewWritingRepository(db *gorm.DB) WritingRepository {
	return &writingRepository{db: db}
}

func (r *writingRepository) Create(writing *models.Writing) error {
	return translateError(r.db.Create(writing).Error)
}

func (r *writingRepository) GetAll() ([]models.Writing, error) {
	writings := []models.Writing{}
	err := r.db.Order("created_at desc").Order("id desc").Find(&writings).Error
	return writings, err
}

func (r *writingRepository) GetBySlug(slug string) (*models.Writing, error) {
	var writing models.Writing
	err := r.db.Where("slug = ?", slug).First(&writing).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &writing, nil
}

func (r *writingRepository) GetByID(id uint) (*models.Writing, error) {
	var writing models.Writing
	err := r.db.First(&writing, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &writing, nil
}

func (r *writingRepository) Update(writing *models.Writing) error {
	return translateError(r.db.Save(writing).Error)
}

func (r *writingRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Writing{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrorNotFound{Message: models.MsgWritingNotFound}
	}
	return nil
}

// translateError maps driver and gorm errors onto the domain error types.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: models.MsgWritingNotFound}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.ErrorConflict{Message: models.MsgSlugConflict, Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return models.ErrorConflict{Message: models.MsgSlugConflict, Err: err}
	}
	return err
}
