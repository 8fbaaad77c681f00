package services

import (
	"time"

	"writings-api/helper"
	"writings-api/models"
	"writings-api/repositories"
)

type WritingService interface {
	ListWritings() ([]models.Writing, error)
	GetWritingBySlug(slug string) (*models.Writing, error)
	CreateWriting(req models.CreateWritingRequest) (*models.Writing, error)
	UpdateWriting(id uint, req models.UpdateWritingRequest) (*models.Writing, error)
	DeleteWriting(id uint) error
}

type writingService struct {
	writingRepo   repositories.WritingRepository
	defaultAuthor string
	now           func() time.Time
}

func NewWritingService(writingRepo repositories.WritingRepository, defaultAuthor string) WritingService {
	return &writingService{
		writingRepo:   writingRepo,
		defaultAuthor: defaultAuthor,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func (s *writingService) ListWritings() ([]models.Writing, error) {
	return s.writingRepo.GetAll()
}

func (s *writingService) GetWritingBySlug(slug string) (*models.Writing, error) {
	return s.writingRepo.GetBySlug(slug)
}

func (s *writingService) CreateWriting(req models.CreateWritingRequest) (*models.Writing, error) {
	if req.Title == "" || req.Content == "" {
		return nil, models.ErrorValidation{Message: models.MsgFieldsRequired}
	}

	author := s.defaultAuthor
	if req.Author != nil {
		author = *req.Author
	}

	now := s.now()
	writing := &models.Writing{
		Title:       req.Title,
		Slug:        helper.GenerateSlug(req.Title),
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		Author:      author,
		ReadingTime: helper.EstimateReadingTime(req.Content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writingRepo.Create(writing); err != nil {
		return nil, err
	}

	return writing, nil
}

func (s *writingService) UpdateWriting(id uint, req models.UpdateWritingRequest) (*models.Writing, error) {
	writing, err := s.writingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if (req.Title.Set && !req.Title.NonEmpty()) || (req.Content.Set && !req.Content.NonEmpty()) {
		return nil, models.ErrorValidation{Message: models.MsgFieldsEmpty}
	}

	if req.Title.Set {
		writing.Title = *req.Title.Value
		writing.Slug = helper.GenerateSlug(writing.Title)
	}
	if req.Content.Set {
		writing.Content = *req.Content.Value
		writing.ReadingTime = helper.EstimateReadingTime(writing.Content)
	}
	if req.Subtitle.Set {
		writing.Subtitle = req.Subtitle.Value
	}
	if req.Author.Set {
		// null resets to the default author
		if req.Author.Value == nil {
			writing.Author = s.defaultAuthor
		} else {
			writing.Author = *req.Author.Value
		}
	}

	writing.UpdatedAt = s.now()

	if err := s.writingRepo.Update(writing); err != nil {
		return nil, err
	}

	return writing, nil
}

func (s *writingService) DeleteWriting(id uint) error {
	if _, err := s.writingRepo.GetByID(id); err != nil {
		return err
	}

	return s.writingRepo.Delete(id)
}
