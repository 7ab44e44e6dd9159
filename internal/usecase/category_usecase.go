package usecase

import (
	"errors"

	"blogicum/internal/entity"
	"blogicum/internal/repo/persistent"
	"blogicum/pkg/logger"
)

type CreateCategoryInput struct {
	Title       string
	Description string
	Slug        string
	IsPublished bool
}

type CategoryUseCase interface {
	ListCategories() ([]*entity.Category, error)
	CreateCategory(actorID string, input CreateCategoryInput) (*entity.Category, error)
	CreateLocation(actorID, name string, isPublished bool) (*entity.Location, error)
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	locationRepo persistent.LocationRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(
	categoryRepo persistent.CategoryRepository,
	locationRepo persistent.LocationRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *categoryUseCase) requireStaff(actorID string) error {
	actor, err := uc.userRepo.GetByID(actorID)
	if err != nil || !actor.IsStaff {
		return ErrForbidden
	}
	return nil
}

func (uc *categoryUseCase) ListCategories() ([]*entity.Category, error) {
	return uc.categoryRepo.ListPublished()
}

func (uc *categoryUseCase) CreateCategory(actorID string, input CreateCategoryInput) (*entity.Category, error) {
	if err := uc.requireStaff(actorID); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetBySlug(input.Slug); err == nil {
		return nil, ErrConflict
	}

	category := &entity.Category{
		Title:       input.Title,
		Description: input.Description,
		Slug:        input.Slug,
		IsPublished: input.IsPublished,
	}

	if err := uc.categoryRepo.Create(category); err != nil {
		uc.logger.Error("Failed to create category: %v", err)
		return nil, errors.New("failed to create category")
	}
	return category, nil
}

func (uc *categoryUseCase) CreateLocation(actorID, name string, isPublished bool) (*entity.Location, error) {
	if err := uc.requireStaff(actorID); err != nil {
		return nil, err
	}

	location := &entity.Location{
		Name:        name,
		IsPublished: isPublished,
	}

	if err := uc.locationRepo.Create(location); err != nil {
		uc.logger.Error("Failed to create location: %v", err)
		return nil, errors.New("failed to create location")
	}
	return location, nil
}
