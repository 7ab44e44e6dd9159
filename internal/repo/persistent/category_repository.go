package persistent

import (
	"blogicum/internal/entity"
	"blogicum/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetBySlug(slug string) (*entity.Category, error)
	GetPublishedBySlug(slug string) (*entity.Category, error)
	ListPublished() ([]*entity.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if categoryModel.ID == "" {
		categoryModel.ID = uuid.New().String()
	}
	if err := r.db.Create(categoryModel).Error; err != nil {
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetByID(id string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("id = ?", id).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetBySlug(slug string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("slug = ?", slug).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) GetPublishedBySlug(slug string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) ListPublished() ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := r.db.Where("is_published = ?", true).Order("title ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(location *entity.Location) error {
	locationModel := ToLocationModel(location)
	if locationModel.ID == "" {
		locationModel.ID = uuid.New().String()
	}
	if err := r.db.Create(locationModel).Error; err != nil {
		return err
	}
	*location = *ToLocationEntity(locationModel)
	return nil
}

func (r *locationRepository) GetByID(id string) (*entity.Location, error) {
	var locationModel model.LocationModel
	if err := r.db.Where("id = ?", id).First(&locationModel).Error; err != nil {
		return nil, err
	}
	return ToLocationEntity(&locationModel), nil
}
