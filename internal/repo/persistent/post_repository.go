package persistent

import (
	"time"

	"blogicum/internal/entity"
	"blogicum/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	ListPublished(now time.Time, limit, offset int) ([]*entity.Post, int64, error)
	ListByCategorySlug(slug string, now time.Time, limit, offset int) ([]*entity.Post, int64, error)
	ListByAuthor(authorID string, visibleOnly bool, now time.Time, limit, offset int) ([]*entity.Post, int64, error)
	Update(post *entity.Post) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	err := r.db.
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.Author").
		Where("id = ?", id).
		First(&postModel).Error
	if err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// publishedScope restricts a posts query to publicly visible rows: the
// post is published, its pub_date has passed, and it sits in a published
// category. The inner join drops posts without a category.
func (r *postRepository) publishedScope(now time.Time) *gorm.DB {
	return r.db.Model(&model.PostModel{}).
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("posts.is_published = ? AND posts.pub_date <= ? AND categories.is_published = ?", true, now, true)
}

func (r *postRepository) findPage(query *gorm.DB, limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query = query.
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Preload("Comments").
		Order("posts.pub_date DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListPublished(now time.Time, limit, offset int) ([]*entity.Post, int64, error) {
	var total int64
	if err := r.publishedScope(now).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts, err := r.findPage(r.publishedScope(now), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByCategorySlug(slug string, now time.Time, limit, offset int) ([]*entity.Post, int64, error) {
	scope := func() *gorm.DB {
		return r.publishedScope(now).Where("categories.slug = ?", slug)
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts, err := r.findPage(scope(), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) ListByAuthor(authorID string, visibleOnly bool, now time.Time, limit, offset int) ([]*entity.Post, int64, error) {
	scope := func() *gorm.DB {
		if visibleOnly {
			return r.publishedScope(now).Where("posts.author_id = ?", authorID)
		}
		return r.db.Model(&model.PostModel{}).Where("posts.author_id = ?", authorID)
	}

	var total int64
	if err := scope().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	posts, err := r.findPage(scope(), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	postModel := ToPostModel(post)
	return r.db.Save(postModel).Error
}

// Delete removes the post and its comments in one transaction. The FK on
// comments cascades too; the explicit delete keeps the behavior identical
// on databases where the constraint was not created.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PostModel{}, "id = ?", id).Error
	})
}
