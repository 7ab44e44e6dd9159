package usecase

import (
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"blogicum/internal/entity"
	"blogicum/internal/repo/persistent"
	"blogicum/pkg/logger"
	"blogicum/pkg/s3"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageSize is the fixed page size of every post listing.
const PageSize = 10

type PostPage struct {
	Posts      []*entity.Post `json:"posts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
}

type CreatePostInput struct {
	Title      string
	Text       string
	PubDate    *time.Time
	CategoryID string
	LocationID string
}

type UpdatePostInput struct {
	Title      string
	Text       string
	PubDate    *time.Time
	CategoryID string
	LocationID string
}

type PostUseCase interface {
	ListPublished(page int) (*PostPage, error)
	ListByCategory(slug string, page int) (*entity.Category, *PostPage, error)
	ListByProfile(username, actorID string, page int) (*entity.User, *PostPage, error)
	GetPost(id, actorID string) (*entity.Post, error)
	CreatePost(actorID string, input CreatePostInput) (*entity.Post, error)
	UpdatePost(actorID, id string, input UpdatePostInput) (*entity.Post, error)
	DeletePost(actorID, id string) error
	UploadImage(actorID, postID string, file io.Reader, filename, contentType string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo     persistent.PostRepository
	userRepo     persistent.UserRepository
	categoryRepo persistent.CategoryRepository
	locationRepo persistent.LocationRepository
	s3Client     *s3.Client
	logger       *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	categoryRepo persistent.CategoryRepository,
	locationRepo persistent.LocationRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:     postRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		s3Client:     s3Client,
		logger:       logger,
	}
}

func newPostPage(posts []*entity.Post, total int64, page int) *PostPage {
	totalPages := int((total + PageSize - 1) / PageSize)
	return &PostPage{
		Posts:      posts,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

func (uc *postUseCase) ListPublished(page int) (*PostPage, error) {
	posts, total, err := uc.postRepo.ListPublished(time.Now(), PageSize, pageOffset(page))
	if err != nil {
		return nil, err
	}
	return newPostPage(posts, total, page), nil
}

func (uc *postUseCase) ListByCategory(slug string, page int) (*entity.Category, *PostPage, error) {
	category, err := uc.categoryRepo.GetPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	posts, total, err := uc.postRepo.ListByCategorySlug(slug, time.Now(), PageSize, pageOffset(page))
	if err != nil {
		return nil, nil, err
	}
	return category, newPostPage(posts, total, page), nil
}

// ListByProfile returns a user's posts. The owner sees every post they
// wrote, including scheduled and unpublished ones; everyone else sees
// only publicly visible posts.
func (uc *postUseCase) ListByProfile(username, actorID string, page int) (*entity.User, *PostPage, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	user.Password = ""

	visibleOnly := actorID == "" || actorID != user.ID
	posts, total, err := uc.postRepo.ListByAuthor(user.ID, visibleOnly, time.Now(), PageSize, pageOffset(page))
	if err != nil {
		return nil, nil, err
	}
	return user, newPostPage(posts, total, page), nil
}

// GetPost returns the post with its comments. A post that fails the
// visibility check is reported as not found to everyone but its author,
// so hidden posts cannot be probed by id.
func (uc *postUseCase) GetPost(id, actorID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !post.VisibleTo(actorID, time.Now()) {
		return nil, ErrNotFound
	}

	return post, nil
}

// checkRefs verifies that any category/location references in an input
// point at existing rows, so a bad reference surfaces as a validation
// failure instead of a foreign key error.
func (uc *postUseCase) checkRefs(categoryID, locationID string) error {
	if categoryID != "" {
		if _, err := uc.categoryRepo.GetByID(categoryID); err != nil {
			return fmt.Errorf("%w: unknown category", ErrInvalidInput)
		}
	}
	if locationID != "" {
		if _, err := uc.locationRepo.GetByID(locationID); err != nil {
			return fmt.Errorf("%w: unknown location", ErrInvalidInput)
		}
	}
	return nil
}

func (uc *postUseCase) CreatePost(actorID string, input CreatePostInput) (*entity.Post, error) {
	if err := uc.checkRefs(input.CategoryID, input.LocationID); err != nil {
		return nil, err
	}

	pubDate := time.Now()
	if input.PubDate != nil {
		pubDate = *input.PubDate
	}

	post := &entity.Post{
		AuthorID:    actorID,
		Title:       input.Title,
		Text:        input.Text,
		PubDate:     pubDate,
		IsPublished: true,
		CategoryID:  input.CategoryID,
		LocationID:  input.LocationID,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, errors.New("failed to create post")
	}

	return uc.postRepo.GetByID(post.ID)
}

// UpdatePost is author-only; a denied edit reports not found.
func (uc *postUseCase) UpdatePost(actorID, id string, input UpdatePostInput) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, ErrNotFound
	}

	if err := uc.checkRefs(input.CategoryID, input.LocationID); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Text = input.Text
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID
	if input.PubDate != nil {
		post.PubDate = *input.PubDate
	} else {
		// Clearing the publication date reschedules the post to now,
		// matching the create default.
		post.PubDate = time.Now()
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", id, err)
		return nil, errors.New("failed to update post")
	}

	return uc.postRepo.GetByID(id)
}

// DeletePost is allowed for the author and for staff. Staffness is read
// from the stored user record rather than the token claims.
func (uc *postUseCase) DeletePost(actorID, id string) error {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.AuthorID != actorID {
		actor, err := uc.userRepo.GetByID(actorID)
		if err != nil || !actor.IsStaff {
			return ErrNotFound
		}
	}

	if err := uc.postRepo.Delete(id); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", id, err)
		return err
	}
	return nil
}

func (uc *postUseCase) UploadImage(actorID, postID string, file io.Reader, filename, contentType string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if post.AuthorID != actorID {
		return nil, ErrNotFound
	}

	fileKey := fmt.Sprintf("posts/%s/%s%s", post.ID, uuid.New().String(), path.Ext(filename))
	imageURL, err := uc.s3Client.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload post image: %v", err)
		return nil, errors.New("failed to upload image")
	}

	post.ImageURL = imageURL
	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to save post image URL: %v", err)
		return nil, errors.New("failed to save image")
	}

	return uc.postRepo.GetByID(postID)
}
