package usecase

import (
	"errors"

	"blogicum/internal/entity"
	"blogicum/internal/repo/persistent"
	"blogicum/pkg/logger"
	"blogicum/pkg/queue"

	"gorm.io/gorm"
)

type CommentUseCase interface {
	AddComment(actorID, postID, text string) (*entity.Comment, error)
	UpdateComment(actorID, postID, commentID, text string) (*entity.Comment, error)
	DeleteComment(actorID, postID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	userRepo    persistent.UserRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	userRepo persistent.UserRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

// AddComment requires authentication but not visibility of the target
// post: any authenticated user may comment on any post reachable by id.
func (uc *commentUseCase) AddComment(actorID, postID, text string) (*entity.Comment, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   post.ID,
		AuthorID: actorID,
		Text:     text,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, errors.New("failed to create comment")
	}

	if uc.queueClient != nil && post.AuthorID != actorID {
		go uc.publishCommentNotification(post, comment)
	}

	return comment, nil
}

// getOwnedComment fetches a comment, checks it belongs to the named
// post, and applies the ownership gate. allowStaff widens the gate for
// deletes. Every denial is reported as not found.
func (uc *commentUseCase) getOwnedComment(actorID, postID, commentID string, allowStaff bool) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if comment.PostID != postID {
		return nil, ErrNotFound
	}

	if comment.AuthorID == actorID {
		return comment, nil
	}

	if allowStaff {
		actor, err := uc.userRepo.GetByID(actorID)
		if err == nil && actor.IsStaff {
			return comment, nil
		}
	}

	return nil, ErrNotFound
}

func (uc *commentUseCase) UpdateComment(actorID, postID, commentID, text string) (*entity.Comment, error) {
	comment, err := uc.getOwnedComment(actorID, postID, commentID, false)
	if err != nil {
		return nil, err
	}

	comment.Text = text
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return nil, errors.New("failed to update comment")
	}

	return comment, nil
}

func (uc *commentUseCase) DeleteComment(actorID, postID, commentID string) error {
	comment, err := uc.getOwnedComment(actorID, postID, commentID, true)
	if err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(comment.ID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return errors.New("failed to delete comment")
	}
	return nil
}

func (uc *commentUseCase) publishCommentNotification(post *entity.Post, comment *entity.Comment) {
	task := map[string]interface{}{
		"type":       "new_comment",
		"post_id":    post.ID,
		"author_id":  post.AuthorID,
		"comment_id": comment.ID,
	}

	if err := uc.queueClient.PublishNotificationTask(task); err != nil {
		uc.logger.Error("Failed to publish comment notification: %v", err)
	}
}
