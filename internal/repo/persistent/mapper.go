package persistent

import (
	"blogicum/internal/entity"
	"blogicum/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Password:  m.Password,
		IsStaff:   m.IsStaff,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Password:  e.Password,
		IsStaff:   e.IsStaff,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Slug:        m.Slug,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Slug:        e.Slug,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
	}
}

func ToLocationEntity(m *model.LocationModel) *entity.Location {
	if m == nil {
		return nil
	}

	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
	}
}

func ToLocationModel(e *entity.Location) *model.LocationModel {
	if e == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          e.ID,
		Name:        e.Name,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Text:        m.Text,
		PubDate:     m.PubDate,
		IsPublished: m.IsPublished,
		ImageURL:    m.ImageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Author:      ToUserEntity(m.Author),
		Category:    ToCategoryEntity(m.Category),
		Location:    ToLocationEntity(m.Location),
	}

	if m.CategoryID != nil {
		post.CategoryID = *m.CategoryID
	}
	if m.LocationID != nil {
		post.LocationID = *m.LocationID
	}

	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			post.Comments[i] = *ToCommentEntity(&m.Comments[i])
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Title:       e.Title,
		Text:        e.Text,
		PubDate:     e.PubDate,
		IsPublished: e.IsPublished,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	if e.CategoryID != "" {
		categoryID := e.CategoryID
		post.CategoryID = &categoryID
	}
	if e.LocationID != "" {
		locationID := e.LocationID
		post.LocationID = &locationID
	}

	return post
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		Author:    ToUserEntity(m.Author),
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}
