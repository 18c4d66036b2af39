package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"symphony-forum/models"
	"symphony-forum/repositories"
)

var (
	ErrEmptyArticleID = errors.New("article id is required")
	ErrEmptyTagID     = errors.New("tag id is required")
)

type TagArticleService interface {
	GetArticleRelations(ctx context.Context, articleID string) ([]models.TagArticle, error)
	GetTagRelations(ctx context.Context, params models.TagArticleListParams) (*models.TagArticlePage, error)
	TagArticle(ctx context.Context, req models.CreateTagArticleRequest) ([]models.TagArticle, error)
	UntagArticle(ctx context.Context, articleID string) (int64, error)
	RemoveRelation(ctx context.Context, id string) error
}

type tagArticleService struct {
	tagArticleRepo repositories.TagArticleRepository
}

func NewTagArticleService(tagArticleRepo repositories.TagArticleRepository) TagArticleService {
	return &tagArticleService{tagArticleRepo: tagArticleRepo}
}

func (s *tagArticleService) GetArticleRelations(ctx context.Context, articleID string) ([]models.TagArticle, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, ErrEmptyArticleID
	}

	relations, err := s.tagArticleRepo.GetByArticleID(ctx, articleID)
	if err != nil {
		log.Printf("get relations of article %s: %v", articleID, err)
		return nil, err
	}

	return relations, nil
}

func (s *tagArticleService) GetTagRelations(ctx context.Context, params models.TagArticleListParams) (*models.TagArticlePage, error) {
	if strings.TrimSpace(params.TagID) == "" {
		return nil, ErrEmptyTagID
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	page, err := s.tagArticleRepo.GetByTagID(ctx, params.TagID, params.Page, params.Limit)
	if err != nil {
		log.Printf("get relations of tag %s page %d: %v", params.TagID, params.Page, err)
		return nil, err
	}

	return page, nil
}

// TagArticle relates the article to every tag in the request it is not
// already related to, and returns the article's relations afterwards.
// Pairs inserted concurrently by another request are skipped.
func (s *tagArticleService) TagArticle(ctx context.Context, req models.CreateTagArticleRequest) ([]models.TagArticle, error) {
	if strings.TrimSpace(req.ArticleID) == "" {
		return nil, ErrEmptyArticleID
	}

	existing, err := s.tagArticleRepo.GetByArticleID(ctx, req.ArticleID)
	if err != nil {
		log.Printf("get relations of article %s: %v", req.ArticleID, err)
		return nil, err
	}

	tagged := make(map[string]bool, len(existing))
	for _, relation := range existing {
		tagged[relation.TagID] = true
	}

	var missing []models.TagArticle
	for _, tagID := range req.TagIDs {
		if strings.TrimSpace(tagID) == "" {
			return nil, ErrEmptyTagID
		}
		if tagged[tagID] {
			continue
		}
		missing = append(missing, models.TagArticle{TagID: tagID, ArticleID: req.ArticleID})
		tagged[tagID] = true
	}

	if len(missing) == 0 {
		return existing, nil
	}

	if _, err := s.tagArticleRepo.AddAll(ctx, missing); err != nil {
		log.Printf("tag article %s: %v", req.ArticleID, err)
		return nil, err
	}

	relations, err := s.tagArticleRepo.GetByArticleID(ctx, req.ArticleID)
	if err != nil {
		log.Printf("get relations of article %s: %v", req.ArticleID, err)
		return nil, err
	}

	return relations, nil
}

func (s *tagArticleService) UntagArticle(ctx context.Context, articleID string) (int64, error) {
	if strings.TrimSpace(articleID) == "" {
		return 0, ErrEmptyArticleID
	}

	removed, err := s.tagArticleRepo.RemoveByArticleID(ctx, articleID)
	if err != nil {
		log.Printf("untag article %s: %v", articleID, err)
		return 0, err
	}

	return removed, nil
}

func (s *tagArticleService) RemoveRelation(ctx context.Context, id string) error {
	if err := s.tagArticleRepo.Remove(ctx, id); err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("remove relation %s: %v", id, err)
		}
		return err
	}
	return nil
}
