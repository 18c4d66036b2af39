package repositories

import (
	"context"
	"errors"

	"symphony-forum/models"

	"github.com/google/uuid"
)

type TagArticleRepository interface {
	Add(ctx context.Context, relation *models.TagArticle) error
	AddAll(ctx context.Context, relations []models.TagArticle) (int64, error)
	Get(ctx context.Context, id string) (*models.TagArticle, error)
	Remove(ctx context.Context, id string) error
	RemoveByArticleID(ctx context.Context, articleID string) (int64, error)
	GetByArticleID(ctx context.Context, articleID string) ([]models.TagArticle, error)
	GetByTagID(ctx context.Context, tagID string, currentPageNum, pageSize int) (*models.TagArticlePage, error)
}

type tagArticleRepository struct {
	name   string
	engine QueryEngine
}

func NewTagArticleRepository(engine QueryEngine) TagArticleRepository {
	return &tagArticleRepository{
		name:   models.TagArticleTable,
		engine: engine,
	}
}

func (r *tagArticleRepository) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RepositoryError{Op: op, Table: r.name, Err: err}
}

func (r *tagArticleRepository) Add(ctx context.Context, relation *models.TagArticle) error {
	if relation.TagID == "" || relation.ArticleID == "" {
		return ErrInvalidRelation
	}

	if relation.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return r.wrap("add", err)
		}
		relation.ID = id.String()
	}

	return r.wrap("add", r.engine.Add(ctx, r.name, relation))
}

// AddAll inserts the relations atomically. Pairs that already exist are
// skipped, so the returned count may be lower than len(relations).
func (r *tagArticleRepository) AddAll(ctx context.Context, relations []models.TagArticle) (int64, error) {
	if len(relations) == 0 {
		return 0, nil
	}

	for i := range relations {
		if relations[i].TagID == "" || relations[i].ArticleID == "" {
			return 0, ErrInvalidRelation
		}
		if relations[i].ID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return 0, r.wrap("add all", err)
			}
			relations[i].ID = id.String()
		}
	}

	added, err := r.engine.AddAll(ctx, r.name, &relations)
	if err != nil {
		return 0, r.wrap("add all", err)
	}

	return added, nil
}

func (r *tagArticleRepository) Get(ctx context.Context, id string) (*models.TagArticle, error) {
	query := NewQuery().SetFilter(NewPropertyFilter(models.TagArticleColumnID, id))

	var relation models.TagArticle
	if err := r.engine.First(ctx, r.name, query, &relation); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, r.wrap("get", err)
	}

	return &relation, nil
}

func (r *tagArticleRepository) Remove(ctx context.Context, id string) error {
	query := NewQuery().SetFilter(NewPropertyFilter(models.TagArticleColumnID, id))

	removed, err := r.engine.Remove(ctx, r.name, query, &models.TagArticle{})
	if err != nil {
		return r.wrap("remove", err)
	}
	if removed == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *tagArticleRepository) RemoveByArticleID(ctx context.Context, articleID string) (int64, error) {
	query := NewQuery().SetFilter(NewPropertyFilter(models.TagArticleColumnArticleID, articleID))

	removed, err := r.engine.Remove(ctx, r.name, query, &models.TagArticle{})
	if err != nil {
		return 0, r.wrap("remove by article id", err)
	}

	return removed, nil
}

// GetByArticleID returns every relation of the article in one unpaged fetch.
func (r *tagArticleRepository) GetByArticleID(ctx context.Context, articleID string) ([]models.TagArticle, error) {
	query := NewQuery().SetFilter(NewPropertyFilter(models.TagArticleColumnArticleID, articleID))

	relations := []models.TagArticle{}
	if _, err := r.engine.Get(ctx, r.name, query, &relations); err != nil {
		return nil, r.wrap("get by article id", err)
	}

	return relations, nil
}

// GetByTagID returns one page of the tag's relations, newest article first.
// currentPageNum and pageSize must be greater than 0.
func (r *tagArticleRepository) GetByTagID(ctx context.Context, tagID string, currentPageNum, pageSize int) (*models.TagArticlePage, error) {
	query := NewQuery().
		SetFilter(NewPropertyFilter(models.TagArticleColumnTagID, tagID)).
		AddSort(models.TagArticleColumnArticleID, Descending).
		SetCurrentPageNum(currentPageNum).
		SetPageSize(pageSize).
		SetPageCount(true)

	relations := []models.TagArticle{}
	pagination, err := r.engine.Get(ctx, r.name, query, &relations)
	if err != nil {
		return nil, r.wrap("get by tag id", err)
	}

	return &models.TagArticlePage{
		Relations:      relations,
		CurrentPageNum: pagination.CurrentPageNum,
		PageSize:       pagination.PageSize,
		PageCount:      pagination.PageCount,
		RecordCount:    pagination.RecordCount,
	}, nil
}
