package models

type CreateTagArticleRequest struct {
	ArticleID string   `json:"article_id" validate:"required,max=64"`
	TagIDs    []string `json:"tag_ids" validate:"required,min=1,dive,required,max=64"`
}

type TagArticleListParams struct {
	TagID string `form:"-" validate:"required"`
	Page  int    `form:"page,default=1" validate:"min=1,max=1000000"`
	Limit int    `form:"limit,default=10" validate:"min=1,max=100"`
}
