package models

import "time"

const (
	TagArticleTable = "tag_article"

	TagArticleColumnID        = "id"
	TagArticleColumnTagID     = "tag_id"
	TagArticleColumnArticleID = "article_id"
)

// TagArticle links one tag to one article.
type TagArticle struct {
	ID        string    `json:"id" gorm:"primaryKey;column:id;type:varchar(64)"`
	TagID     string    `json:"tag_id" gorm:"column:tag_id;type:varchar(64);not null;uniqueIndex:idx_tag_article_pair,priority:1"`
	ArticleID string    `json:"article_id" gorm:"column:article_id;type:varchar(64);not null;index;uniqueIndex:idx_tag_article_pair,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}

func (TagArticle) TableName() string {
	return TagArticleTable
}

// TagArticlePage is one page of relations for a tag.
type TagArticlePage struct {
	Relations      []TagArticle `json:"relations"`
	CurrentPageNum int          `json:"current_page"`
	PageSize       int          `json:"page_size"`
	PageCount      int          `json:"page_count"`
	RecordCount    int64        `json:"record_count"`
}
