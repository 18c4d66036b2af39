package repositories

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormQueryEngine struct {
	db *gorm.DB
}

func NewGormQueryEngine(db *gorm.DB) QueryEngine {
	return &gormQueryEngine{db: db}
}

func (e *gormQueryEngine) filtered(ctx context.Context, table string, q *Query) *gorm.DB {
	tx := e.db.WithContext(ctx).Table(table)
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Field}, Value: f.Value})
	}
	return tx
}

func (e *gormQueryEngine) Get(ctx context.Context, table string, q *Query, dest interface{}) (*Pagination, error) {
	if q.IsPaged() && (q.CurrentPageNum < 1 || q.PageSize < 1) {
		return nil, ErrInvalidPagination
	}

	pagination := &Pagination{CurrentPageNum: q.CurrentPageNum, PageSize: q.PageSize}

	if q.PageCount {
		var total int64
		if err := e.filtered(ctx, table, q).Count(&total).Error; err != nil {
			return nil, err
		}
		pagination.RecordCount = total
		if q.PageSize > 0 {
			pagination.PageCount = int(math.Ceil(float64(total) / float64(q.PageSize)))
		} else if total > 0 {
			pagination.PageCount = 1
		}
	}

	// No row can sit at an offset past math.MaxInt.
	if q.IsPaged() && q.CurrentPageNum-1 > math.MaxInt/q.PageSize {
		return pagination, nil
	}

	tx := e.filtered(ctx, table, q)
	for _, s := range q.Sorts {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: s.Field},
			Desc:   s.Direction == Descending,
		})
	}

	if q.IsPaged() {
		tx = tx.Offset((q.CurrentPageNum - 1) * q.PageSize).Limit(q.PageSize)
	}

	if err := tx.Find(dest).Error; err != nil {
		return nil, err
	}

	return pagination, nil
}

func (e *gormQueryEngine) First(ctx context.Context, table string, q *Query, dest interface{}) error {
	err := e.filtered(ctx, table, q).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (e *gormQueryEngine) Add(ctx context.Context, table string, record interface{}) error {
	return e.db.WithContext(ctx).Table(table).Create(record).Error
}

// AddAll inserts records in one transaction, skipping rows that collide
// with an existing unique key.
func (e *gormQueryEngine) AddAll(ctx context.Context, table string, records interface{}) (int64, error) {
	var added int64
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(table).Clauses(clause.OnConflict{DoNothing: true}).Create(records)
		added = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (e *gormQueryEngine) Remove(ctx context.Context, table string, q *Query, model interface{}) (int64, error) {
	if len(q.Filters) == 0 {
		return 0, ErrMissingFilter
	}

	result := e.filtered(ctx, table, q).Delete(model)
	return result.RowsAffected, result.Error
}
