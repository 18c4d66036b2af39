package repositories

import "context"

type FilterOperator string

const (
	Equal FilterOperator = "="
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// PropertyFilter compares a named column against a value.
type PropertyFilter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

func NewPropertyFilter(field string, value interface{}) PropertyFilter {
	return PropertyFilter{Field: field, Operator: Equal, Value: value}
}

type Sort struct {
	Field     string
	Direction SortDirection
}

// Query describes a filtered, sorted and optionally paginated fetch.
// A zero PageSize means the query is unpaged.
type Query struct {
	Filters        []PropertyFilter
	Sorts          []Sort
	CurrentPageNum int
	PageSize       int
	PageCount      bool
	paged          bool
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) SetFilter(filter PropertyFilter) *Query {
	q.Filters = append(q.Filters, filter)
	return q
}

func (q *Query) AddSort(field string, direction SortDirection) *Query {
	q.Sorts = append(q.Sorts, Sort{Field: field, Direction: direction})
	return q
}

func (q *Query) SetCurrentPageNum(n int) *Query {
	q.CurrentPageNum = n
	q.paged = true
	return q
}

func (q *Query) SetPageSize(n int) *Query {
	q.PageSize = n
	q.paged = true
	return q
}

// SetPageCount asks the engine to compute the total page count.
func (q *Query) SetPageCount(enabled bool) *Query {
	q.PageCount = enabled
	return q
}

func (q *Query) IsPaged() bool {
	return q.paged
}

// Pagination is what the engine reports back about a paged fetch.
type Pagination struct {
	CurrentPageNum int
	PageSize       int
	PageCount      int
	RecordCount    int64
}

// QueryEngine executes queries against a storage backend.
type QueryEngine interface {
	Get(ctx context.Context, table string, q *Query, dest interface{}) (*Pagination, error)
	First(ctx context.Context, table string, q *Query, dest interface{}) error
	Add(ctx context.Context, table string, record interface{}) error
	AddAll(ctx context.Context, table string, records interface{}) (int64, error)
	Remove(ctx context.Context, table string, q *Query, model interface{}) (int64, error)
}
