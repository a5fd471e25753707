// Package query 提供声明式查询到 GORM 查询的转换
// 各资源通过 Spec 声明可搜索列、可过滤字段、可排序字段和关联白名单，
// Handler 层只需要把请求参数绑定成 Query，仓储层统一翻译执行。
package query

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// MaxTake 单次查询返回条数上限
const MaxTake = 1000

// 排序方向
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Sort 单个排序条件
type Sort struct {
	Field     string `json:"field" form:"field"`
	Direction string `json:"direction" form:"direction"`
}

// Query 声明式查询参数
type Query struct {
	Skip         *int                   `json:"skip,omitempty" form:"skip"`
	Take         *int                   `json:"take,omitempty" form:"take"`
	Search       string                 `json:"search,omitempty" form:"search"`
	Order        string                 `json:"order,omitempty" form:"order"`
	OrderByField string                 `json:"order_by_field,omitempty" form:"order_by_field"`
	OrderBy      []Sort                 `json:"order_by,omitempty"`
	Select       []string               `json:"select,omitempty" form:"select"`
	Relations    []string               `json:"relations,omitempty" form:"relations"`
	Filter       map[string]interface{} `json:"filter,omitempty"`
}

// Spec 资源查询规格
type Spec struct {
	// DefaultSort 未指定排序时使用，如 "created_at DESC"
	DefaultSort string
	// Searchable search 参数做不区分大小写子串匹配的列
	Searchable []string
	// Filterable 过滤字段名到列名的白名单；日期列支持 _start/_end 后缀
	Filterable map[string]string
	// Sortable 排序字段名到列名的白名单
	Sortable map[string]string
	// Relations 关联名到 GORM Preload 路径的白名单，
	// 支持一级点号嵌套（如 "room.room_type" -> "Room.RoomType"）
	Relations map[string]string
}

// 日期范围过滤字段后缀，区间为半开 [start, end)
const (
	suffixStart = "_start"
	suffixEnd   = "_end"
)

// Apply 把 Query 翻译到 GORM 查询上（不含分页）
func (s *Spec) Apply(db *gorm.DB, q *Query) *gorm.DB {
	if q == nil {
		if s.DefaultSort != "" {
			db = db.Order(s.DefaultSort)
		}
		return db
	}

	db = s.applyFilter(db, q.Filter)
	db = s.applySearch(db, q.Search)
	db = s.applyOrder(db, q)

	if len(q.Select) > 0 {
		cols := s.allowedColumns(q.Select)
		if len(cols) > 0 {
			db = db.Select(cols)
		}
	}

	for _, path := range s.PreloadPaths(q.Relations) {
		db = db.Preload(path)
	}

	return db
}

// ApplyPage 应用分页参数，take 最大 1000
func ApplyPage(db *gorm.DB, q *Query) *gorm.DB {
	if q == nil {
		return db
	}
	if q.Skip != nil && *q.Skip > 0 {
		db = db.Offset(*q.Skip)
	}
	if q.Take != nil {
		take := *q.Take
		if take > MaxTake {
			take = MaxTake
		}
		if take > 0 {
			db = db.Limit(take)
		}
	}
	return db
}

// applyFilter 应用等值/IN/日期范围过滤，白名单之外的字段忽略
func (s *Spec) applyFilter(db *gorm.DB, filter map[string]interface{}) *gorm.DB {
	if len(filter) == 0 {
		return db
	}

	// map 迭代无序，固定字段顺序保证生成的 SQL 稳定
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := filter[key]
		if value == nil {
			continue
		}

		if strings.HasSuffix(key, suffixStart) {
			if col, ok := s.Filterable[strings.TrimSuffix(key, suffixStart)]; ok {
				db = db.Where(col+" >= ?", value)
			}
			continue
		}
		if strings.HasSuffix(key, suffixEnd) {
			if col, ok := s.Filterable[strings.TrimSuffix(key, suffixEnd)]; ok {
				db = db.Where(col+" < ?", value)
			}
			continue
		}

		col, ok := s.Filterable[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case []interface{}:
			if len(v) > 0 {
				db = db.Where(col+" IN ?", v)
			}
		case []string:
			if len(v) > 0 {
				db = db.Where(col+" IN ?", v)
			}
		case []int64:
			if len(v) > 0 {
				db = db.Where(col+" IN ?", v)
			}
		default:
			db = db.Where(col+" = ?", v)
		}
	}
	return db
}

// applySearch 在可搜索列上做不区分大小写的子串匹配，OR 连接
func (s *Spec) applySearch(db *gorm.DB, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(s.Searchable) == 0 {
		return db
	}

	pattern := "%" + strings.ToLower(search) + "%"
	var conds []string
	var args []interface{}
	for _, col := range s.Searchable {
		conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
		args = append(args, pattern)
	}
	return db.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// applyOrder 应用排序：多字段 OrderBy 优先，其次 OrderByField+Order，
// 都未指定时用 DefaultSort
func (s *Spec) applyOrder(db *gorm.DB, q *Query) *gorm.DB {
	if len(q.OrderBy) > 0 {
		applied := false
		for _, o := range q.OrderBy {
			col, ok := s.Sortable[o.Field]
			if !ok {
				continue
			}
			db = db.Order(col + " " + normalizeDirection(o.Direction))
			applied = true
		}
		if applied {
			return db
		}
	}

	if q.OrderByField != "" {
		if col, ok := s.Sortable[q.OrderByField]; ok {
			return db.Order(col + " " + normalizeDirection(q.Order))
		}
	}

	if s.DefaultSort != "" {
		return db.Order(s.DefaultSort)
	}
	return db
}

// allowedColumns 过滤 select 列，只保留过滤/排序白名单内的列
func (s *Spec) allowedColumns(selects []string) []string {
	var cols []string
	for _, field := range selects {
		if col, ok := s.Filterable[field]; ok {
			cols = append(cols, col)
			continue
		}
		if col, ok := s.Sortable[field]; ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// PreloadPaths 把关联名翻译为去重后的 Preload 路径，未知关联静默忽略
func (s *Spec) PreloadPaths(relations []string) []string {
	if len(relations) == 0 || len(s.Relations) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var paths []string
	for _, rel := range relations {
		path, ok := s.Relations[rel]
		if !ok {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths
}

// normalizeDirection 规范化排序方向，非法值按升序处理
func normalizeDirection(direction string) string {
	if strings.EqualFold(direction, OrderDesc) {
		return OrderDesc
	}
	return OrderAsc
}

// Merge 合并基础查询与附加条件，附加条件中的过滤覆盖同名字段，关联去重
func Merge(base, extra *Query) *Query {
	if base == nil {
		base = &Query{}
	}
	merged := *base
	if extra == nil {
		return &merged
	}

	if len(base.Filter) > 0 || len(extra.Filter) > 0 {
		filter := make(map[string]interface{}, len(base.Filter)+len(extra.Filter))
		for k, v := range base.Filter {
			filter[k] = v
		}
		for k, v := range extra.Filter {
			filter[k] = v
		}
		merged.Filter = filter
	}

	if len(extra.Relations) > 0 {
		seen := make(map[string]struct{}, len(merged.Relations))
		relations := make([]string, 0, len(merged.Relations)+len(extra.Relations))
		for _, rel := range merged.Relations {
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			relations = append(relations, rel)
		}
		for _, rel := range extra.Relations {
			if _, dup := seen[rel]; dup {
				continue
			}
			seen[rel] = struct{}{}
			relations = append(relations, rel)
		}
		merged.Relations = relations
	}

	if extra.Search != "" {
		merged.Search = extra.Search
	}
	if len(extra.OrderBy) > 0 {
		merged.OrderBy = extra.OrderBy
	}
	if extra.OrderByField != "" {
		merged.OrderByField = extra.OrderByField
		merged.Order = extra.Order
	}
	if extra.Skip != nil {
		merged.Skip = extra.Skip
	}
	if extra.Take != nil {
		merged.Take = extra.Take
	}
	if len(extra.Select) > 0 {
		merged.Select = extra.Select
	}

	return &merged
}

// FindMany 按查询规格返回多条记录
func FindMany[T any](ctx context.Context, db *gorm.DB, spec *Spec, q *Query) ([]T, error) {
	var model T
	var list []T
	tx := spec.Apply(db.WithContext(ctx).Model(&model), q)
	tx = ApplyPage(tx, q)
	if err := tx.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindOne 按查询规格返回首条匹配记录；未匹配返回 gorm.ErrRecordNotFound
func FindOne[T any](ctx context.Context, db *gorm.DB, spec *Spec, q *Query) (*T, error) {
	var model T
	tx := spec.Apply(db.WithContext(ctx).Model(&model), q)
	var result T
	if err := tx.First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Count 按过滤和搜索条件统计总数，忽略分页与排序
func Count[T any](ctx context.Context, db *gorm.DB, spec *Spec, q *Query) (int64, error) {
	var model T
	tx := db.WithContext(ctx).Model(&model)
	if q != nil {
		tx = spec.applyFilter(tx, q.Filter)
		tx = spec.applySearch(tx, q.Search)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
