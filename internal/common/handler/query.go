package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dumeirei/hotel-reservation-backend/internal/query"
)

// 声明式查询的保留参数名，其余查询参数一律当作过滤条件
var reservedQueryParams = map[string]struct{}{
	"skip":           {},
	"take":           {},
	"search":         {},
	"order":          {},
	"order_by_field": {},
	"select":         {},
	"relations":      {},
	"token":          {},
}

// BindQuery 从查询参数构建声明式查询
// skip/take 控制分页，search 做模糊搜索，order_by_field+order 控制排序，
// select 和 relations 为逗号分隔列表，其余参数作为过滤条件（重复出现即 IN 查询）
func BindQuery(c *gin.Context) *query.Query {
	q := &query.Query{}

	if v := c.Query("skip"); v != "" {
		if skip, err := strconv.Atoi(v); err == nil && skip >= 0 {
			q.Skip = &skip
		}
	}
	if v := c.Query("take"); v != "" {
		if take, err := strconv.Atoi(v); err == nil && take > 0 {
			q.Take = &take
		}
	}

	q.Search = c.Query("search")
	q.Order = c.Query("order")
	q.OrderByField = c.Query("order_by_field")

	if v := c.Query("select"); v != "" {
		q.Select = splitList(v)
	}
	if v := c.Query("relations"); v != "" {
		q.Relations = splitList(v)
	}

	for key, values := range c.Request.URL.Query() {
		if _, reserved := reservedQueryParams[key]; reserved {
			continue
		}
		if len(values) == 0 {
			continue
		}
		if q.Filter == nil {
			q.Filter = make(map[string]interface{})
		}
		if len(values) == 1 {
			q.Filter[key] = values[0]
		} else {
			q.Filter[key] = values
		}
	}

	return q
}

// splitList 拆分逗号分隔的参数值
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
