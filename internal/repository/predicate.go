package repository

import "gorm.io/gorm"

// predicate 可选过滤条件：一段 SQL 条件加上它的绑定参数
type predicate struct {
	clause string
	args   []any
}

// applyPredicates 依次把条件折叠进查询（AND 连接），空列表即不过滤
func applyPredicates(q *gorm.DB, preds []predicate) *gorm.DB {
	for _, p := range preds {
		q = q.Where(p.clause, p.args...)
	}
	return q
}
