package repository

import (
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"
)

// listSeparator 多值字段（类型、职业）拼接时使用的分隔符，假定名称中不会出现
const listSeparator = ","

// groupConcat 返回当前方言下 “去重 + 排序 + 拼接” 的聚合表达式
func groupConcat(db *gorm.DB, expr string) string {
	switch db.Dialector.Name() {
	case "postgres":
		return fmt.Sprintf("STRING_AGG(DISTINCT %s, '%s' ORDER BY %s)", expr, listSeparator, expr)
	case "sqlite":
		// sqlite 的 DISTINCT 聚合只接受一个参数，默认分隔符即为 ','，排序在 splitList 中完成
		return fmt.Sprintf("GROUP_CONCAT(DISTINCT %s)", expr)
	default:
		return fmt.Sprintf("GROUP_CONCAT(DISTINCT %s ORDER BY %s SEPARATOR '%s')", expr, expr, listSeparator)
	}
}

// splitList 把聚合结果拆回有序、去重的列表；NULL 或空串返回空列表
func splitList(s *string) []string {
	if s == nil || *s == "" {
		return []string{}
	}
	items := strings.Split(*s, listSeparator)
	slices.Sort(items)
	return slices.Compact(items)
}
