package store

import (
	"fmt"
	"strings"
)

// Filter 以有序的條件與參數列表組裝 SQL WHERE 子句
// 只加入實際提供的篩選條件，所有值都走參數化查詢
type Filter struct {
	conds []string
	args  []any
}

// Eq 加入一個等值條件，column 必須是程式內寫死的欄位名稱
func (f *Filter) Eq(column string, value any) {
	f.args = append(f.args, value)
	f.conds = append(f.conds, fmt.Sprintf("%s = $%d", column, len(f.args)))
}

// Where 回傳 WHERE 子句，沒有任何條件時回傳空字串
func (f *Filter) Where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(f.conds, " AND ")
}

// Args 回傳條件參數的複本，順序與佔位符編號一致
func (f *Filter) Args() []any {
	return append([]any(nil), f.args...)
}

// Placeholder 回傳下一個可用的佔位符編號，供 LIMIT/OFFSET 接續使用
func (f *Filter) Placeholder() int {
	return len(f.args) + 1
}
