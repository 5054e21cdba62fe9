// Package schedule 解析定时发布时间。
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout 是定时发布时间的固定格式
const Layout = "2006-01-02 15:04"

// ErrFormat 表示时间字符串不符合 Layout 格式
var ErrFormat = errors.New("时间格式错误")

// Immediate 是立即发布的哨兵值（零值时间）。
var Immediate = time.Time{}

// Parse 将 "YYYY-MM-DD HH:MM" 解析为本地时间的发布时刻。
// 空字符串表示立即发布，返回 Immediate。
func Parse(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return Immediate, nil
	}
	t, err := time.ParseInLocation(Layout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q 不符合 %s", ErrFormat, raw, Layout)
	}
	return t, nil
}

// IsImmediate 判断发布时刻是否为立即发布
func IsImmediate(t time.Time) bool {
	return t.IsZero()
}
