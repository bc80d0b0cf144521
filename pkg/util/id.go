package util

import (
	"strconv"
)

// ParseID parses a resource identifier from its string form
// ParseID 从字符串解析资源 ID
// Returns an error for anything that is not a positive base-10 integer.
// 任何非正十进制整数都会返回错误。
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
