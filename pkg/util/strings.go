package util

import (
	"strings"
)

// IsTrimmed reports whether s carries no leading or trailing whitespace
// IsTrimmed 判断 s 是否不含首尾空白字符
func IsTrimmed(s string) bool {
	return s == strings.TrimSpace(s)
}
