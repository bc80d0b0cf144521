package code

import (
	"reflect"
)

// lang 多语言错误消息
// Messages returned to clients come from en; zh_cn is used when the
// service is switched to Chinese via SetLang.
type lang struct {
	en    string
	zh_cn string
}

// langType 当前语言
var langType = "en"

// SetLang 设置全局语言
func SetLang(l string) {
	langType = l
}

// GetMessage 按当前语言取消息，取不到时回退到 en
func (l lang) GetMessage() string {
	v := reflect.ValueOf(l)
	f := v.FieldByName(langType)
	if f.IsValid() && f.String() != "" {
		return f.String()
	}
	return l.en
}
