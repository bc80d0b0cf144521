// Package timex provides a JSON-friendly time type used by models and DTOs
// Package timex 提供模型和 DTO 使用的 JSON 友好时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the wire format for timestamps
// Layout 是时间戳的序列化格式
const Layout = "2006-01-02T15:04:05.000Z07:00"

// Time wraps time.Time with a fixed JSON layout
// Time 包装 time.Time，使用固定的 JSON 格式
type Time time.Time

// Now returns the current time as a timex.Time
func Now() Time {
	return Time(time.Now())
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Time(t).Format(Layout))), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	parsed, err := time.Parse(`"`+Layout+`"`, string(data))
	if err != nil {
		return err
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer so gorm can persist the type
// Value 实现 driver.Valuer 以便 gorm 持久化该类型
func (t Time) Value() (driver.Value, error) {
	tt := time.Time(t)
	if tt.IsZero() {
		return nil, nil
	}
	return tt, nil
}

// Scan implements sql.Scanner
func (t *Time) Scan(v any) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case nil:
		*t = Time{}
		return nil
	case string:
		parsed, err := time.Parse("2006-01-02 15:04:05.999999999-07:00", value)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339Nano, value)
		}
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timex.Time", v)
	}
}

func (t Time) String() string {
	return time.Time(t).Format(Layout)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

// After reports whether t is after u
func (t Time) After(u Time) bool {
	return time.Time(t).After(time.Time(u))
}
