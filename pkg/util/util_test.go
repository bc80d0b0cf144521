package util

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("正整数的十进制文本可以无损解析", prop.ForAll(
		func(id int64) bool {
			parsed, err := ParseID(strconv.FormatInt(id, 10))
			return err == nil && parsed == id
		},
		gen.Int64Range(1, 1<<62),
	))

	properties.Property("零和负数一律拒绝", prop.ForAll(
		func(id int64) bool {
			_, err := ParseID(strconv.FormatInt(id, 10))
			return err != nil
		},
		gen.Int64Range(-1<<62, 0),
	))

	properties.Property("携带非数字字符的输入一律拒绝", prop.ForAll(
		func(id int64, junk string) bool {
			_, err := ParseID(strconv.FormatInt(id, 10) + junk)
			return err != nil
		},
		gen.Int64Range(1, 1<<32),
		gen.RegexMatch(`[a-zA-Z ._\-]+`),
	))

	properties.TestingRun(t)
}

func TestParseIDFixed(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-7", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
		{" 3", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseID(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestIsTrimmed(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("TrimSpace 之后必然通过检查", prop.ForAll(
		func(s string) bool {
			return IsTrimmed(strings.TrimSpace(s))
		},
		gen.AnyString(),
	))

	properties.Property("首尾补空格后必然不通过", prop.ForAll(
		func(s string) bool {
			trimmed := strings.TrimSpace(s)
			if trimmed == "" {
				return true
			}
			return !IsTrimmed(" "+trimmed) && !IsTrimmed(trimmed+" ")
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"24h", 24 * time.Hour},
		{"30m", 30 * time.Minute},
		{"90", 90 * time.Second},
		{" 1d ", 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.input)
		assert.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := ParseDuration("oneday")
	assert.Error(t, err)
}

func TestGetRandomString(t *testing.T) {
	s := GetRandomString(32)
	assert.Len(t, s, 32)
	assert.NotEqual(t, s, GetRandomString(32))
}
