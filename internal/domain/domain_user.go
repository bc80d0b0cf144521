package domain

import "time"

// User 用户领域模型
type User struct {
	UID       int64
	Fullname  string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFullname 判断用户是否填写了全名
func (u *User) HasFullname() bool {
	return u.Fullname != ""
}
