package model

import "github.com/noteful-labs/noteful-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Fullname  string     `gorm:"column:fullname" json:"fullname"`
	Username  string     `gorm:"column:username;not null;uniqueIndex:idx_username" json:"username"`
	Password  string     `gorm:"column:password;not null" json:"-"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
