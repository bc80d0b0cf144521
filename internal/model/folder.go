package model

import "github.com/noteful-labs/noteful-service/pkg/timex"

const TableNameFolder = "folder"

// Folder mapped from table <folder>
// name is unique per owner, enforced by the composite index.
type Folder struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"column:name;not null;uniqueIndex:idx_folder_name_uid,priority:1" json:"name"`
	UID       int64      `gorm:"column:uid;not null;uniqueIndex:idx_folder_name_uid,priority:2;index:idx_folder_uid" json:"uid"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
}

// TableName Folder's table name
func (*Folder) TableName() string {
	return TableNameFolder
}
