package model

import "github.com/noteful-labs/noteful-service/pkg/timex"

const TableNameTag = "tag"

// Tag mapped from table <tag>
// name is unique per owner, enforced by the composite index.
type Tag struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"column:name;not null;uniqueIndex:idx_tag_name_uid,priority:1" json:"name"`
	UID       int64      `gorm:"column:uid;not null;uniqueIndex:idx_tag_name_uid,priority:2;index:idx_tag_uid" json:"uid"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
}

// TableName Tag's table name
func (*Tag) TableName() string {
	return TableNameTag
}
