package model

import "github.com/noteful-labs/noteful-service/pkg/timex"

const TableNameNote = "note"

// Note mapped from table <note>
// folder_id 0 means the note is not filed in any folder.
type Note struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"column:title;not null;index:idx_note_title" json:"title"`
	Content   string     `gorm:"column:content" json:"content"`
	FolderID  int64      `gorm:"column:folder_id;not null;default:0;index:idx_note_folder" json:"folderId"`
	UID       int64      `gorm:"column:uid;not null;index:idx_note_uid" json:"uid"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;autoUpdateTime:false" json:"updatedAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
