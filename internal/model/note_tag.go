package model

import "github.com/noteful-labs/noteful-service/pkg/timex"

const TableNameNoteTag = "note_tag"

// NoteTag mapped from table <note_tag>
// Join rows carry the owner uid so cascade deletes stay owner-scoped.
type NoteTag struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	NoteID    int64      `gorm:"column:note_id;not null;uniqueIndex:idx_note_tag,priority:1" json:"noteId"`
	TagID     int64      `gorm:"column:tag_id;not null;uniqueIndex:idx_note_tag,priority:2;index:idx_note_tag_tag" json:"tagId"`
	UID       int64      `gorm:"column:uid;not null;index:idx_note_tag_uid" json:"uid"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;autoCreateTime:false" json:"createdAt"`
}

// TableName NoteTag's table name
func (*NoteTag) TableName() string {
	return TableNameNoteTag
}
