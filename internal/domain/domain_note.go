// Package domain 定义领域模型和接口
package domain

import "time"

// Note 笔记领域模型
// FolderID 为 0 表示未归档到任何文件夹。
type Note struct {
	ID        int64
	Title     string
	Content   string
	FolderID  int64
	UID       int64
	TagIDs    []int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFolder 判断笔记是否归档到文件夹
func (n *Note) HasFolder() bool {
	return n.FolderID != 0
}

// NoteFilter 笔记列表过滤条件
type NoteFilter struct {
	// SearchTerm 标题关键字，空串表示不过滤
	SearchTerm string
	// FolderID 按文件夹过滤，0 表示不过滤
	FolderID int64
	// TagID 按标签过滤，0 表示不过滤
	TagID int64
}
