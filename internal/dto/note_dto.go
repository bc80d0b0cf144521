package dto

import "github.com/noteful-labs/noteful-service/pkg/timex"

// NoteCreateRequest 创建笔记请求参数
// Tags 用 any 承接，便于区分"缺失"、"非数组"和"包含非法 id"。
type NoteCreateRequest struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content"`
	FolderID int64  `json:"folderId" form:"folderId"`
	Tags     any    `json:"tags"`
}

// NoteUpdateRequest 更新笔记请求参数
// 指针字段为 nil 表示请求里没带该字段，保持原值不变；
// FolderID 传 0 表示移出文件夹。
type NoteUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	FolderID *int64  `json:"folderId"`
	Tags     any     `json:"tags"`
}

// NoteListRequest 笔记列表查询参数
type NoteListRequest struct {
	SearchTerm string `json:"searchTerm" form:"searchTerm"`
	FolderID   string `json:"folderId" form:"folderId"`
	TagID      string `json:"tagId" form:"tagId"`
}

// NoteDTO 笔记数据传输对象
// FolderID 为空时序列化为 null，表示未归档。
type NoteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	FolderID  *int64     `json:"folderId"`
	Tags      []*TagDTO  `json:"tags"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
