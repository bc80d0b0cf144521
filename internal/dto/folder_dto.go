package dto

import "github.com/noteful-labs/noteful-service/pkg/timex"

// FolderCreateRequest 创建文件夹请求参数
type FolderCreateRequest struct {
	Name string `json:"name" form:"name"`
}

// FolderUpdateRequest 更新文件夹请求参数
type FolderUpdateRequest struct {
	Name string `json:"name" form:"name"`
}

// FolderDTO 文件夹数据传输对象
type FolderDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
