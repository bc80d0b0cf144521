package dto

import "github.com/noteful-labs/noteful-service/pkg/timex"

// TagCreateRequest 创建标签请求参数
type TagCreateRequest struct {
	Name string `json:"name" form:"name"`
}

// TagUpdateRequest 更新标签请求参数
type TagUpdateRequest struct {
	Name string `json:"name" form:"name"`
}

// TagDTO 标签数据传输对象
type TagDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}
