package domain

import "time"

// Folder 文件夹领域模型
type Folder struct {
	ID        int64
	Name      string
	UID       int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
