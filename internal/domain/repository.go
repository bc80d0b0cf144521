package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)
}

// FolderRepository 文件夹仓储接口
type FolderRepository interface {
	// GetByID 根据ID获取文件夹
	GetByID(ctx context.Context, id, uid int64) (*Folder, error)

	// Exists 判断文件夹是否存在
	Exists(ctx context.Context, id, uid int64) (bool, error)

	// Create 创建文件夹
	Create(ctx context.Context, folder *Folder, uid int64) (*Folder, error)

	// Update 更新文件夹名称
	Update(ctx context.Context, folder *Folder, uid int64) (*Folder, error)

	// Delete 删除文件夹
	Delete(ctx context.Context, id, uid int64) error

	// List 获取文件夹列表，按名称升序
	List(ctx context.Context, uid int64) ([]*Folder, error)
}

// TagRepository 标签仓储接口
type TagRepository interface {
	// GetByID 根据ID获取标签
	GetByID(ctx context.Context, id, uid int64) (*Tag, error)

	// CountByIDs 统计属于指定用户的标签数量
	CountByIDs(ctx context.Context, ids []int64, uid int64) (int64, error)

	// ListByIDs 根据ID集合获取标签
	ListByIDs(ctx context.Context, ids []int64, uid int64) ([]*Tag, error)

	// Create 创建标签
	Create(ctx context.Context, tag *Tag, uid int64) (*Tag, error)

	// Update 更新标签名称
	Update(ctx context.Context, tag *Tag, uid int64) (*Tag, error)

	// Delete 删除标签
	Delete(ctx context.Context, id, uid int64) error

	// List 获取标签列表，按名称升序
	List(ctx context.Context, uid int64) ([]*Tag, error)
}

// NoteRepository 笔记仓储接口
type NoteRepository interface {
	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id, uid int64) (*Note, error)

	// Create 创建笔记
	Create(ctx context.Context, note *Note, uid int64) (*Note, error)

	// Update 更新笔记
	Update(ctx context.Context, note *Note, uid int64) (*Note, error)

	// Delete 物理删除笔记
	Delete(ctx context.Context, id, uid int64) error

	// List 获取笔记列表，按更新时间降序
	List(ctx context.Context, uid int64, filter NoteFilter) ([]*Note, error)

	// ClearFolderRefs 清除指向指定文件夹的引用
	ClearFolderRefs(ctx context.Context, folderID, uid int64) (int64, error)

	// PruneOrphanFolderRefs 清除全库指向不存在文件夹的引用
	PruneOrphanFolderRefs(ctx context.Context) (int64, error)
}

// NoteTagRepository 笔记标签关联仓储接口
type NoteTagRepository interface {
	// ListTagIDsByNoteID 获取笔记的标签ID列表
	ListTagIDsByNoteID(ctx context.Context, noteID, uid int64) ([]int64, error)

	// ListByNoteIDs 批量获取多条笔记的标签关联
	ListByNoteIDs(ctx context.Context, noteIDs []int64, uid int64) (map[int64][]int64, error)

	// ReplaceForNote 以给定集合整体替换笔记的标签关联
	ReplaceForNote(ctx context.Context, noteID int64, tagIDs []int64, uid int64) error

	// DeleteByNoteID 删除笔记的全部标签关联
	DeleteByNoteID(ctx context.Context, noteID, uid int64) (int64, error)

	// DeleteByTagID 删除指向指定标签的全部关联
	DeleteByTagID(ctx context.Context, tagID, uid int64) (int64, error)

	// PruneOrphanTagRefs 清除全库指向不存在标签的关联
	PruneOrphanTagRefs(ctx context.Context) (int64, error)

	// PruneOrphanNoteRefs 清除全库指向不存在笔记的关联
	PruneOrphanNoteRefs(ctx context.Context) (int64, error)
}
