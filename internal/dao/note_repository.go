package dao

import (
	"context"
	"strings"
	"time"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"gorm.io/gorm"
)

type noteRepository struct {
	*Dao
}

func NewNoteRepository(d *Dao) domain.NoteRepository {
	return &noteRepository{Dao: d}
}

func (r *noteRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	var m model.Note
	err := r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	m := r.domainToModel(note)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(m), nil
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	now := timex.Now()
	tx := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND uid = ?", note.ID, uid).
		Updates(map[string]interface{}{
			"title":      note.Title,
			"content":    note.Content,
			"folder_id":  note.FolderID,
			"updated_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, note.ID, uid)
}

func (r *noteRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&model.Note{}).Error
}

func (r *noteRepository) List(ctx context.Context, uid int64, filter domain.NoteFilter) ([]*domain.Note, error) {
	var ms []*model.Note
	tx := r.db.WithContext(ctx).Model(&model.Note{}).Where("note.uid = ?", uid)

	if filter.SearchTerm != "" {
		// 大小写不敏感，标题和内容任一命中即可
		pattern := "%" + strings.ToLower(filter.SearchTerm) + "%"
		tx = tx.Where("(LOWER(note.title) LIKE ? OR LOWER(note.content) LIKE ?)", pattern, pattern)
	}
	if filter.FolderID != 0 {
		tx = tx.Where("note.folder_id = ?", filter.FolderID)
	}
	if filter.TagID != 0 {
		tx = tx.Joins("JOIN note_tag ON note_tag.note_id = note.id").
			Where("note_tag.tag_id = ?", filter.TagID)
	}

	err := tx.Order("note.updated_at DESC").Order("note.id DESC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	res := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *noteRepository) ClearFolderRefs(ctx context.Context, folderID, uid int64) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("folder_id = ? AND uid = ?", folderID, uid).
		Updates(map[string]interface{}{
			"folder_id":  0,
			"updated_at": timex.Now(),
		})
	return tx.RowsAffected, tx.Error
}

// PruneOrphanFolderRefs 兜底清理：引用已不存在文件夹的笔记归零
func (r *noteRepository) PruneOrphanFolderRefs(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Note{}).
		Where("folder_id <> 0 AND folder_id NOT IN (?)",
			r.db.Model(&model.Folder{}).Select("id")).
		Updates(map[string]interface{}{
			"folder_id":  0,
			"updated_at": timex.Now(),
		})
	return tx.RowsAffected, tx.Error
}

func (r *noteRepository) modelToDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		FolderID:  m.FolderID,
		UID:       m.UID,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *noteRepository) domainToModel(d *domain.Note) *model.Note {
	if d == nil {
		return nil
	}
	return &model.Note{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		FolderID:  d.FolderID,
		UID:       d.UID,
		CreatedAt: timex.Time(d.CreatedAt),
		UpdatedAt: timex.Time(d.UpdatedAt),
	}
}
