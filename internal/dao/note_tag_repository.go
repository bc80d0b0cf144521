package dao

import (
	"context"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"gorm.io/gorm"
)

type noteTagRepository struct {
	*Dao
}

func NewNoteTagRepository(d *Dao) domain.NoteTagRepository {
	return &noteTagRepository{Dao: d}
}

func (r *noteTagRepository) ListTagIDsByNoteID(ctx context.Context, noteID, uid int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&model.NoteTag{}).
		Where("note_id = ? AND uid = ?", noteID, uid).
		Order("id ASC").
		Pluck("tag_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *noteTagRepository) ListByNoteIDs(ctx context.Context, noteIDs []int64, uid int64) (map[int64][]int64, error) {
	res := make(map[int64][]int64, len(noteIDs))
	if len(noteIDs) == 0 {
		return res, nil
	}
	var ms []*model.NoteTag
	err := r.db.WithContext(ctx).
		Where("note_id IN ? AND uid = ?", noteIDs, uid).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	for _, m := range ms {
		res[m.NoteID] = append(res[m.NoteID], m.TagID)
	}
	return res, nil
}

// ReplaceForNote 在事务里整体替换笔记的标签关联
func (r *noteTagRepository) ReplaceForNote(ctx context.Context, noteID int64, tagIDs []int64, uid int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ? AND uid = ?", noteID, uid).Delete(&model.NoteTag{}).Error; err != nil {
			return err
		}
		if len(tagIDs) == 0 {
			return nil
		}
		rows := make([]*model.NoteTag, 0, len(tagIDs))
		seen := make(map[int64]struct{}, len(tagIDs))
		for _, tagID := range tagIDs {
			if _, ok := seen[tagID]; ok {
				continue
			}
			seen[tagID] = struct{}{}
			rows = append(rows, &model.NoteTag{
				NoteID:    noteID,
				TagID:     tagID,
				UID:       uid,
				CreatedAt: timex.Now(),
			})
		}
		return tx.Create(rows).Error
	})
}

func (r *noteTagRepository) DeleteByNoteID(ctx context.Context, noteID, uid int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("note_id = ? AND uid = ?", noteID, uid).Delete(&model.NoteTag{})
	return tx.RowsAffected, tx.Error
}

// DeleteByTagID 删除指向该标签的全部关联，受影响笔记的 updated_at 同步更新
func (r *noteTagRepository) DeleteByTagID(ctx context.Context, tagID, uid int64) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var noteIDs []int64
		if err := tx.Model(&model.NoteTag{}).
			Where("tag_id = ? AND uid = ?", tagID, uid).
			Pluck("note_id", &noteIDs).Error; err != nil {
			return err
		}
		if len(noteIDs) == 0 {
			return nil
		}
		res := tx.Where("tag_id = ? AND uid = ?", tagID, uid).Delete(&model.NoteTag{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return tx.Model(&model.Note{}).
			Where("id IN ? AND uid = ?", noteIDs, uid).
			Update("updated_at", timex.Now()).Error
	})
	return affected, err
}

// PruneOrphanTagRefs 兜底清理：指向已删除标签的关联
func (r *noteTagRepository) PruneOrphanTagRefs(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("tag_id NOT IN (?)", r.db.Model(&model.Tag{}).Select("id")).
		Delete(&model.NoteTag{})
	return tx.RowsAffected, tx.Error
}

// PruneOrphanNoteRefs 兜底清理：指向已删除笔记的关联
func (r *noteTagRepository) PruneOrphanNoteRefs(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("note_id NOT IN (?)", r.db.Model(&model.Note{}).Select("id")).
		Delete(&model.NoteTag{})
	return tx.RowsAffected, tx.Error
}
