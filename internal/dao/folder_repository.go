package dao

import (
	"context"
	"errors"
	"time"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"gorm.io/gorm"
)

type folderRepository struct {
	*Dao
}

func NewFolderRepository(d *Dao) domain.FolderRepository {
	return &folderRepository{Dao: d}
}

func (r *folderRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Folder, error) {
	var m model.Folder
	err := r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *folderRepository) Exists(ctx context.Context, id, uid int64) (bool, error) {
	var m model.Folder
	err := r.db.WithContext(ctx).Select("id").Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *folderRepository) Create(ctx context.Context, folder *domain.Folder, uid int64) (*domain.Folder, error) {
	m := r.domainToModel(folder)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(m), nil
}

func (r *folderRepository) Update(ctx context.Context, folder *domain.Folder, uid int64) (*domain.Folder, error) {
	now := timex.Now()
	tx := r.db.WithContext(ctx).Model(&model.Folder{}).
		Where("id = ? AND uid = ?", folder.ID, uid).
		Updates(map[string]interface{}{
			"name":       folder.Name,
			"updated_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, folder.ID, uid)
}

func (r *folderRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&model.Folder{}).Error
}

func (r *folderRepository) List(ctx context.Context, uid int64) ([]*domain.Folder, error) {
	var ms []*model.Folder
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Order("name ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	res := make([]*domain.Folder, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *folderRepository) modelToDomain(m *model.Folder) *domain.Folder {
	if m == nil {
		return nil
	}
	return &domain.Folder{
		ID:        m.ID,
		Name:      m.Name,
		UID:       m.UID,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *folderRepository) domainToModel(d *domain.Folder) *model.Folder {
	if d == nil {
		return nil
	}
	return &model.Folder{
		ID:        d.ID,
		Name:      d.Name,
		UID:       d.UID,
		CreatedAt: timex.Time(d.CreatedAt),
		UpdatedAt: timex.Time(d.UpdatedAt),
	}
}
