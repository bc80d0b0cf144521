package dao

import (
	"context"
	"time"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"gorm.io/gorm"
)

type tagRepository struct {
	*Dao
}

func NewTagRepository(d *Dao) domain.TagRepository {
	return &tagRepository{Dao: d}
}

func (r *tagRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Tag, error) {
	var m model.Tag
	err := r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *tagRepository) CountByIDs(ctx context.Context, ids []int64, uid int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id IN ? AND uid = ?", ids, uid).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *tagRepository) ListByIDs(ctx context.Context, ids []int64, uid int64) ([]*domain.Tag, error) {
	if len(ids) == 0 {
		return []*domain.Tag{}, nil
	}
	var ms []*model.Tag
	err := r.db.WithContext(ctx).Where("id IN ? AND uid = ?", ids, uid).Find(&ms).Error
	if err != nil {
		return nil, err
	}
	res := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	m := r.domainToModel(tag)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(m), nil
}

func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	now := timex.Now()
	tx := r.db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ? AND uid = ?", tag.ID, uid).
		Updates(map[string]interface{}{
			"name":       tag.Name,
			"updated_at": now,
		})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, tag.ID, uid)
}

func (r *tagRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&model.Tag{}).Error
}

func (r *tagRepository) List(ctx context.Context, uid int64) ([]*domain.Tag, error) {
	var ms []*model.Tag
	err := r.db.WithContext(ctx).Where("uid = ?", uid).Order("name ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	res := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		res = append(res, r.modelToDomain(m))
	}
	return res, nil
}

func (r *tagRepository) modelToDomain(m *model.Tag) *domain.Tag {
	if m == nil {
		return nil
	}
	return &domain.Tag{
		ID:        m.ID,
		Name:      m.Name,
		UID:       m.UID,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *tagRepository) domainToModel(d *domain.Tag) *model.Tag {
	if d == nil {
		return nil
	}
	return &model.Tag{
		ID:        d.ID,
		Name:      d.Name,
		UID:       d.UID,
		CreatedAt: timex.Time(d.CreatedAt),
		UpdatedAt: timex.Time(d.UpdatedAt),
	}
}
