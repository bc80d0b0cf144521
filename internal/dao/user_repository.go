package dao

import (
	"context"
	"time"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"
)

type userRepository struct {
	*Dao
}

func NewUserRepository(d *Dao) domain.UserRepository {
	return &userRepository{Dao: d}
}

func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("id = ?", uid).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.modelToDomain(&m), nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.domainToModel(user)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.modelToDomain(m), nil
}

func (r *userRepository) modelToDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.ID,
		Fullname:  m.Fullname,
		Username:  m.Username,
		Password:  m.Password,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *userRepository) domainToModel(d *domain.User) *model.User {
	if d == nil {
		return nil
	}
	return &model.User{
		ID:        d.UID,
		Fullname:  d.Fullname,
		Username:  d.Username,
		Password:  d.Password,
		CreatedAt: timex.Time(d.CreatedAt),
		UpdatedAt: timex.Time(d.UpdatedAt),
	}
}
