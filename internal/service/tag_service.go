package service

import (
	"context"
	"errors"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/dto"
	"github.com/noteful-labs/noteful-service/pkg/code"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"gorm.io/gorm"
)

// TagService 标签业务服务接口
type TagService interface {
	Get(ctx context.Context, uid, id int64) (*dto.TagDTO, error)
	List(ctx context.Context, uid int64) ([]*dto.TagDTO, error)
	Create(ctx context.Context, uid int64, params *dto.TagCreateRequest) (*dto.TagDTO, error)
	Update(ctx context.Context, uid, id int64, params *dto.TagUpdateRequest) (*dto.TagDTO, error)
	Delete(ctx context.Context, uid, id int64) error
}

type tagService struct {
	tagRepo domain.TagRepository
	cleanup CleanupService
}

func NewTagService(tagRepo domain.TagRepository, cleanup CleanupService) TagService {
	return &tagService{
		tagRepo: tagRepo,
		cleanup: cleanup,
	}
}

func (s *tagService) Get(ctx context.Context, uid, id int64) (*dto.TagDTO, error) {
	tag, err := s.tagRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

func (s *tagService) List(ctx context.Context, uid int64) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.List(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	res := make([]*dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		res = append(res, s.domainToDTO(t))
	}
	return res, nil
}

func (s *tagService) Create(ctx context.Context, uid int64, params *dto.TagCreateRequest) (*dto.TagDTO, error) {
	if params.Name == "" {
		return nil, code.ErrorMissingName
	}

	tag, err := s.tagRepo.Create(ctx, &domain.Tag{Name: params.Name}, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorTagNameExists
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

func (s *tagService) Update(ctx context.Context, uid, id int64, params *dto.TagUpdateRequest) (*dto.TagDTO, error) {
	if params.Name == "" {
		return nil, code.ErrorMissingName
	}

	tag, err := s.tagRepo.Update(ctx, &domain.Tag{ID: id, Name: params.Name}, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorTagNameExists
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

// Delete 删除标签并同步清理笔记上的关联，幂等
func (s *tagService) Delete(ctx context.Context, uid, id int64) error {
	if err := s.tagRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if err := s.cleanup.DetachTag(ctx, uid, id); err != nil {
		return err
	}
	return nil
}

func (s *tagService) domainToDTO(t *domain.Tag) *dto.TagDTO {
	if t == nil {
		return nil
	}
	return &dto.TagDTO{
		ID:        t.ID,
		Name:      t.Name,
		CreatedAt: timex.Time(t.CreatedAt),
		UpdatedAt: timex.Time(t.UpdatedAt),
	}
}
