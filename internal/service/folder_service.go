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

// FolderService 文件夹业务服务接口
type FolderService interface {
	Get(ctx context.Context, uid, id int64) (*dto.FolderDTO, error)
	List(ctx context.Context, uid int64) ([]*dto.FolderDTO, error)
	Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error)
	Update(ctx context.Context, uid, id int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error)
	Delete(ctx context.Context, uid, id int64) error
}

type folderService struct {
	folderRepo domain.FolderRepository
	cleanup    CleanupService
}

func NewFolderService(folderRepo domain.FolderRepository, cleanup CleanupService) FolderService {
	return &folderService{
		folderRepo: folderRepo,
		cleanup:    cleanup,
	}
}

func (s *folderService) Get(ctx context.Context, uid, id int64) (*dto.FolderDTO, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

func (s *folderService) List(ctx context.Context, uid int64) ([]*dto.FolderDTO, error) {
	folders, err := s.folderRepo.List(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	res := make([]*dto.FolderDTO, 0, len(folders))
	for _, f := range folders {
		res = append(res, s.domainToDTO(f))
	}
	return res, nil
}

func (s *folderService) Create(ctx context.Context, uid int64, params *dto.FolderCreateRequest) (*dto.FolderDTO, error) {
	if params.Name == "" {
		return nil, code.ErrorMissingName
	}

	folder, err := s.folderRepo.Create(ctx, &domain.Folder{Name: params.Name}, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorFolderNameExists
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

func (s *folderService) Update(ctx context.Context, uid, id int64, params *dto.FolderUpdateRequest) (*dto.FolderDTO, error) {
	if params.Name == "" {
		return nil, code.ErrorMissingName
	}

	folder, err := s.folderRepo.Update(ctx, &domain.Folder{ID: id, Name: params.Name}, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, code.ErrorFolderNameExists
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(folder), nil
}

// Delete 删除文件夹并同步清理笔记里的引用，幂等
func (s *folderService) Delete(ctx context.Context, uid, id int64) error {
	if err := s.folderRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if err := s.cleanup.DetachFolder(ctx, uid, id); err != nil {
		return err
	}
	return nil
}

func (s *folderService) domainToDTO(f *domain.Folder) *dto.FolderDTO {
	if f == nil {
		return nil
	}
	return &dto.FolderDTO{
		ID:        f.ID,
		Name:      f.Name,
		CreatedAt: timex.Time(f.CreatedAt),
		UpdatedAt: timex.Time(f.UpdatedAt),
	}
}
