package service

import (
	"context"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/pkg/code"
	"github.com/noteful-labs/noteful-service/pkg/logger"

	"go.uber.org/zap"
)

// CleanupService 引用完整性清理服务
// 文件夹 / 标签删除后负责把笔记上的悬空引用摘掉，
// SweepOrphans 作为后台兜底对全库做同样的事。
type CleanupService interface {
	// DetachFolder 把引用该文件夹的笔记归零
	DetachFolder(ctx context.Context, uid, folderID int64) error

	// DetachTag 删除指向该标签的全部笔记关联
	DetachTag(ctx context.Context, uid, tagID int64) error

	// SweepOrphans 全库清理悬空引用，返回处理的行数
	SweepOrphans(ctx context.Context) (int64, error)
}

type cleanupService struct {
	noteRepo    domain.NoteRepository
	noteTagRepo domain.NoteTagRepository
	logger      *zap.Logger
}

func NewCleanupService(noteRepo domain.NoteRepository, noteTagRepo domain.NoteTagRepository, lg *zap.Logger) CleanupService {
	return &cleanupService{
		noteRepo:    noteRepo,
		noteTagRepo: noteTagRepo,
		logger:      lg,
	}
}

func (s *cleanupService) DetachFolder(ctx context.Context, uid, folderID int64) error {
	affected, err := s.noteRepo.ClearFolderRefs(ctx, folderID, uid)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if affected > 0 && s.logger != nil {
		s.logger.Info("detached notes from deleted folder",
			zap.Int64(logger.FieldUID, uid),
			zap.Int64(logger.FieldFolderID, folderID),
			zap.Int64(logger.FieldCount, affected))
	}
	return nil
}

func (s *cleanupService) DetachTag(ctx context.Context, uid, tagID int64) error {
	affected, err := s.noteTagRepo.DeleteByTagID(ctx, tagID, uid)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if affected > 0 && s.logger != nil {
		s.logger.Info("detached notes from deleted tag",
			zap.Int64(logger.FieldUID, uid),
			zap.Int64(logger.FieldTagID, tagID),
			zap.Int64(logger.FieldCount, affected))
	}
	return nil
}

func (s *cleanupService) SweepOrphans(ctx context.Context) (int64, error) {
	var total int64

	affected, err := s.noteRepo.PruneOrphanFolderRefs(ctx)
	if err != nil {
		return total, err
	}
	total += affected

	affected, err = s.noteTagRepo.PruneOrphanTagRefs(ctx)
	if err != nil {
		return total, err
	}
	total += affected

	affected, err = s.noteTagRepo.PruneOrphanNoteRefs(ctx)
	if err != nil {
		return total, err
	}
	total += affected

	if total > 0 && s.logger != nil {
		s.logger.Info("integrity sweep removed orphan references",
			zap.Int64(logger.FieldCount, total))
	}
	return total, nil
}
