package service

import (
	"context"
	"errors"
	"math"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/dto"
	"github.com/noteful-labs/noteful-service/pkg/code"
	"github.com/noteful-labs/noteful-service/pkg/timex"
	"github.com/noteful-labs/noteful-service/pkg/util"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// NoteService 笔记业务服务接口
type NoteService interface {
	Get(ctx context.Context, uid, id int64) (*dto.NoteDTO, error)
	List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, error)
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)
	Update(ctx context.Context, uid, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)
	Delete(ctx context.Context, uid, id int64) error
}

type noteService struct {
	noteRepo    domain.NoteRepository
	folderRepo  domain.FolderRepository
	tagRepo     domain.TagRepository
	noteTagRepo domain.NoteTagRepository
}

func NewNoteService(noteRepo domain.NoteRepository, folderRepo domain.FolderRepository, tagRepo domain.TagRepository, noteTagRepo domain.NoteTagRepository) NoteService {
	return &noteService{
		noteRepo:    noteRepo,
		folderRepo:  folderRepo,
		tagRepo:     tagRepo,
		noteTagRepo: noteTagRepo,
	}
}

func (s *noteService) Get(ctx context.Context, uid, id int64) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	tagIDs, err := s.noteTagRepo.ListTagIDsByNoteID(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	tags, err := s.resolveTags(ctx, uid, tagIDs)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(note, tags), nil
}

func (s *noteService) List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, error) {
	filter := domain.NoteFilter{SearchTerm: params.SearchTerm}

	if params.FolderID != "" {
		id, err := util.ParseID(params.FolderID)
		if err != nil {
			return nil, code.ErrorInvalidFolderID
		}
		filter.FolderID = id
	}
	if params.TagID != "" {
		id, err := util.ParseID(params.TagID)
		if err != nil {
			return nil, code.ErrorInvalidTagID
		}
		filter.TagID = id
	}

	notes, err := s.noteRepo.List(ctx, uid, filter)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	noteIDs := make([]int64, 0, len(notes))
	for _, n := range notes {
		noteIDs = append(noteIDs, n.ID)
	}
	tagsByNote, err := s.noteTagRepo.ListByNoteIDs(ctx, noteIDs, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	// 一次取出涉及的全部标签，避免逐条查询
	tagIDSet := make(map[int64]struct{})
	var allTagIDs []int64
	for _, ids := range tagsByNote {
		for _, id := range ids {
			if _, ok := tagIDSet[id]; !ok {
				tagIDSet[id] = struct{}{}
				allTagIDs = append(allTagIDs, id)
			}
		}
	}
	tags, err := s.tagRepo.ListByIDs(ctx, allTagIDs, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	tagByID := make(map[int64]*domain.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}

	res := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		var noteTags []*domain.Tag
		for _, id := range tagsByNote[n.ID] {
			if t, ok := tagByID[id]; ok {
				noteTags = append(noteTags, t)
			}
		}
		res = append(res, s.domainToDTO(n, noteTags))
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	if params.Title == "" {
		return nil, code.ErrorMissingTitle
	}

	tagIDs, _, cerr := parseTagIDs(params.Tags)
	if cerr != nil {
		return nil, cerr
	}
	if err := s.validateRefs(ctx, uid, params.FolderID, tagIDs); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.Create(ctx, &domain.Note{
		Title:    params.Title,
		Content:  params.Content,
		FolderID: params.FolderID,
	}, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if len(tagIDs) > 0 {
		if err := s.noteTagRepo.ReplaceForNote(ctx, note.ID, tagIDs, uid); err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
	}

	tags, err := s.resolveTags(ctx, uid, tagIDs)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(note, tags), nil
}

// Update 部分更新：请求里没带的字段保持原值，folderId 传 0 表示移出文件夹
func (s *noteService) Update(ctx context.Context, uid, id int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if params.Title != nil {
		if *params.Title == "" {
			return nil, code.ErrorMissingTitle
		}
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.FolderID != nil {
		note.FolderID = *params.FolderID
	}

	tagIDs, tagsPresent, cerr := parseTagIDs(params.Tags)
	if cerr != nil {
		return nil, cerr
	}
	if err := s.validateRefs(ctx, uid, note.FolderID, tagIDs); err != nil {
		return nil, err
	}

	updated, err := s.noteRepo.Update(ctx, note, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if tagsPresent {
		if err := s.noteTagRepo.ReplaceForNote(ctx, id, tagIDs, uid); err != nil {
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
	}

	finalTagIDs, err := s.noteTagRepo.ListTagIDsByNoteID(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	tags, err := s.resolveTags(ctx, uid, finalTagIDs)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(updated, tags), nil
}

// Delete 删除笔记并清理标签关联，幂等
func (s *noteService) Delete(ctx context.Context, uid, id int64) error {
	if err := s.noteRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if _, err := s.noteTagRepo.DeleteByNoteID(ctx, id, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

// validateRefs 并发校验文件夹与标签引用都属于当前用户
func (s *noteService) validateRefs(ctx context.Context, uid, folderID int64, tagIDs []int64) error {
	g, gctx := errgroup.WithContext(ctx)

	if folderID != 0 {
		g.Go(func() error {
			ok, err := s.folderRepo.Exists(gctx, folderID, uid)
			if err != nil {
				return code.ErrorDBQuery.WithDetails(err.Error())
			}
			if !ok {
				return code.ErrorInvalidFolderID
			}
			return nil
		})
	}

	if len(tagIDs) > 0 {
		g.Go(func() error {
			count, err := s.tagRepo.CountByIDs(gctx, tagIDs, uid)
			if err != nil {
				return code.ErrorDBQuery.WithDetails(err.Error())
			}
			if count != int64(len(tagIDs)) {
				return code.ErrorTagsNonExistent
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *noteService) resolveTags(ctx context.Context, uid int64, tagIDs []int64) ([]*domain.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.ListByIDs(ctx, tagIDs, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	// 保持关联顺序
	tagByID := make(map[int64]*domain.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = t
	}
	ordered := make([]*domain.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		if t, ok := tagByID[id]; ok {
			ordered = append(ordered, t)
		}
	}
	return ordered, nil
}

// parseTagIDs 解析请求里的 tags 字段
// 返回值 present 表示请求是否携带了该字段。
func parseTagIDs(v any) (ids []int64, present bool, cerr *code.Code) {
	if v == nil {
		return nil, false, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, true, code.ErrorTagsNotArray
	}

	ids = make([]int64, 0, len(arr))
	seen := make(map[int64]struct{}, len(arr))
	for _, item := range arr {
		num, ok := item.(float64)
		if !ok || num <= 0 || num != math.Trunc(num) {
			return nil, true, code.ErrorTagsNonExistent
		}
		id := int64(num)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, true, nil
}

func (s *noteService) domainToDTO(n *domain.Note, tags []*domain.Tag) *dto.NoteDTO {
	if n == nil {
		return nil
	}
	d := &dto.NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      make([]*dto.TagDTO, 0, len(tags)),
		CreatedAt: timex.Time(n.CreatedAt),
		UpdatedAt: timex.Time(n.UpdatedAt),
	}
	if n.FolderID != 0 {
		folderID := n.FolderID
		d.FolderID = &folderID
	}
	for _, t := range tags {
		d.Tags = append(d.Tags, &dto.TagDTO{
			ID:        t.ID,
			Name:      t.Name,
			CreatedAt: timex.Time(t.CreatedAt),
			UpdatedAt: timex.Time(t.UpdatedAt),
		})
	}
	return d
}
