package service

import (
	"context"
	"errors"
	"testing"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/dto"
	"github.com/noteful-labs/noteful-service/pkg/code"

	"gorm.io/gorm"
)

type mockNoteRepo struct {
	domain.NoteRepository
	notes  map[int64]*domain.Note
	nextID int64
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: map[int64]*domain.Note{}, nextID: 1}
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Note, error) {
	if n, ok := m.notes[id]; ok && n.UID == uid {
		cp := *n
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	note.ID = m.nextID
	note.UID = uid
	m.nextID++
	cp := *note
	m.notes[note.ID] = &cp
	return note, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *domain.Note, uid int64) (*domain.Note, error) {
	stored, ok := m.notes[note.ID]
	if !ok || stored.UID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	stored.Title = note.Title
	stored.Content = note.Content
	stored.FolderID = note.FolderID
	cp := *stored
	return &cp, nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id, uid int64) error {
	if n, ok := m.notes[id]; ok && n.UID == uid {
		delete(m.notes, id)
	}
	return nil
}

type mockFolderRepo struct {
	domain.FolderRepository
	existing map[int64]bool
}

func (m *mockFolderRepo) Exists(ctx context.Context, id, uid int64) (bool, error) {
	return m.existing[id], nil
}

type mockTagRepo struct {
	domain.TagRepository
	tags map[int64]*domain.Tag
}

func (m *mockTagRepo) CountByIDs(ctx context.Context, ids []int64, uid int64) (int64, error) {
	var count int64
	for _, id := range ids {
		if t, ok := m.tags[id]; ok && t.UID == uid {
			count++
		}
	}
	return count, nil
}

func (m *mockTagRepo) ListByIDs(ctx context.Context, ids []int64, uid int64) ([]*domain.Tag, error) {
	var res []*domain.Tag
	for _, id := range ids {
		if t, ok := m.tags[id]; ok && t.UID == uid {
			res = append(res, t)
		}
	}
	return res, nil
}

type mockNoteTagRepo struct {
	domain.NoteTagRepository
	byNote map[int64][]int64
}

func newMockNoteTagRepo() *mockNoteTagRepo {
	return &mockNoteTagRepo{byNote: map[int64][]int64{}}
}

func (m *mockNoteTagRepo) ListTagIDsByNoteID(ctx context.Context, noteID, uid int64) ([]int64, error) {
	return m.byNote[noteID], nil
}

func (m *mockNoteTagRepo) ListByNoteIDs(ctx context.Context, noteIDs []int64, uid int64) (map[int64][]int64, error) {
	res := map[int64][]int64{}
	for _, id := range noteIDs {
		if ids, ok := m.byNote[id]; ok {
			res[id] = ids
		}
	}
	return res, nil
}

func (m *mockNoteTagRepo) ReplaceForNote(ctx context.Context, noteID int64, tagIDs []int64, uid int64) error {
	m.byNote[noteID] = tagIDs
	return nil
}

func (m *mockNoteTagRepo) DeleteByNoteID(ctx context.Context, noteID, uid int64) (int64, error) {
	n := int64(len(m.byNote[noteID]))
	delete(m.byNote, noteID)
	return n, nil
}

func newTestNoteService() (NoteService, *mockNoteRepo, *mockNoteTagRepo) {
	noteRepo := newMockNoteRepo()
	noteTagRepo := newMockNoteTagRepo()
	folderRepo := &mockFolderRepo{existing: map[int64]bool{10: true}}
	tagRepo := &mockTagRepo{tags: map[int64]*domain.Tag{
		1: {ID: 1, Name: "go", UID: 1},
		2: {ID: 2, Name: "infra", UID: 1},
		9: {ID: 9, Name: "other", UID: 2},
	}}
	svc := NewNoteService(noteRepo, folderRepo, tagRepo, noteTagRepo)
	return svc, noteRepo, noteTagRepo
}

func TestNoteService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  *dto.NoteCreateRequest
		wantErr *code.Code
	}{
		{
			name:    "missing title",
			params:  &dto.NoteCreateRequest{Content: "text"},
			wantErr: code.ErrorMissingTitle,
		},
		{
			name:    "unknown folder",
			params:  &dto.NoteCreateRequest{Title: "t", FolderID: 999},
			wantErr: code.ErrorInvalidFolderID,
		},
		{
			name:    "tags not an array",
			params:  &dto.NoteCreateRequest{Title: "t", Tags: "go"},
			wantErr: code.ErrorTagsNotArray,
		},
		{
			name:    "tags with unknown id",
			params:  &dto.NoteCreateRequest{Title: "t", Tags: []any{float64(1), float64(999)}},
			wantErr: code.ErrorTagsNonExistent,
		},
		{
			name:    "tags belonging to another user",
			params:  &dto.NoteCreateRequest{Title: "t", Tags: []any{float64(9)}},
			wantErr: code.ErrorTagsNonExistent,
		},
		{
			name:    "tags with non numeric item",
			params:  &dto.NoteCreateRequest{Title: "t", Tags: []any{"go"}},
			wantErr: code.ErrorTagsNonExistent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestNoteService()
			_, err := svc.Create(context.Background(), 1, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNoteService_Create_WithTags(t *testing.T) {
	svc, _, noteTagRepo := newTestNoteService()

	note, err := svc.Create(context.Background(), 1, &dto.NoteCreateRequest{
		Title:    "Tagged note",
		Content:  "text",
		FolderID: 10,
		Tags:     []any{float64(1), float64(2)},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if note.FolderID == nil || *note.FolderID != 10 {
		t.Errorf("expected folderId 10, got %v", note.FolderID)
	}
	if len(note.Tags) != 2 {
		t.Fatalf("expected 2 resolved tags, got %d", len(note.Tags))
	}
	if note.Tags[0].Name != "go" {
		t.Errorf("expected first tag go, got %s", note.Tags[0].Name)
	}
	if len(noteTagRepo.byNote[note.ID]) != 2 {
		t.Errorf("expected 2 join rows, got %d", len(noteTagRepo.byNote[note.ID]))
	}
}

func TestNoteService_List_InvalidFilters(t *testing.T) {
	svc, _, _ := newTestNoteService()

	_, err := svc.List(context.Background(), 1, &dto.NoteListRequest{FolderID: "abc"})
	if !errors.Is(err, code.ErrorInvalidFolderID) {
		t.Errorf("expected ErrorInvalidFolderID, got %v", err)
	}

	_, err = svc.List(context.Background(), 1, &dto.NoteListRequest{TagID: "-3"})
	if !errors.Is(err, code.ErrorInvalidTagID) {
		t.Errorf("expected ErrorInvalidTagID, got %v", err)
	}
}

func TestNoteService_Get(t *testing.T) {
	svc, _, _ := newTestNoteService()

	tagged, err := svc.Create(context.Background(), 1, &dto.NoteCreateRequest{
		Title: "Tagged",
		Tags:  []any{float64(2), float64(1)},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	plain, err := svc.Create(context.Background(), 1, &dto.NoteCreateRequest{Title: "Plain"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// 带标签的笔记读取成功，标签按关联顺序解析
	got, err := svc.Get(context.Background(), 1, tagged.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Tagged" {
		t.Errorf("expected Tagged, got %s", got.Title)
	}
	if len(got.Tags) != 2 || got.Tags[0].Name != "infra" || got.Tags[1].Name != "go" {
		t.Errorf("unexpected resolved tags: %+v", got.Tags)
	}

	// 无标签的笔记也读取成功，tags 为空集合
	got, err = svc.Get(context.Background(), 1, plain.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Errorf("expected no tags, got %+v", got.Tags)
	}

	// 其他用户不可见
	if _, err := svc.Get(context.Background(), 2, plain.ID); !errors.Is(err, code.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound for foreign owner, got %v", err)
	}
}

func TestNoteService_Update_PartialFields(t *testing.T) {
	svc, noteRepo, _ := newTestNoteService()

	created, err := svc.Create(context.Background(), 1, &dto.NoteCreateRequest{
		Title:    "Original",
		Content:  "original content",
		FolderID: 10,
		Tags:     []any{float64(1)},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// 只带 title：其余字段保持不变
	newTitle := "Renamed"
	updated, err := svc.Update(context.Background(), 1, created.ID, &dto.NoteUpdateRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("expected renamed title, got %s", updated.Title)
	}
	if updated.Content != "original content" {
		t.Errorf("content should be unchanged, got %q", updated.Content)
	}
	if updated.FolderID == nil || *updated.FolderID != 10 {
		t.Errorf("folderId should be unchanged, got %v", updated.FolderID)
	}
	if len(updated.Tags) != 1 {
		t.Errorf("tags should be unchanged, got %d", len(updated.Tags))
	}

	// folderId 传 0 表示移出文件夹
	var zero int64
	updated, err = svc.Update(context.Background(), 1, created.ID, &dto.NoteUpdateRequest{FolderID: &zero})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.FolderID != nil {
		t.Errorf("expected null folderId, got %v", *updated.FolderID)
	}

	// tags 带空数组：清空关联
	updated, err = svc.Update(context.Background(), 1, created.ID, &dto.NoteUpdateRequest{Tags: []any{}})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Errorf("expected no tags, got %d", len(updated.Tags))
	}

	// 他人的笔记不可见
	_, err = svc.Update(context.Background(), 2, created.ID, &dto.NoteUpdateRequest{Title: &newTitle})
	if !errors.Is(err, code.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound for other user, got %v", err)
	}

	_ = noteRepo
}

func TestNoteService_Delete_Idempotent(t *testing.T) {
	svc, _, noteTagRepo := newTestNoteService()

	created, err := svc.Create(context.Background(), 1, &dto.NoteCreateRequest{
		Title: "Doomed",
		Tags:  []any{float64(1)},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(noteTagRepo.byNote[created.ID]) != 0 {
		t.Error("join rows should be removed with the note")
	}

	// 再次删除依旧成功
	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Errorf("second delete should be a no-op, got %v", err)
	}

	_, err = svc.Get(context.Background(), 1, created.ID)
	if !errors.Is(err, code.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound after delete, got %v", err)
	}
}

func TestParseTagIDs(t *testing.T) {
	ids, present, cerr := parseTagIDs(nil)
	if present || cerr != nil || ids != nil {
		t.Errorf("nil input should mean field absent")
	}

	ids, present, cerr = parseTagIDs([]any{float64(3), float64(3), float64(5)})
	if cerr != nil || !present {
		t.Fatalf("unexpected error: %v", cerr)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 5 {
		t.Errorf("expected deduplicated [3 5], got %v", ids)
	}

	_, _, cerr = parseTagIDs(map[string]any{})
	if !errors.Is(cerr, code.ErrorTagsNotArray) {
		t.Errorf("expected ErrorTagsNotArray, got %v", cerr)
	}

	_, _, cerr = parseTagIDs([]any{float64(1.5)})
	if !errors.Is(cerr, code.ErrorTagsNonExistent) {
		t.Errorf("expected ErrorTagsNonExistent for fractional id, got %v", cerr)
	}
}
