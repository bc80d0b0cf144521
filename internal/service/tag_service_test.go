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

type mockTagStore struct {
	domain.TagRepository
	tags   map[int64]*domain.Tag
	names  map[string]int64
	nextID int64
}

func newMockTagStore() *mockTagStore {
	return &mockTagStore{tags: map[int64]*domain.Tag{}, names: map[string]int64{}, nextID: 1}
}

func (m *mockTagStore) GetByID(ctx context.Context, id, uid int64) (*domain.Tag, error) {
	if t, ok := m.tags[id]; ok && t.UID == uid {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTagStore) List(ctx context.Context, uid int64) ([]*domain.Tag, error) {
	var res []*domain.Tag
	for _, t := range m.tags {
		if t.UID == uid {
			res = append(res, t)
		}
	}
	return res, nil
}

func (m *mockTagStore) Create(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	if _, ok := m.names[tag.Name]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	tag.ID = m.nextID
	tag.UID = uid
	m.nextID++
	m.tags[tag.ID] = tag
	m.names[tag.Name] = tag.ID
	return tag, nil
}

func (m *mockTagStore) Update(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	cur, ok := m.tags[tag.ID]
	if !ok || cur.UID != uid {
		return nil, gorm.ErrRecordNotFound
	}
	if id, ok := m.names[tag.Name]; ok && id != tag.ID {
		return nil, gorm.ErrDuplicatedKey
	}
	delete(m.names, cur.Name)
	cur.Name = tag.Name
	m.names[cur.Name] = cur.ID
	return cur, nil
}

func (m *mockTagStore) Delete(ctx context.Context, id, uid int64) error {
	if t, ok := m.tags[id]; ok && t.UID == uid {
		delete(m.names, t.Name)
		delete(m.tags, id)
	}
	return nil
}

func TestTagService_Create(t *testing.T) {
	svc := NewTagService(newMockTagStore(), &mockCleanup{})

	// 缺少 name
	_, err := svc.Create(context.Background(), 1, &dto.TagCreateRequest{})
	if !errors.Is(err, code.ErrorMissingName) {
		t.Errorf("expected ErrorMissingName, got %v", err)
	}

	tag, err := svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "urgent"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if tag.Name != "urgent" {
		t.Errorf("expected urgent, got %s", tag.Name)
	}

	// 重名
	_, err = svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "urgent"})
	if !errors.Is(err, code.ErrorTagNameExists) {
		t.Errorf("expected ErrorTagNameExists, got %v", err)
	}
	if err.Error() != "Tag name already exists" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestTagService_Update(t *testing.T) {
	store := newMockTagStore()
	svc := NewTagService(store, &mockCleanup{})

	a, _ := svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "work"})
	b, _ := svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "home"})

	renamed, err := svc.Update(context.Background(), 1, b.ID, &dto.TagUpdateRequest{Name: "personal"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if renamed.Name != "personal" {
		t.Errorf("expected personal, got %s", renamed.Name)
	}

	// 改名撞上已有标签
	_, err = svc.Update(context.Background(), 1, b.ID, &dto.TagUpdateRequest{Name: a.Name})
	if !errors.Is(err, code.ErrorTagNameExists) {
		t.Errorf("expected ErrorTagNameExists, got %v", err)
	}

	_, err = svc.Update(context.Background(), 1, 42, &dto.TagUpdateRequest{Name: "ghost"})
	if !errors.Is(err, code.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestTagService_Delete_Cascades(t *testing.T) {
	store := newMockTagStore()
	cleanup := &mockCleanup{}
	svc := NewTagService(store, cleanup)

	tag, err := svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "stale"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, tag.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(cleanup.detachedTags) != 1 || cleanup.detachedTags[0] != tag.ID {
		t.Errorf("expected cleanup for tag %d, got %v", tag.ID, cleanup.detachedTags)
	}

	// 幂等删除
	if err := svc.Delete(context.Background(), 1, tag.ID); err != nil {
		t.Errorf("second delete should succeed, got %v", err)
	}
}

func TestTagService_Get_OwnerScoped(t *testing.T) {
	store := newMockTagStore()
	svc := NewTagService(store, &mockCleanup{})

	tag, _ := svc.Create(context.Background(), 1, &dto.TagCreateRequest{Name: "mine"})

	// 其他用户不可见
	_, err := svc.Get(context.Background(), 2, tag.ID)
	if !errors.Is(err, code.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound for foreign owner, got %v", err)
	}

	got, err := svc.Get(context.Background(), 1, tag.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "mine" {
		t.Errorf("expected mine, got %s", got.Name)
	}
}
