package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/noteful-labs/noteful-service/internal/domain"
	"github.com/noteful-labs/noteful-service/internal/model"
	"github.com/noteful-labs/noteful-service/pkg/timex"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()

	// 内存库每个连接各自独立，池收敛到单连接
	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:         "sqlite",
		Path:         ":memory:",
		AutoMigrate:  true,
		MaxIdleConns: 1,
		MaxOpenConns: 1,
	}, nil)
	require.NoError(t, err)

	return New(db, nil)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewUserRepository(d)
	ctx := context.Background()

	user, err := repo.Create(ctx, &domain.User{
		Fullname: "Bob User",
		Username: "bobuser",
		Password: "$2a$10$hash",
	})
	require.NoError(t, err)
	dump.P(user)

	assert.NotZero(t, user.UID)
	assert.Equal(t, "bobuser", user.Username)

	got, err := repo.GetByUsername(ctx, "bobuser")
	require.NoError(t, err)
	assert.Equal(t, user.UID, got.UID)

	// 用户名唯一索引
	_, err = repo.Create(ctx, &domain.User{Username: "bobuser", Password: "x"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestFolderRepository_OwnerScoping(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	mine, err := repo.Create(ctx, &domain.Folder{Name: "Work"}, 1)
	require.NoError(t, err)

	// 其他用户看不到
	_, err = repo.GetByID(ctx, mine.ID, 2)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	ok, err := repo.Exists(ctx, mine.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, mine.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	// 同名不同用户互不冲突
	_, err = repo.Create(ctx, &domain.Folder{Name: "Work"}, 2)
	assert.NoError(t, err)

	// 同名同用户触发唯一索引
	_, err = repo.Create(ctx, &domain.Folder{Name: "Work"}, 1)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestFolderRepository_ListSorted(t *testing.T) {
	d := newTestDao(t)
	repo := NewFolderRepository(d)
	ctx := context.Background()

	for _, name := range []string{"Personal", "Archive", "Work"} {
		_, err := repo.Create(ctx, &domain.Folder{Name: name}, 1)
		require.NoError(t, err)
	}

	folders, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, folders, 3)
	assert.Equal(t, "Archive", folders[0].Name)
	assert.Equal(t, "Personal", folders[1].Name)
	assert.Equal(t, "Work", folders[2].Name)
}

func TestTagRepository_CountByIDs(t *testing.T) {
	d := newTestDao(t)
	repo := NewTagRepository(d)
	ctx := context.Background()

	t1, err := repo.Create(ctx, &domain.Tag{Name: "go"}, 1)
	require.NoError(t, err)
	t2, err := repo.Create(ctx, &domain.Tag{Name: "infra"}, 1)
	require.NoError(t, err)
	other, err := repo.Create(ctx, &domain.Tag{Name: "private"}, 2)
	require.NoError(t, err)

	count, err := repo.CountByIDs(ctx, []int64{t1.ID, t2.ID}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// 他人的标签不计入
	count, err = repo.CountByIDs(ctx, []int64{t1.ID, other.ID}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNoteRepository_ListFilters(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	folderRepo := NewFolderRepository(d)
	tagRepo := NewTagRepository(d)
	noteTagRepo := NewNoteTagRepository(d)
	ctx := context.Background()

	folder, err := folderRepo.Create(ctx, &domain.Folder{Name: "Work"}, 1)
	require.NoError(t, err)
	tag, err := tagRepo.Create(ctx, &domain.Tag{Name: "go"}, 1)
	require.NoError(t, err)

	meeting, err := noteRepo.Create(ctx, &domain.Note{Title: "Meeting notes", FolderID: folder.ID}, 1)
	require.NoError(t, err)
	groceries, err := noteRepo.Create(ctx, &domain.Note{Title: "Groceries"}, 1)
	require.NoError(t, err)
	_, err = noteRepo.Create(ctx, &domain.Note{Title: "Meeting other user"}, 2)
	require.NoError(t, err)

	require.NoError(t, noteTagRepo.ReplaceForNote(ctx, groceries.ID, []int64{tag.ID}, 1))

	// 无过滤：仅本人笔记
	notes, err := noteRepo.List(ctx, 1, domain.NoteFilter{})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	// 标题关键字
	notes, err = noteRepo.List(ctx, 1, domain.NoteFilter{SearchTerm: "meeting"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, meeting.ID, notes[0].ID)

	// 内容关键字，大小写不敏感
	recipe, err := noteRepo.Create(ctx, &domain.Note{Title: "Recipes", Content: "pre-MEETING snacks"}, 1)
	require.NoError(t, err)
	notes, err = noteRepo.List(ctx, 1, domain.NoteFilter{SearchTerm: "meeting"})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	ids := []int64{notes[0].ID, notes[1].ID}
	assert.Contains(t, ids, meeting.ID)
	assert.Contains(t, ids, recipe.ID)

	// 按文件夹
	notes, err = noteRepo.List(ctx, 1, domain.NoteFilter{FolderID: folder.ID})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, meeting.ID, notes[0].ID)

	// 按标签
	notes, err = noteRepo.List(ctx, 1, domain.NoteFilter{TagID: tag.ID})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, groceries.ID, notes[0].ID)
}

func TestNoteRepository_ClearFolderRefs(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	folderRepo := NewFolderRepository(d)
	ctx := context.Background()

	folder, err := folderRepo.Create(ctx, &domain.Folder{Name: "Work"}, 1)
	require.NoError(t, err)
	note, err := noteRepo.Create(ctx, &domain.Note{Title: "Filed", FolderID: folder.ID}, 1)
	require.NoError(t, err)

	affected, err := noteRepo.ClearFolderRefs(ctx, folder.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := noteRepo.GetByID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FolderID)
}

func TestNoteTagRepository_ReplaceAndDelete(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	tagRepo := NewTagRepository(d)
	noteTagRepo := NewNoteTagRepository(d)
	ctx := context.Background()

	note, err := noteRepo.Create(ctx, &domain.Note{Title: "Tagged"}, 1)
	require.NoError(t, err)
	t1, err := tagRepo.Create(ctx, &domain.Tag{Name: "go"}, 1)
	require.NoError(t, err)
	t2, err := tagRepo.Create(ctx, &domain.Tag{Name: "infra"}, 1)
	require.NoError(t, err)

	// 重复 ID 去重
	require.NoError(t, noteTagRepo.ReplaceForNote(ctx, note.ID, []int64{t1.ID, t1.ID, t2.ID}, 1))
	ids, err := noteTagRepo.ListTagIDsByNoteID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{t1.ID, t2.ID}, ids)

	// 整体替换
	require.NoError(t, noteTagRepo.ReplaceForNote(ctx, note.ID, []int64{t2.ID}, 1))
	ids, err = noteTagRepo.ListTagIDsByNoteID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{t2.ID}, ids)

	// 标签删除后的级联，受影响笔记的 updated_at 一并更新
	stale := time.Now().Add(-time.Hour)
	require.NoError(t, d.db.Model(&model.Note{}).
		Where("id = ?", note.ID).
		Update("updated_at", timex.Time(stale)).Error)

	affected, err := noteTagRepo.DeleteByTagID(ctx, t2.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	ids, err = noteTagRepo.ListTagIDsByNoteID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)

	got, err := noteRepo.GetByID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(stale))
}

func TestPruneOrphanRefs(t *testing.T) {
	d := newTestDao(t)
	noteRepo := NewNoteRepository(d)
	folderRepo := NewFolderRepository(d)
	tagRepo := NewTagRepository(d)
	noteTagRepo := NewNoteTagRepository(d)
	ctx := context.Background()

	folder, err := folderRepo.Create(ctx, &domain.Folder{Name: "Work"}, 1)
	require.NoError(t, err)
	tag, err := tagRepo.Create(ctx, &domain.Tag{Name: "go"}, 1)
	require.NoError(t, err)
	note, err := noteRepo.Create(ctx, &domain.Note{Title: "Filed", FolderID: folder.ID}, 1)
	require.NoError(t, err)
	require.NoError(t, noteTagRepo.ReplaceForNote(ctx, note.ID, []int64{tag.ID}, 1))

	// 绕过级联直接删除，模拟发生过清理缺口的数据
	require.NoError(t, folderRepo.Delete(ctx, folder.ID, 1))
	require.NoError(t, tagRepo.Delete(ctx, tag.ID, 1))

	affected, err := noteRepo.PruneOrphanFolderRefs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = noteTagRepo.PruneOrphanTagRefs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := noteRepo.GetByID(ctx, note.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.FolderID)
}
