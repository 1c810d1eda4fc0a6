package boardapp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	dbadapter "forum/internal/adapters/database"
	"forum/internal/config"
	"forum/internal/core/post"
	"forum/internal/core/topic"
	"forum/internal/core/user"
	boardPort "forum/internal/ports/board"

	"gorm.io/gorm"
)

type memoryCache struct {
	boards      []*boardPort.BoardDTO
	ok          bool
	ttl         time.Duration
	sets        int
	invalidated int
}

func (c *memoryCache) GetBoards(context.Context) ([]*boardPort.BoardDTO, bool, error) {
	return c.boards, c.ok, nil
}

func (c *memoryCache) SetBoards(_ context.Context, boards []*boardPort.BoardDTO, ttl time.Duration) error {
	c.boards, c.ok, c.ttl = boards, true, ttl
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.boards, c.ok = nil, false
	c.invalidated++
	return nil
}

func newService(t *testing.T) (*BoardService, *memoryCache, *gorm.DB) {
	t.Helper()
	db, err := config.OpenDB(config.DriverSQLite, filepath.Join(t.TempDir(), "forum.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbadapter.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	cache := &memoryCache{}
	svc := NewBoardService(
		dbadapter.NewBoardRepositoryDatabase(db),
		dbadapter.NewTopicRepositoryDatabase(db),
		dbadapter.NewPostRepositoryDatabase(db),
		cache,
		time.Minute,
	)
	return svc, cache, db
}

func TestListBoards_Empty(t *testing.T) {
	svc, _, _ := newService(t)
	boards, err := svc.ListBoards(context.Background())
	if err != nil {
		t.Fatalf("ListBoards: %v", err)
	}
	if len(boards) != 0 {
		t.Fatalf("boards=%d want=0", len(boards))
	}
}

func TestListBoards_CountsAndCache(t *testing.T) {
	svc, cache, db := newService(t)
	ctx := context.Background()

	django, err := svc.CreateBoard(ctx, "Django", "Django board.")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if _, err := svc.CreateBoard(ctx, "Python", "Python board."); err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}

	u := &user.User{Username: "john", Password: "x"}
	db.Create(u)
	b, _ := dbadapter.NewBoardRepositoryDatabase(db).FindByID(ctx, django.ID)
	tp := &topic.Topic{Subject: "s", BoardID: b.ID, StarterID: u.ID}
	if err := dbadapter.NewTopicRepositoryDatabase(db).CreateWithPost(ctx, tp, &post.Post{Message: "m", CreatedByID: u.ID}); err != nil {
		t.Fatalf("CreateWithPost: %v", err)
	}

	boards, err := svc.ListBoards(ctx)
	if err != nil {
		t.Fatalf("ListBoards: %v", err)
	}
	if len(boards) != 2 || boards[0].Name != "Django" {
		t.Fatalf("unexpected boards: %+v", boards)
	}
	if boards[0].TopicsCount != 1 || boards[0].PostsCount != 1 {
		t.Fatalf("Django counts topics=%d posts=%d want 1/1", boards[0].TopicsCount, boards[0].PostsCount)
	}
	if boards[1].TopicsCount != 0 || boards[1].PostsCount != 0 {
		t.Fatalf("Python counts topics=%d posts=%d want 0/0", boards[1].TopicsCount, boards[1].PostsCount)
	}
	if cache.sets != 1 || cache.ttl != time.Minute {
		t.Fatalf("cache sets=%d ttl=%s", cache.sets, cache.ttl)
	}

	// از کش خوانده می‌شود، حتی اگر دیتابیس عوض شده باشد
	db.Exec("DELETE FROM boards WHERE name = ?", "Python")
	cached, err := svc.ListBoards(ctx)
	if err != nil {
		t.Fatalf("ListBoards: %v", err)
	}
	if len(cached) != 2 || cache.sets != 1 {
		t.Fatalf("expected cached result, got %d boards, sets=%d", len(cached), cache.sets)
	}
}

func TestCreateBoard_Duplicate(t *testing.T) {
	svc, cache, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.CreateBoard(ctx, "Django", "Django board."); err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	if _, err := svc.CreateBoard(ctx, "  Django ", "again"); !errors.Is(err, boardPort.ErrBoardExists) {
		t.Fatalf("err=%v want ErrBoardExists", err)
	}
	if _, err := svc.CreateBoard(ctx, "   ", "blank"); err == nil {
		t.Fatalf("blank name accepted")
	}
	if cache.invalidated != 1 {
		t.Fatalf("invalidated=%d want=1", cache.invalidated)
	}
}

func TestGetBoardTopics(t *testing.T) {
	svc, _, db := newService(t)
	ctx := context.Background()

	created, err := svc.CreateBoard(ctx, "Django", "Django board.")
	if err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	u := &user.User{Username: "john", Password: "x"}
	db.Create(u)
	b, _ := dbadapter.NewBoardRepositoryDatabase(db).FindByID(ctx, created.ID)
	tp := &topic.Topic{Subject: "Test title", BoardID: b.ID, StarterID: u.ID}
	if err := dbadapter.NewTopicRepositoryDatabase(db).CreateWithPost(ctx, tp, &post.Post{Message: "m", CreatedByID: u.ID}); err != nil {
		t.Fatalf("CreateWithPost: %v", err)
	}
	db.Create(&post.Post{Message: "reply", TopicID: tp.ID, CreatedByID: u.ID})

	board, topics, err := svc.GetBoardTopics(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetBoardTopics: %v", err)
	}
	if board.Name != "Django" || len(topics) != 1 {
		t.Fatalf("board=%+v topics=%d", board, len(topics))
	}
	if topics[0].Starter != "john" || topics[0].Replies != 1 || topics[0].Subject != "Test title" {
		t.Fatalf("topic=%+v", topics[0])
	}

	if _, _, err := svc.GetBoardTopics(ctx, "99"); !errors.Is(err, boardPort.ErrBoardNotFound) {
		t.Fatalf("err=%v want ErrBoardNotFound", err)
	}
	if _, err := svc.GetBoard(ctx, "99"); !errors.Is(err, boardPort.ErrBoardNotFound) {
		t.Fatalf("err=%v want ErrBoardNotFound", err)
	}
}

func TestRefreshBoards_BypassesCache(t *testing.T) {
	svc, cache, _ := newService(t)
	ctx := context.Background()

	cache.boards, cache.ok = []*boardPort.BoardDTO{{Name: "stale"}}, true
	if _, err := svc.CreateBoard(ctx, "Django", "Django board."); err != nil {
		t.Fatalf("CreateBoard: %v", err)
	}
	cache.boards, cache.ok = []*boardPort.BoardDTO{{Name: "stale"}}, true

	boards, err := svc.RefreshBoards(ctx)
	if err != nil {
		t.Fatalf("RefreshBoards: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "Django" {
		t.Fatalf("boards=%+v", boards)
	}
	if !cache.ok || cache.boards[0].Name != "Django" {
		t.Fatalf("cache not rewritten: %+v", cache.boards)
	}
}
