package topicapp

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	dbadapter "forum/internal/adapters/database"
	"forum/internal/config"
	"forum/internal/core/board"
	"forum/internal/core/post"
	"forum/internal/core/topic"
	"forum/internal/core/user"
	boardPort "forum/internal/ports/board"
	topicPort "forum/internal/ports/topic"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type countingCache struct {
	invalidations int
}

func (c *countingCache) GetBoards(context.Context) ([]*boardPort.BoardDTO, bool, error) {
	return nil, false, nil
}

func (c *countingCache) SetBoards(context.Context, []*boardPort.BoardDTO, time.Duration) error {
	return nil
}

func (c *countingCache) Invalidate(context.Context) error {
	c.invalidations++
	return errors.New("cache down")
}

type fixture struct {
	db    *gorm.DB
	svc   *TopicService
	cache *countingCache
	board *board.Board
}

func newFixture(t *testing.T) *fixture {
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

	b := &board.Board{Name: "Django", Description: "Django board."}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create board: %v", err)
	}

	cache := &countingCache{}
	svc := NewTopicService(
		dbadapter.NewBoardRepositoryDatabase(db),
		dbadapter.NewTopicRepositoryDatabase(db),
		dbadapter.NewUserRepositoryDatabase(db),
		cache,
	)
	return &fixture{db: db, svc: svc, cache: cache, board: b}
}

func (f *fixture) addUser(t *testing.T, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Password: "x"}
	if err := f.db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestCreateTopic_DefaultUserIsAuthor(t *testing.T) {
	f := newFixture(t)
	john := f.addUser(t, "john")
	time.Sleep(5 * time.Millisecond)
	f.addUser(t, "jane")

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return fixed }

	dto, err := f.svc.CreateTopic(context.Background(), f.board.ID.String(), "Test title", "Lorem ipsum dolor sit amet", "")
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if dto.Starter != "john" {
		t.Fatalf("Starter=%q want=john", dto.Starter)
	}

	var tp topic.Topic
	if err := f.db.First(&tp).Error; err != nil {
		t.Fatalf("load topic: %v", err)
	}
	var p post.Post
	if err := f.db.First(&p).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if tp.StarterID != john.ID || p.CreatedByID != john.ID {
		t.Fatalf("author mismatch: starter=%s createdBy=%s want=%s", tp.StarterID, p.CreatedByID, john.ID)
	}
	if p.TopicID != tp.ID || tp.BoardID != f.board.ID {
		t.Fatalf("references broken: topic=%+v post=%+v", tp, p)
	}
	if !tp.CreatedAt.Equal(fixed) || !p.CreatedAt.Equal(fixed) {
		t.Fatalf("timestamps: topic=%s post=%s want=%s", tp.CreatedAt, p.CreatedAt, fixed)
	}
	if p.UpdatedAt != nil || p.UpdatedByID != nil {
		t.Fatalf("new post must not carry edit metadata: %+v", p)
	}
	// خطای کش نباید ساخت تاپیک را خراب کند
	if f.cache.invalidations != 1 {
		t.Fatalf("invalidations=%d want=1", f.cache.invalidations)
	}
}

func TestCreateTopic_RequesterIsAuthor(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "john")
	jane := f.addUser(t, "jane")

	dto, err := f.svc.CreateTopic(context.Background(), f.board.ID.String(), "s", "m", jane.ID.String())
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}
	if dto.Starter != "jane" {
		t.Fatalf("Starter=%q want=jane", dto.Starter)
	}
}

func TestCreateTopic_UnknownRequester(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "john")

	_, err := f.svc.CreateTopic(context.Background(), f.board.ID.String(), "s", "m", uuid.Must(uuid.NewV4()).String())
	if !errors.Is(err, topicPort.ErrNoAuthor) {
		t.Fatalf("err=%v want ErrNoAuthor", err)
	}
	assertNoRecords(t, f.db)
}

func TestCreateTopic_NoUsers(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateTopic(context.Background(), f.board.ID.String(), "s", "m", "")
	if !errors.Is(err, topicPort.ErrNoAuthor) {
		t.Fatalf("err=%v want ErrNoAuthor", err)
	}
	assertNoRecords(t, f.db)
}

func TestCreateTopic_MissingBoard(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "john")

	for _, id := range []string{"99", uuid.Must(uuid.NewV4()).String()} {
		if _, err := f.svc.CreateTopic(context.Background(), id, "s", "m", ""); !errors.Is(err, boardPort.ErrBoardNotFound) {
			t.Fatalf("CreateTopic(%q) err=%v want ErrBoardNotFound", id, err)
		}
	}
	assertNoRecords(t, f.db)
	if f.cache.invalidations != 0 {
		t.Fatalf("cache invalidated on failure")
	}
}

func assertNoRecords(t *testing.T, db *gorm.DB) {
	t.Helper()
	var topics, posts int64
	db.Model(&topic.Topic{}).Count(&topics)
	db.Model(&post.Post{}).Count(&posts)
	if topics != 0 || posts != 0 {
		t.Fatalf("topics=%d posts=%d want none", topics, posts)
	}
}
