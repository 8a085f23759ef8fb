package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NSVEGUR/bookmarks-api/internal/core/domain"
	"github.com/NSVEGUR/bookmarks-api/internal/core/ports"
)

type stubBookmarkRepo struct {
	bookmarks map[int64]*domain.Bookmark
	nextID    int64
}

func newStubBookmarkRepo() *stubBookmarkRepo {
	return &stubBookmarkRepo{bookmarks: make(map[int64]*domain.Bookmark)}
}

func cloneBookmark(b *domain.Bookmark) *domain.Bookmark {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookmarkRepo) Create(_ context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	r.nextID++
	copy := cloneBookmark(b)
	copy.ID = r.nextID
	r.bookmarks[copy.ID] = cloneBookmark(copy)
	return cloneBookmark(copy), nil
}

func (r *stubBookmarkRepo) ListByOwner(_ context.Context, userID int64) ([]*domain.Bookmark, error) {
	out := make([]*domain.Bookmark, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.bookmarks[id]; ok && b.UserID == userID {
			out = append(out, cloneBookmark(b))
		}
	}
	return out, nil
}

func (r *stubBookmarkRepo) FindByID(_ context.Context, id int64) (*domain.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	return cloneBookmark(b), nil
}

func (r *stubBookmarkRepo) Update(_ context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if _, ok := r.bookmarks[b.ID]; !ok {
		return nil, domain.ErrBookmarkNotFound
	}
	r.bookmarks[b.ID] = cloneBookmark(b)
	return cloneBookmark(b), nil
}

func (r *stubBookmarkRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.bookmarks[id]; !ok {
		return domain.ErrBookmarkNotFound
	}
	delete(r.bookmarks, id)
	return nil
}

func newBookmarkService() (*BookmarkService, *stubBookmarkRepo) {
	repo := newStubBookmarkRepo()
	return NewBookmarkService(repo, zerolog.Nop()), repo
}

func TestBookmarkService_CreateAndGet(t *testing.T) {
	svc, _ := newBookmarkService()

	created, err := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{
		Title:       "Sample",
		Link:        "https://example.com",
		Description: "a link",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", created.UserID)
	}

	got, err := svc.GetOne(context.Background(), 1, created.ID)
	if err != nil {
		t.Fatalf("GetOne returned error: %v", err)
	}
	if got.Title != "Sample" || got.Link != "https://example.com" || got.Description != "a link" {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestBookmarkService_ListAll_ScopedToOwner(t *testing.T) {
	svc, _ := newBookmarkService()

	_, _ = svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "a", Link: "l1"})
	_, _ = svc.Create(context.Background(), 2, ports.CreateBookmarkInput{Title: "b", Link: "l2"})
	_, _ = svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "c", Link: "l3"})

	list, err := svc.ListAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(list))
	}
	if list[0].Title != "a" || list[1].Title != "c" {
		t.Fatalf("unexpected order: %q, %q", list[0].Title, list[1].Title)
	}
}

func TestBookmarkService_GetOne_ForeignOwnerLooksAbsent(t *testing.T) {
	svc, _ := newBookmarkService()

	created, _ := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "a", Link: "l"})

	if _, err := svc.GetOne(context.Background(), 2, created.ID); err != domain.ErrBookmarkNotFound {
		t.Fatalf("expected ErrBookmarkNotFound for foreign read, got %v", err)
	}
}

func TestBookmarkService_GetOne_Missing(t *testing.T) {
	svc, _ := newBookmarkService()

	if _, err := svc.GetOne(context.Background(), 1, 99); err != domain.ErrBookmarkNotFound {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_Update_Partial(t *testing.T) {
	svc, _ := newBookmarkService()

	created, _ := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{
		Title: "Sample", Link: "https://example.com", Description: "old",
	})

	title := "adasd"
	desc := "new description"
	updated, err := svc.Update(context.Background(), 1, created.ID, ports.BookmarkPatch{
		Title:       &title,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "adasd" || updated.Description != "new description" {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Link != "https://example.com" {
		t.Fatalf("link should be untouched, got %q", updated.Link)
	}
}

func TestBookmarkService_Update_ForeignOwner(t *testing.T) {
	svc, _ := newBookmarkService()

	created, _ := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "a", Link: "l"})

	title := "hijack"
	if _, err := svc.Update(context.Background(), 2, created.ID, ports.BookmarkPatch{Title: &title}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookmarkService_Update_Missing(t *testing.T) {
	svc, _ := newBookmarkService()

	title := "x"
	if _, err := svc.Update(context.Background(), 1, 99, ports.BookmarkPatch{Title: &title}); err != domain.ErrBookmarkNotFound {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestBookmarkService_Delete(t *testing.T) {
	svc, _ := newBookmarkService()

	created, _ := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "a", Link: "l"})

	if err := svc.Delete(context.Background(), 1, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetOne(context.Background(), 1, created.ID); err != domain.ErrBookmarkNotFound {
		t.Fatalf("expected bookmark gone after delete, got %v", err)
	}
}

func TestBookmarkService_Delete_ForeignOwner(t *testing.T) {
	svc, repo := newBookmarkService()

	created, _ := svc.Create(context.Background(), 1, ports.CreateBookmarkInput{Title: "a", Link: "l"})

	if err := svc.Delete(context.Background(), 2, created.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.bookmarks[created.ID]; !ok {
		t.Fatalf("bookmark must survive a forbidden delete")
	}
}
