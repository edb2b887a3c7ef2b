package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"inkwell/internal/models/db_models"
	"inkwell/internal/repositories"
)

// In-memory fakes for the repository interfaces. Fakes, not a mock
// framework, so each test reads top to bottom without indirection.

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
	// set to simulate a database failure
	failWith error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) (*db_models.User, error) {
	u := f.users[id]
	if u == nil {
		return nil, nil
	}
	u.Role = role
	return u, nil
}

func (f *fakeUserRepo) DecrementGenerationIfLeft(ctx context.Context, id uuid.UUID) (bool, error) {
	u := f.users[id]
	if u == nil || u.GenerationsLeft <= 0 {
		return false, nil
	}
	u.GenerationsLeft--
	return true, nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*db_models.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*db_models.Post)}
}

func (f *fakePostRepo) Insert(ctx context.Context, post *db_models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) List(ctx context.Context, filter repositories.ListPostsFilter) ([]db_models.Post, int64, error) {
	var out []db_models.Post
	for _, p := range f.posts {
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.AuthorID != "" && p.AuthorID.String() != filter.AuthorID {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *db_models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return errors.New("post not found")
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (*db_models.Post, error) {
	p := f.posts[id]
	if p == nil {
		return nil, nil
	}
	p.Likes++
	return p, nil
}

func (f *fakePostRepo) UpdateEmbedding(ctx context.Context, id uuid.UUID, vector pgvector.Vector) error {
	p := f.posts[id]
	if p != nil {
		p.Embedding = &vector
	}
	return nil
}

func (f *fakePostRepo) SearchByEmbedding(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.Post, error) {
	var out []db_models.Post
	for _, p := range f.posts {
		if p.Embedding != nil && p.Status == db_models.PostStatusPublished {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeSavedPostRepo struct {
	saved map[uuid.UUID]*db_models.SavedPost
}

func newFakeSavedPostRepo() *fakeSavedPostRepo {
	return &fakeSavedPostRepo{saved: make(map[uuid.UUID]*db_models.SavedPost)}
}

func (f *fakeSavedPostRepo) FindByUserAndPost(ctx context.Context, userID, postID uuid.UUID) (*db_models.SavedPost, error) {
	for _, s := range f.saved {
		if s.UserID == userID && s.PostID == postID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSavedPostRepo) Insert(ctx context.Context, saved *db_models.SavedPost) error {
	if saved.ID == uuid.Nil {
		saved.ID = uuid.New()
	}
	f.saved[saved.ID] = saved
	return nil
}

func (f *fakeSavedPostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.saved, id)
	return nil
}

func (f *fakeSavedPostRepo) ListPostsSavedBy(ctx context.Context, userID uuid.UUID) ([]db_models.Post, error) {
	return nil, nil
}

type fakeCollectionRepo struct {
	collections map[uuid.UUID]*db_models.Collection
	members     map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeCollectionRepo() *fakeCollectionRepo {
	return &fakeCollectionRepo{
		collections: make(map[uuid.UUID]*db_models.Collection),
		members:     make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeCollectionRepo) Insert(ctx context.Context, collection *db_models.Collection) error {
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	f.collections[collection.ID] = collection
	f.members[collection.ID] = make(map[uuid.UUID]bool)
	return nil
}

func (f *fakeCollectionRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Collection, error) {
	return f.collections[id], nil
}

func (f *fakeCollectionRepo) FindByIdWithPosts(ctx context.Context, id uuid.UUID) (*db_models.Collection, error) {
	return f.collections[id], nil
}

func (f *fakeCollectionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]repositories.CollectionWithCount, error) {
	var out []repositories.CollectionWithCount
	for id, c := range f.collections {
		if c.UserID == userID {
			out = append(out, repositories.CollectionWithCount{
				Collection: *c,
				PostCount:  int64(len(f.members[id])),
			})
		}
	}
	return out, nil
}

func (f *fakeCollectionRepo) Update(ctx context.Context, collection *db_models.Collection) error {
	f.collections[collection.ID] = collection
	return nil
}

func (f *fakeCollectionRepo) Delete(ctx context.Context, collection *db_models.Collection) error {
	delete(f.collections, collection.ID)
	delete(f.members, collection.ID)
	return nil
}

func (f *fakeCollectionRepo) HasPost(ctx context.Context, collectionID, postID uuid.UUID) (bool, error) {
	return f.members[collectionID][postID], nil
}

func (f *fakeCollectionRepo) AddPost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error {
	f.members[collection.ID][post.ID] = true
	return nil
}

func (f *fakeCollectionRepo) RemovePost(ctx context.Context, collection *db_models.Collection, post *db_models.Post) error {
	delete(f.members[collection.ID], post.ID)
	return nil
}

type fakeAdminRepo struct {
	users []repositories.UserWithPostCount
}

func (f *fakeAdminRepo) ListUsersWithPostCount(ctx context.Context) ([]repositories.UserWithPostCount, error) {
	return f.users, nil
}

func (f *fakeAdminRepo) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeAdminRepo) CountUsersBySubscription(ctx context.Context, sub db_models.Subscription) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Subscription == sub {
			n++
		}
	}
	return n, nil
}

func (f *fakeAdminRepo) CountPosts(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeAdminRepo) CountPostsCreatedSince(ctx context.Context, since int64) (int64, error) {
	return 0, nil
}

type fakeEmbedder struct {
	failWith error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.failWith != nil {
		return pgvector.Vector{}, f.failWith
	}
	return pgvector.NewVector([]float32{0.1, 0.2, 0.3}), nil
}

type fakeImprover struct {
	result   string
	failWith error
	calls    int
}

func (f *fakeImprover) Improve(ctx context.Context, content string) (string, error) {
	f.calls++
	if f.failWith != nil {
		return "", f.failWith
	}
	return f.result, nil
}
