package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/policy"
	"inkwell/pkg/utils"
)

type collectionServiceFixture struct {
	collections *fakeCollectionRepo
	posts       *fakePostRepo
	svc         CollectionServiceInterface
}

func newCollectionServiceFixture() *collectionServiceFixture {
	collections := newFakeCollectionRepo()
	posts := newFakePostRepo()
	return &collectionServiceFixture{
		collections: collections,
		posts:       posts,
		svc:         NewCollectionService(collections, posts),
	}
}

func authFor(role db_models.Role) *policy.AuthContext {
	return &policy.AuthContext{UserID: uuid.New(), Role: role}
}

func TestTogglePost_MembershipReturnsToOriginal(t *testing.T) {
	f := newCollectionServiceFixture()
	owner := authFor(db_models.RoleUser)

	collection, err := f.svc.CreateCollection(context.Background(), owner, request_models.CreateCollectionRequest{
		Name: "Reading list",
	})
	require.NoError(t, err)

	post := &db_models.Post{Title: "Post", AuthorID: owner.UserID}
	require.NoError(t, f.posts.Insert(context.Background(), post))

	_, added, err := f.svc.TogglePost(context.Background(), owner, collection.ID, post.ID.String())
	require.NoError(t, err)
	assert.True(t, added)

	_, added, err = f.svc.TogglePost(context.Background(), owner, collection.ID, post.ID.String())
	require.NoError(t, err)
	assert.False(t, added)

	member, err := f.collections.HasPost(context.Background(), uuid.MustParse(collection.ID), post.ID)
	require.NoError(t, err)
	assert.False(t, member)
}

func TestTogglePost_UnknownPost(t *testing.T) {
	f := newCollectionServiceFixture()
	owner := authFor(db_models.RoleUser)

	collection, err := f.svc.CreateCollection(context.Background(), owner, request_models.CreateCollectionRequest{
		Name: "Reading list",
	})
	require.NoError(t, err)

	_, _, err = f.svc.TogglePost(context.Background(), owner, collection.ID, uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrPostNotFound)
}

func TestGetCollection_OwnerOrAdminOnly(t *testing.T) {
	f := newCollectionServiceFixture()
	owner := authFor(db_models.RoleUser)
	other := authFor(db_models.RoleUser)
	admin := authFor(db_models.RoleAdmin)

	collection, err := f.svc.CreateCollection(context.Background(), owner, request_models.CreateCollectionRequest{
		Name: "Private",
	})
	require.NoError(t, err)

	_, err = f.svc.GetCollection(context.Background(), other, collection.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = f.svc.GetCollection(context.Background(), nil, collection.ID)
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = f.svc.GetCollection(context.Background(), admin, collection.ID)
	assert.NoError(t, err)
}

func TestDeleteCollection_LeavesPostsIntact(t *testing.T) {
	f := newCollectionServiceFixture()
	owner := authFor(db_models.RoleUser)

	collection, err := f.svc.CreateCollection(context.Background(), owner, request_models.CreateCollectionRequest{
		Name: "Doomed",
	})
	require.NoError(t, err)

	post := &db_models.Post{Title: "Survivor", AuthorID: owner.UserID}
	require.NoError(t, f.posts.Insert(context.Background(), post))

	_, _, err = f.svc.TogglePost(context.Background(), owner, collection.ID, post.ID.String())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteCollection(context.Background(), owner, collection.ID))

	// membership is a reference: the post itself is untouched
	assert.Len(t, f.posts.posts, 1)
	_, err = f.svc.GetCollection(context.Background(), owner, collection.ID)
	assert.ErrorIs(t, err, utils.ErrCollectionNotFound)
}

func TestUpdateCollection_NonOwnerForbidden(t *testing.T) {
	f := newCollectionServiceFixture()
	owner := authFor(db_models.RoleUser)
	other := authFor(db_models.RoleUser)

	collection, err := f.svc.CreateCollection(context.Background(), owner, request_models.CreateCollectionRequest{
		Name: "Original",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateCollection(context.Background(), other, collection.ID, request_models.UpdateCollectionRequest{
		Name: "Renamed",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
	assert.Equal(t, "Original", f.collections.collections[uuid.MustParse(collection.ID)].Name)
}
