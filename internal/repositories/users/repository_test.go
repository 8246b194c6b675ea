package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/askpro/internal/common"
	"github.com/dmitrijs2005/askpro/internal/ids"
	"github.com/dmitrijs2005/askpro/internal/kvstore"
	"github.com/dmitrijs2005/askpro/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedAllocator() *ids.Allocator {
	return ids.New(ids.WithClock(func() time.Time {
		return time.Date(2025, 3, 9, 12, 0, 0, 0, time.Local)
	}))
}

func newRepo(t *testing.T, opts ...Option) *Repository {
	t.Helper()
	r := New(append([]Option{WithAllocator(fixedAllocator())}, opts...)...)
	require.NoError(t, r.Initialize(context.Background()))
	return r
}

func TestInitialize_Seed(t *testing.T) {
	r := newRepo(t)
	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "john_doe", all[0].Username)
	assert.Equal(t, "jane_smith", all[1].Username)
	assert.Equal(t, "code_wizard", all[2].Username)
}

func TestFindByCredential(t *testing.T) {
	r := newRepo(t)

	tests := []struct {
		name       string
		identifier string
		secret     string
		wantID     int64
		wantOK     bool
	}{
		{"by username", "john_doe", "password123", 1, true},
		{"by email", "jane@example.com", "mypass456", 2, true},
		{"wrong secret", "john_doe", "password", 0, false},
		{"case sensitive", "John_Doe", "password123", 0, false},
		{"unknown", "nobody", "password123", 0, false},
		{"secret of another user", "john_doe", "wizard789", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := r.FindByCredential(tt.identifier, tt.secret)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, u.ID)
			} else {
				assert.Nil(t, u)
			}
		})
	}
}

func TestFindByHandleAndID(t *testing.T) {
	r := newRepo(t)

	u, ok := r.FindByHandle("code_wizard")
	require.True(t, ok)
	assert.Equal(t, int64(3), u.ID)

	_, ok = r.FindByHandle("code_wizard ")
	assert.False(t, ok)

	u, ok = r.FindByID(2)
	require.True(t, ok)
	assert.Equal(t, "jane_smith", u.Username)

	_, ok = r.FindByID(42)
	assert.False(t, ok)
}

func TestFind_ReturnsCopy(t *testing.T) {
	r := newRepo(t)
	u, _ := r.FindByHandle("john_doe")
	u.FullName = "mutated"

	again, _ := r.FindByHandle("john_doe")
	assert.Equal(t, "John Doe", again.FullName)
}

func TestExistsByHandleOrEmail(t *testing.T) {
	r := newRepo(t)
	assert.True(t, r.ExistsByHandleOrEmail("john_doe", "x@example.com"))
	assert.True(t, r.ExistsByHandleOrEmail("someone", "wizard@example.com"))
	assert.False(t, r.ExistsByHandleOrEmail("someone", "someone@example.com"))
}

func TestCreate_Success(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	u, err := r.Create(ctx, "alice", "alice@x.io", "secret1", "Alice")
	require.NoError(t, err)

	want := models.User{
		ID:           4,
		Username:     "alice",
		Email:        "alice@x.io",
		Password:     "secret1",
		FullName:     "Alice",
		Bio:          models.WelcomeBio,
		ProfileImage: models.DefaultAvatar,
		Joined:       "2025-03-09",
	}
	assert.Equal(t, want, *u)

	got, ok := r.FindByCredential("alice@x.io", "secret1")
	require.True(t, ok)
	assert.Equal(t, int64(4), got.ID)
	assert.Len(t, r.All(), 4)
}

func TestCreate_Duplicate(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, "john_doe", "new@example.com", "whatever", "Dup")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "username or email already exists")

	_, err = r.Create(ctx, "new_handle", "john@example.com", "whatever", "Dup")
	require.ErrorIs(t, err, common.ErrAlreadyExists)

	assert.Len(t, r.All(), 3)
}

func TestCreate_IDIsMaxPlusOne(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	a, err := r.Create(ctx, "a", "a@x", "secret", "A")
	require.NoError(t, err)
	b, err := r.Create(ctx, "b", "b@x", "secret", "B")
	require.NoError(t, err)

	assert.Equal(t, int64(4), a.ID)
	assert.Equal(t, int64(5), b.ID)
}

func TestInitialize_NonPersistentForgetsSignups(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	r := newRepo(t)
	_, err := r.Create(ctx, "alice", "alice@x.io", "secret1", "Alice")
	require.NoError(t, err)

	keys, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	again := newRepo(t)
	_, ok := again.FindByHandle("alice")
	assert.False(t, ok)
}

func TestPersistence_SurvivesReload(t *testing.T) {
	store := kvstore.NewMemoryStore()
	ctx := context.Background()

	r := newRepo(t, WithPersistence(store))
	_, err := r.Create(ctx, "alice", "alice@x.io", "secret1", "Alice")
	require.NoError(t, err)

	reloaded := newRepo(t, WithPersistence(store))
	u, ok := reloaded.FindByCredential("alice", "secret1")
	require.True(t, ok)
	assert.Equal(t, int64(4), u.ID)
}

func TestPersistence_SeedsAbsentAndMalformed(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		newRepo(t, WithPersistence(store))

		var stored []models.User
		found, err := kvstore.ReadJSON(ctx, store, kvstore.KeyUsers, &stored)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, Seed(), stored)
	})

	t.Run("malformed", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, kvstore.KeyUsers, []byte("{not json")))

		r := newRepo(t, WithPersistence(store))
		assert.Len(t, r.All(), 3)

		var stored []models.User
		_, err := kvstore.ReadJSON(ctx, store, kvstore.KeyUsers, &stored)
		require.NoError(t, err)
		assert.Len(t, stored, 3)
	})
	t.Run("null", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		require.NoError(t, store.Set(ctx, kvstore.KeyUsers, []byte("null")))

		r := newRepo(t, WithPersistence(store))
		assert.Len(t, r.All(), 3)
		_, ok := r.FindByCredential("john_doe", "password123")
		assert.True(t, ok)

		var stored []models.User
		_, err := kvstore.ReadJSON(ctx, store, kvstore.KeyUsers, &stored)
		require.NoError(t, err)
		assert.Equal(t, Seed(), stored)
	})
}
