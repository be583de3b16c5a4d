// File: internal/repository/message/message_repository_test.go
package message

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abudi-09/Chat-App/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Message{}))
	return db
}

func TestCreateRequiresBody(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))

	_, err := repo.Create(context.Background(), &domain.Message{SenderID: 1, ReceiverID: 2})
	assert.Error(t, err)
}

func TestCreateAndFindByID(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Message{SenderID: 1, ReceiverID: 2, Text: "hello"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Text)
	assert.Equal(t, uint(1), found.SenderID)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestFindBetweenUsersBothDirectionsOrdered(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	for _, m := range []domain.Message{
		{SenderID: 1, ReceiverID: 2, Text: "one"},
		{SenderID: 2, ReceiverID: 1, Text: "two"},
		{SenderID: 1, ReceiverID: 2, Text: "three"},
		{SenderID: 1, ReceiverID: 3, Text: "unrelated"},
	} {
		msg := m
		_, err := repo.Create(ctx, &msg)
		require.NoError(t, err)
	}

	// Same history from either side, oldest first.
	history, err := repo.FindBetweenUsers(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "one", history[0].Text)
	assert.Equal(t, "two", history[1].Text)
	assert.Equal(t, "three", history[2].Text)

	count, err := repo.CountBetweenUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestFindBetweenUsersWithPagination(t *testing.T) {
	repo := NewMessageRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &domain.Message{SenderID: 1, ReceiverID: 2, Text: "msg"})
		require.NoError(t, err)
	}

	page, total, err := repo.FindBetweenUsersWithPagination(ctx, 1, 2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 2)

	_, _, err = repo.FindBetweenUsersWithPagination(ctx, 1, 2, 0, 0)
	assert.Error(t, err)
}
