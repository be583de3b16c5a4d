// File: internal/repository/conversation/conversation_repository_test.go
package conversation

import (
	"context"
	"path/filepath"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Message{}, &domain.Conversation{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{FullName: name, Email: email, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestCreateDirectAndFindOrderIndependent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	created, err := repo.CreateDirect(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, created.Participants, 2)
	assert.Equal(t, domain.ConversationTypeDM, created.Type)

	// Lookup matches regardless of which side asks.
	found, err := repo.FindDirectByParticipants(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.True(t, found.IsParticipant(alice.ID))
	assert.True(t, found.IsParticipant(bob.ID))
}

func TestFindDirectByParticipantsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	_, err := repo.FindDirectByParticipants(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

// A conversation containing both users plus a third must never satisfy the
// pair lookup, even if its type column says dm.
func TestThreePartyConversationNeverMatchesPairLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	carol := createTestUser(t, db, "Carol", "carol@example.com")

	corrupt := &domain.Conversation{
		Type:         domain.ConversationTypeDM,
		Participants: []domain.User{*alice, *bob, *carol},
	}
	require.NoError(t, db.Omit("Participants.*").Create(corrupt).Error)

	_, err := repo.FindDirectByParticipants(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	// Creating the real pair conversation afterwards works and is the one
	// the lookup returns.
	created, err := repo.CreateDirect(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	found, err := repo.FindDirectByParticipants(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Len(t, found.Participants, 2)
}

func TestCreateDirectRejectsSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)

	alice := createTestUser(t, db, "Alice", "alice@example.com")

	_, err := repo.CreateDirect(context.Background(), alice.ID, alice.ID)
	assert.Error(t, err)
}

func TestUpdateSnapshotOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	conv, err := repo.CreateDirect(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	firstAt := time.Now().Add(-time.Minute).UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateSnapshot(ctx, conv.ID, domain.LastMessage{Text: "first", CreatedAt: firstAt}))

	secondAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateSnapshot(ctx, conv.ID, domain.LastMessage{Text: "second", Image: "https://cdn.example.com/a.png", CreatedAt: secondAt}))

	reloaded, err := repo.FindByIDWithParticipants(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", reloaded.LastMessage.Text)
	assert.Equal(t, "https://cdn.example.com/a.png", reloaded.LastMessage.Image)
	assert.True(t, reloaded.LastMessage.CreatedAt.Equal(secondAt))
}

func TestUpdateSnapshotUnknownConversation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)

	err := repo.UpdateSnapshot(context.Background(), 9999, domain.LastMessage{Text: "x", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestFindByUserIDOrdersByLastActivity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConversationRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")
	carol := createTestUser(t, db, "Carol", "carol@example.com")

	withBob, err := repo.CreateDirect(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	withCarol, err := repo.CreateDirect(ctx, alice.ID, carol.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateSnapshot(ctx, withBob.ID, domain.LastMessage{Text: "old", CreatedAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, repo.UpdateSnapshot(ctx, withCarol.ID, domain.LastMessage{Text: "new", CreatedAt: time.Now()}))

	convs, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, withCarol.ID, convs[0].ID)
	assert.Equal(t, withBob.ID, convs[1].ID)

	// Carol only sees her own conversation.
	convs, err = repo.FindByUserID(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, withCarol.ID, convs[0].ID)
}
