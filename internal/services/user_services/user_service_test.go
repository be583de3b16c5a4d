// File: internal/services/user_services/user_service_test.go
package user_services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) UploadImage(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func seedUsers(t *testing.T, svc *AuthService) []uint {
	t.Helper()
	var ids []uint
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		u, _, err := svc.Signup(context.Background(), "User "+email, email, "password123")
		require.NoError(t, err)
		ids = append(ids, u.ID)
	}
	return ids
}

func TestGetSidebarUsersExcludesCaller(t *testing.T) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(repo, testSecret, noopLogger{})
	svc := NewUserService(repo, &fakeUploader{}, noopLogger{})

	ids := seedUsers(t, authSvc)

	users, err := svc.GetSidebarUsers(context.Background(), ids[0])
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, ids[0], u.ID)
	}
}

func TestUpdateProfilePicture(t *testing.T) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(repo, testSecret, noopLogger{})
	uploader := &fakeUploader{url: "https://cdn.example.com/avatar.png"}
	svc := NewUserService(repo, uploader, noopLogger{})

	ids := seedUsers(t, authSvc)

	u, err := svc.UpdateProfilePicture(context.Background(), ids[0], "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "https://cdn.example.com/avatar.png", u.ProfilePic)
}

func TestUpdateProfilePictureRejectsEmptyPayload(t *testing.T) {
	repo := newFakeUserRepo()
	uploader := &fakeUploader{}
	svc := NewUserService(repo, uploader, noopLogger{})

	_, err := svc.UpdateProfilePicture(context.Background(), 1, "   ")
	assert.Error(t, err)
	assert.Zero(t, uploader.calls)
}

func TestUpdateProfilePictureSurfacesUploadFailure(t *testing.T) {
	repo := newFakeUserRepo()
	authSvc := NewAuthService(repo, testSecret, noopLogger{})
	uploader := &fakeUploader{err: errors.New("provider down")}
	svc := NewUserService(repo, uploader, noopLogger{})

	ids := seedUsers(t, authSvc)

	_, err := svc.UpdateProfilePicture(context.Background(), ids[0], "data:image/png;base64,AAAA")
	assert.Error(t, err)

	u, err2 := svc.GetByID(context.Background(), ids[0])
	require.NoError(t, err2)
	assert.Empty(t, u.ProfilePic)
}
