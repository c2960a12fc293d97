package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/session"
	"github.com/papacapim/papacapim/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	LoginRet models.Session
	LoginErr error

	UpdateErr error
	DeleteErr error

	SearchRet []models.Post
	SearchErr error

	RepliesRet []models.Reply
	RepliesErr error

	ReplyRet models.Reply
	ReplyErr error

	LastLoginUser string
	LastLoginPass string
	LastUpdateID  int64
	LastUpdateReq models.UpdateUserRequest
	LastDeleteID  int64
	LastSearch    string
	LastPage      int
	LastPostID    int64
	LastMessage   string
}

func (f *fakeClient) Login(_ context.Context, login, password string) (models.Session, error) {
	f.LastLoginUser, f.LastLoginPass = login, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) UpdateUser(_ context.Context, id int64, req models.UpdateUserRequest) error {
	f.LastUpdateID, f.LastUpdateReq = id, req
	return f.UpdateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, id int64) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *fakeClient) SearchPosts(_ context.Context, search string, page int) ([]models.Post, error) {
	f.LastSearch, f.LastPage = search, page
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) ListReplies(_ context.Context, postID int64) ([]models.Reply, error) {
	f.LastPostID = postID
	return f.RepliesRet, f.RepliesErr
}

func (f *fakeClient) CreateReply(_ context.Context, postID int64, message string) (models.Reply, error) {
	f.LastPostID, f.LastMessage = postID, message
	return f.ReplyRet, f.ReplyErr
}

func newSessions(t *testing.T) (*session.Manager, *session.Store) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	return session.NewManager(store), store
}
