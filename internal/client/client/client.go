package client

import (
	"context"

	"github.com/papacapim/papacapim/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, login, password string) (models.Session, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id int64) error
	SearchPosts(ctx context.Context, search string, page int) ([]models.Post, error)
	ListReplies(ctx context.Context, postID int64) ([]models.Reply, error)
	CreateReply(ctx context.Context, postID int64, message string) (models.Reply, error)
}

// TokenSource yields the current session token, or "" when there is none.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
