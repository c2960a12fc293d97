package services

import (
	"context"
	"fmt"

	"github.com/papacapim/papacapim/internal/client/client"
	"github.com/papacapim/papacapim/internal/client/models"
)

// SearchPage is the only page the search screen asks for.
const SearchPage = 0

type PostService interface {
	Search(ctx context.Context, query string) ([]models.Post, error)
	Replies(ctx context.Context, postID int64) ([]models.Reply, error)
	Reply(ctx context.Context, postID int64, message string) (models.Reply, error)
}

type postService struct {
	client client.Client
}

func NewPostService(c client.Client) PostService {
	return &postService{client: c}
}

func (p *postService) Search(ctx context.Context, query string) ([]models.Post, error) {
	posts, err := p.client.SearchPosts(ctx, query, SearchPage)
	if err != nil {
		return nil, fmt.Errorf("search posts error: %w", err)
	}
	return posts, nil
}

func (p *postService) Replies(ctx context.Context, postID int64) ([]models.Reply, error) {
	replies, err := p.client.ListReplies(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list replies error: %w", err)
	}
	return replies, nil
}

func (p *postService) Reply(ctx context.Context, postID int64, message string) (models.Reply, error) {
	reply, err := p.client.CreateReply(ctx, postID, message)
	if err != nil {
		return models.Reply{}, fmt.Errorf("create reply error: %w", err)
	}
	return reply, nil
}
