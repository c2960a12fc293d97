package screens

import (
	"context"
	"strings"
	"sync"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/services"
	"github.com/papacapim/papacapim/internal/logging"
)

// Comments shows a post with its replies and lets the user reply. The reply
// list is replaced on Mount and only appended to afterwards.
type Comments struct {
	posts  services.PostService
	alerts Alerter
	logger logging.Logger
	post   models.Post

	mu      sync.Mutex
	replies []models.Reply
	input   string
}

func NewComments(post models.Post, posts services.PostService, alerts Alerter, logger logging.Logger) *Comments {
	return &Comments{
		post:   post,
		posts:  posts,
		alerts: alerts,
		logger: logger.With("screen", "comments", "post_id", post.ID),
	}
}

func (c *Comments) Post() models.Post { return c.post }

// Mount fetches the replies of the post.
func (c *Comments) Mount(ctx context.Context) error {
	replies, err := c.posts.Replies(ctx, c.post.ID)
	if err != nil {
		c.logger.Error(ctx, "fetching replies failed", "error", err)
		c.alerts.Alert(TitleError, describe(err, MsgSessionExpired, MsgRepliesFailed))
		return err
	}

	c.mu.Lock()
	c.replies = replies
	c.mu.Unlock()
	return nil
}

func (c *Comments) SetInput(v string) {
	c.mu.Lock()
	c.input = v
	c.mu.Unlock()
}

func (c *Comments) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Replies returns a copy of the replies on display.
func (c *Comments) Replies() []models.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Reply(nil), c.replies...)
}

// Submit posts the input as typed. Whitespace-only input is rejected with a
// warning. On success the returned reply is appended and the input cleared.
func (c *Comments) Submit(ctx context.Context) error {
	message := c.Input()
	if strings.TrimSpace(message) == "" {
		c.alerts.Alert(TitleWarning, MsgEmptyReply)
		return ErrValidation
	}

	reply, err := c.posts.Reply(ctx, c.post.ID, message)
	if err != nil {
		c.logger.Error(ctx, "adding reply failed", "error", err)
		c.alerts.Alert(TitleError, describe(err, MsgSessionExpired, MsgReplyFailed))
		return err
	}

	c.mu.Lock()
	c.replies = append(c.replies, reply)
	c.input = ""
	c.mu.Unlock()
	return nil
}
