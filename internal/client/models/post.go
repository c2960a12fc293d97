package models

// Post is read-only from the client's point of view.
type Post struct {
	ID      int64  `json:"id"`
	Login   string `json:"user_login"`
	Message string `json:"message"`
}

// Reply is a comment attached to a post.
type Reply struct {
	ID      int64  `json:"id"`
	Login   string `json:"user_login"`
	Message string `json:"message"`
	PostID  int64  `json:"post_id,omitempty"`
}

// ReplyBody is the inner object of CreateReplyRequest.
type ReplyBody struct {
	Message string `json:"message"`
}

// CreateReplyRequest is the POST /posts/:id/replies payload.
type CreateReplyRequest struct {
	Reply ReplyBody `json:"reply"`
}
