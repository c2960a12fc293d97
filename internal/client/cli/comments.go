package cli

import (
	"context"
	"fmt"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/screens"
)

// Comments shows a post with its replies. Every line typed is posted as a
// reply, exactly as typed; "/back" returns to the search.
func (a *App) Comments(ctx context.Context, post models.Post) error {
	scr := screens.NewComments(post, a.postService, a, a.logger)

	fmt.Fprintf(a.out, "@%s: %s\n", post.Login, post.Message)
	if err := scr.Mount(ctx); err == nil {
		a.printReplies(scr.Replies())
	}

	for {
		line, err := GetRawLine(a.reader, "reply> ", a.out)
		if err != nil {
			return err
		}
		if line == "/back" {
			return nil
		}

		scr.SetInput(line)
		before := len(scr.Replies())
		if err := scr.Submit(ctx); err != nil {
			continue
		}
		a.printReplies(scr.Replies()[before:])
	}
}

func (a *App) printReplies(replies []models.Reply) {
	for _, r := range replies {
		fmt.Fprintf(a.out, "  @%s: %s\n", r.Login, r.Message)
	}
}
