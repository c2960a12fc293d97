package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/papacapim/papacapim/internal/client/models"
	"github.com/papacapim/papacapim/internal/client/screens"
)

// Search runs the search screen. Every line typed is treated as the new
// content of the search box; an empty line clears the results.
//
//	/open N   show the replies of result N
//	/back     leave the search
func (a *App) Search(ctx context.Context, query string) error {
	a.resetNav()
	scr := screens.NewSearchPosts(a.postService, a, a, a.logger)

	if query != "" {
		if err := scr.OnChange(ctx, query); err == nil {
			a.printResults(scr.Results())
		}
	}

	for {
		line, err := GetRawLine(a.reader, "search> ", a.out)
		if err != nil {
			return err
		}

		switch {
		case line == "/back":
			return nil

		case strings.HasPrefix(line, "/open"):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "/open")))
			if err != nil {
				fmt.Fprintln(a.out, "Usage: /open <number>")
				continue
			}
			if err := scr.Select(n - 1); err != nil {
				fmt.Fprintln(a.out, err)
				continue
			}
			if a.opened != nil {
				post := *a.opened
				a.opened = nil
				if err := a.Comments(ctx, post); err != nil {
					return err
				}
				a.printResults(scr.Results())
			}

		default:
			if err := scr.OnChange(ctx, line); err != nil {
				continue
			}
			a.printResults(scr.Results())
		}
	}
}

func (a *App) printResults(posts []models.Post) {
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts")
		return
	}
	for i, p := range posts {
		fmt.Fprintf(a.out, "%3d. @%s: %s\n", i+1, p.Login, p.Message)
	}
}
