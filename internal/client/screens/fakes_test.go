package screens

import (
	"context"
	"sync"

	"github.com/papacapim/papacapim/internal/client/models"
)

type alert struct {
	Title   string
	Message string
}

type recordingAlerter struct {
	mu     sync.Mutex
	alerts []alert
}

func (r *recordingAlerter) Alert(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert{Title: title, Message: message})
}

func (r *recordingAlerter) all() []alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]alert(nil), r.alerts...)
}

type recordingNavigator struct {
	mu     sync.Mutex
	routes []Route
	opened []models.Post
	backs  int
}

func (n *recordingNavigator) Navigate(route Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) OpenPost(post models.Post) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.opened = append(n.opened, post)
}

func (n *recordingNavigator) GoBack() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.backs++
}

// fakeAuth implements services.AuthService.
type fakeAuth struct {
	mu sync.Mutex

	User    models.User
	HasUser bool

	LoginErr  error
	UpdateErr error
	DeleteErr error
	LogoutErr error

	LoginCalls  int
	UpdateCalls int
	DeleteCalls int
	LogoutCalls int

	LastUpdate [3]string
}

func (f *fakeAuth) Login(_ context.Context, username, _ string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	if f.LoginErr != nil {
		return models.Session{}, f.LoginErr
	}
	f.User, f.HasUser = models.User{ID: 1, Login: username}, true
	return models.Session{Token: "t1", User: f.User}, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, login, name, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastUpdate = [3]string{login, name, password}
	return f.UpdateErr
}

func (f *fakeAuth) DeleteAccount(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	return f.DeleteErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	f.User, f.HasUser = models.User{}, false
	return f.LogoutErr
}

func (f *fakeAuth) Restore(context.Context) error { return nil }

func (f *fakeAuth) CurrentUser() (models.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.User, f.HasUser
}

// fakePosts implements services.PostService. SearchFn, when set, replaces
// the canned search response.
type fakePosts struct {
	mu sync.Mutex

	SearchFn  func(ctx context.Context, query string) ([]models.Post, error)
	SearchRet []models.Post
	SearchErr error

	RepliesRet []models.Reply
	RepliesErr error

	ReplyErr error

	Searches    []string
	ReplyCalls  int
	LastMessage string
	nextReplyID int64
}

func (f *fakePosts) Search(ctx context.Context, query string) ([]models.Post, error) {
	f.mu.Lock()
	f.Searches = append(f.Searches, query)
	fn := f.SearchFn
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, query)
	}
	return f.SearchRet, f.SearchErr
}

func (f *fakePosts) searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Searches...)
}

func (f *fakePosts) Replies(context.Context, int64) ([]models.Reply, error) {
	return f.RepliesRet, f.RepliesErr
}

func (f *fakePosts) Reply(_ context.Context, postID int64, message string) (models.Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ReplyCalls++
	f.LastMessage = message
	if f.ReplyErr != nil {
		return models.Reply{}, f.ReplyErr
	}
	f.nextReplyID++
	return models.Reply{ID: 100 + f.nextReplyID, Login: "ana", Message: message, PostID: postID}, nil
}
