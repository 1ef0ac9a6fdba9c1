// Package testutil holds in-memory stand-ins for the Mongo user repository and
// the TMDB client, shared by the service and controller tests.
package testutil

import (
	"context"
	"net/url"
	"sync"
	"time"

	"netflix-clone-backend/data_access"
	"netflix-clone-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore mirrors data_access.UserRepository semantics: unique email and
// username, atomic bookmark add keyed by (content id, content type).
type MemoryStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *MemoryStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return data_access.ErrEmailTaken
		}
		if u.Username == user.Username {
			return data_access.ErrUsernameTaken
		}
	}
	user.ID = primitive.NewObjectID()
	if user.Bookmarks == nil {
		user.Bookmarks = []models.Bookmark{}
	}
	if user.SearchHistory == nil {
		user.SearchHistory = []models.SearchHistoryEntry{}
	}
	cp := clone(user)
	m.users[user.ID] = cp
	return nil
}

func (m *MemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, data_access.ErrUserNotFound
}

func (m *MemoryStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, data_access.ErrUserNotFound
	}
	return clone(u), nil
}

func (m *MemoryStore) UpdateProfile(_ context.Context, id primitive.ObjectID, changes models.UpdateProfileRequest) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, data_access.ErrUserNotFound
	}
	for otherID, other := range m.users {
		if otherID == id {
			continue
		}
		if changes.Email != nil && other.Email == *changes.Email {
			return nil, data_access.ErrEmailTaken
		}
		if changes.Username != nil && other.Username == *changes.Username {
			return nil, data_access.ErrUsernameTaken
		}
	}
	if changes.Email != nil {
		u.Email = *changes.Email
	}
	if changes.Username != nil {
		u.Username = *changes.Username
	}
	if changes.Image != nil {
		u.Image = *changes.Image
	}
	u.UpdatedAt = time.Now()
	return clone(u), nil
}

func (m *MemoryStore) AddBookmark(_ context.Context, userID primitive.ObjectID, bookmark models.Bookmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return data_access.ErrUserNotFound
	}
	for _, b := range u.Bookmarks {
		if b.ContentID == bookmark.ContentID && b.ContentType == bookmark.ContentType {
			return data_access.ErrBookmarkExists
		}
	}
	u.Bookmarks = append(u.Bookmarks, bookmark)
	return nil
}

func (m *MemoryStore) RemoveBookmark(_ context.Context, userID primitive.ObjectID, contentID int64, contentType models.ContentType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return data_access.ErrUserNotFound
	}
	kept := u.Bookmarks[:0]
	for _, b := range u.Bookmarks {
		if b.ContentID == contentID && (contentType == "" || b.ContentType == contentType) {
			continue
		}
		kept = append(kept, b)
	}
	u.Bookmarks = kept
	return nil
}

func (m *MemoryStore) AddSearchHistory(_ context.Context, userID primitive.ObjectID, entry models.SearchHistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return data_access.ErrUserNotFound
	}
	u.SearchHistory = append(u.SearchHistory, entry)
	return nil
}

func (m *MemoryStore) RemoveSearchHistory(_ context.Context, userID primitive.ObjectID, entryID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return data_access.ErrUserNotFound
	}
	kept := u.SearchHistory[:0]
	for _, e := range u.SearchHistory {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	u.SearchHistory = kept
	return nil
}

// Delete removes a user outright, as an administrator would.
func (m *MemoryStore) Delete(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

func clone(u *models.User) *models.User {
	cp := *u
	cp.Bookmarks = append([]models.Bookmark{}, u.Bookmarks...)
	cp.SearchHistory = append([]models.SearchHistoryEntry{}, u.SearchHistory...)
	return &cp
}

// Call records one request made to a StubProvider.
type Call struct {
	Path  string
	Query url.Values
}

// StubProvider serves canned TMDB responses keyed by path. Paths without a
// response answer with Err, or an empty page when Err is nil.
type StubProvider struct {
	mu       sync.Mutex
	Pages    map[string]*models.Page
	Contents map[string]models.Content
	Credits  map[string]*models.Credits
	Err      error
	Calls    []Call
}

func NewStubProvider() *StubProvider {
	return &StubProvider{
		Pages:    map[string]*models.Page{},
		Contents: map[string]models.Content{},
		Credits:  map[string]*models.Credits{},
	}
}

func (p *StubProvider) record(path string, query url.Values) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, Call{Path: path, Query: query})
}

func (p *StubProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Calls)
}

func (p *StubProvider) FetchPage(_ context.Context, path string, query url.Values) (*models.Page, error) {
	p.record(path, query)
	if page, ok := p.Pages[path]; ok {
		return page, nil
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return &models.Page{Page: 1, Results: []models.Content{}}, nil
}

func (p *StubProvider) FetchContent(_ context.Context, path string, query url.Values) (models.Content, error) {
	p.record(path, query)
	if c, ok := p.Contents[path]; ok {
		return c, nil
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return models.Content{}, nil
}

func (p *StubProvider) FetchCredits(_ context.Context, path string) (*models.Credits, error) {
	p.record(path, nil)
	if c, ok := p.Credits[path]; ok {
		return c, nil
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return &models.Credits{Cast: []models.Content{}}, nil
}

// ResultsPage builds a page holding items.
func ResultsPage(items ...models.Content) *models.Page {
	return &models.Page{Page: 1, Results: items, TotalPages: 1, TotalResults: len(items)}
}
