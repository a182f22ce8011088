package handler

import (
	"context"
	"sort"
	"strings"
	"time"

	"main/config"
	"main/model"
	"main/repository"
)

func testConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Port:            "8080",
		BaseURL:         "http://localhost:8080",
		SessionDuration: 24 * time.Hour,
		SessionIdleMax:  48 * time.Hour,
		CookieSecure:    false,
		MaxBodyBytes:    1 << 20,
	}
}

type memUserStore struct {
	users map[string]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*model.User{}}
}

func (s *memUserStore) AddUser(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	cp := *user
	s.users[user.UserID] = &cp
	return nil
}

func (s *memUserStore) FindUser(_ context.Context, userID string) (*model.User, error) {
	if u, ok := s.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *memUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) FindUserByConfirmationToken(_ context.Context, token string) (*model.User, error) {
	for _, u := range s.users {
		if u.ConfirmationToken != "" && u.ConfirmationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) MarkUserVerified(_ context.Context, userID string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.IsVerified = true
	u.ConfirmationToken = ""
	return nil
}

type memMailer struct {
	sent []string
}

func (m *memMailer) SendConfirmationEmail(_ *model.User, confirmationURL string) error {
	m.sent = append(m.sent, confirmationURL)
	return nil
}

type memCategoryStore struct {
	categories map[string]*model.Category
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{categories: map[string]*model.Category{}}
}

func (s *memCategoryStore) CreateCategory(_ context.Context, category *model.Category) error {
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *memCategoryStore) GetCategory(_ context.Context, categoryID, userID string) (*model.Category, error) {
	if c, ok := s.categories[categoryID]; ok && c.UserID == userID {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (s *memCategoryStore) GetCategoryByName(_ context.Context, userID, name string) (*model.Category, error) {
	for _, c := range s.categories {
		if c.UserID == userID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memCategoryStore) GetUserCategories(_ context.Context, userID string) ([]*model.Category, error) {
	var out []*model.Category
	for _, c := range s.categories {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memCategoryStore) UpdateCategoryName(_ context.Context, categoryID, userID, name string) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return model.ErrNotFound
	}
	c.Name = name
	return nil
}

func (s *memCategoryStore) DeleteCategory(_ context.Context, categoryID, userID string) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return model.ErrNotFound
	}
	delete(s.categories, categoryID)
	return nil
}

type memNoteStore struct {
	notes map[string]*model.Note
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{notes: map[string]*model.Note{}}
}

func (s *memNoteStore) CreateNote(_ context.Context, note *model.Note) error {
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *memNoteStore) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	if n, ok := s.notes[noteID]; ok && n.UserID == userID {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (s *memNoteStore) FindNotes(_ context.Context, opts repository.SearchOptions) ([]*model.Note, error) {
	out := []*model.Note{}
	for _, n := range s.notes {
		if n.UserID != opts.UserID {
			continue
		}
		if opts.Search != "" {
			needle := strings.ToLower(opts.Search)
			if !strings.Contains(strings.ToLower(n.Title), needle) &&
				!strings.Contains(strings.ToLower(n.Content), needle) {
				continue
			}
		}
		if opts.Status != "" && n.Status != opts.Status {
			continue
		}
		if opts.CategoryID != "" && n.CategoryID != opts.CategoryID {
			continue
		}
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (s *memNoteStore) UpdateNote(_ context.Context, note *model.Note) error {
	n, ok := s.notes[note.ID]
	if !ok || n.UserID != note.UserID {
		return model.ErrNotFound
	}
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *memNoteStore) DeleteNote(_ context.Context, noteID, userID string) error {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return model.ErrNotFound
	}
	delete(s.notes, noteID)
	return nil
}

func (s *memNoteStore) ClearCategoryRefs(_ context.Context, userID, categoryID string) (int64, error) {
	var cleared int64
	for _, n := range s.notes {
		if n.UserID == userID && n.CategoryID == categoryID {
			n.CategoryID = ""
			cleared++
		}
	}
	return cleared, nil
}

type memSessionRepo struct {
	sessions map[string]*model.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*model.Session{}}
}

func (s *memSessionRepo) CreateSession(session *model.Session) error {
	cp := *session
	s.sessions[session.SessionID] = &cp
	return nil
}

func (s *memSessionRepo) GetSession(sessionID string) (*model.Session, error) {
	if sess, ok := s.sessions[sessionID]; ok {
		cp := *sess
		return &cp, nil
	}
	return nil, nil
}

func (s *memSessionRepo) UpdateSession(session *model.Session) error {
	if _, ok := s.sessions[session.SessionID]; !ok {
		return model.ErrNotFound
	}
	cp := *session
	s.sessions[session.SessionID] = &cp
	return nil
}

func (s *memSessionRepo) DeleteSession(sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func (s *memSessionRepo) GetUserActiveSessions(userID string) ([]*model.Session, error) {
	var out []*model.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.IsActive {
			cp := *sess
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastActivityAt.After(out[j].LastActivityAt)
	})
	return out, nil
}

func (s *memSessionRepo) DeleteUserSessions(userID string) error {
	for id, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, id)
		}
	}
	return nil
}
