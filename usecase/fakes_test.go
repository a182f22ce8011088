package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"main/model"
	"main/repository"
)

// In-memory doubles for the store interfaces. They mirror the documented
// repository contracts: lookups return (nil, nil) when nothing matches.

type fakeUserStore struct {
	users  map[string]*model.User // keyed by user id
	addErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

func (s *fakeUserStore) AddUser(_ context.Context, user *model.User) error {
	if s.addErr != nil {
		return s.addErr
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	cp := *user
	s.users[user.UserID] = &cp
	return nil
}

func (s *fakeUserStore) FindUser(_ context.Context, userID string) (*model.User, error) {
	if u, ok := s.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindUserByConfirmationToken(_ context.Context, token string) (*model.User, error) {
	for _, u := range s.users {
		if u.ConfirmationToken != "" && u.ConfirmationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) MarkUserVerified(_ context.Context, userID string) error {
	u, ok := s.users[userID]
	if !ok {
		return model.ErrNotFound
	}
	u.IsVerified = true
	u.ConfirmationToken = ""
	return nil
}

type fakeMailer struct {
	sent []string // confirmation URLs, in dispatch order
	err  error
}

func (m *fakeMailer) SendConfirmationEmail(_ *model.User, confirmationURL string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, confirmationURL)
	return nil
}

type fakeCategoryStore struct {
	categories map[string]*model.Category // keyed by category id
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: map[string]*model.Category{}}
}

func (s *fakeCategoryStore) CreateCategory(_ context.Context, category *model.Category) error {
	for _, c := range s.categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return model.ErrDuplicateCategory
		}
	}
	cp := *category
	s.categories[category.ID] = &cp
	return nil
}

func (s *fakeCategoryStore) GetCategory(_ context.Context, categoryID, userID string) (*model.Category, error) {
	if c, ok := s.categories[categoryID]; ok && c.UserID == userID {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeCategoryStore) GetCategoryByName(_ context.Context, userID, name string) (*model.Category, error) {
	for _, c := range s.categories {
		if c.UserID == userID && c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeCategoryStore) GetUserCategories(_ context.Context, userID string) ([]*model.Category, error) {
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

func (s *fakeCategoryStore) UpdateCategoryName(_ context.Context, categoryID, userID, name string) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return model.ErrNotFound
	}
	c.Name = name
	return nil
}

func (s *fakeCategoryStore) DeleteCategory(_ context.Context, categoryID, userID string) error {
	c, ok := s.categories[categoryID]
	if !ok || c.UserID != userID {
		return model.ErrNotFound
	}
	delete(s.categories, categoryID)
	return nil
}

type fakeNoteStore struct {
	notes map[string]*model.Note // keyed by note id
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: map[string]*model.Note{}}
}

func (s *fakeNoteStore) CreateNote(_ context.Context, note *model.Note) error {
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *fakeNoteStore) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	if n, ok := s.notes[noteID]; ok && n.UserID == userID {
		cp := *n
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeNoteStore) FindNotes(_ context.Context, opts repository.SearchOptions) ([]*model.Note, error) {
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

func (s *fakeNoteStore) UpdateNote(_ context.Context, note *model.Note) error {
	n, ok := s.notes[note.ID]
	if !ok || n.UserID != note.UserID {
		return model.ErrNotFound
	}
	cp := *note
	s.notes[note.ID] = &cp
	return nil
}

func (s *fakeNoteStore) DeleteNote(_ context.Context, noteID, userID string) error {
	n, ok := s.notes[noteID]
	if !ok || n.UserID != userID {
		return model.ErrNotFound
	}
	delete(s.notes, noteID)
	return nil
}

func (s *fakeNoteStore) ClearCategoryRefs(_ context.Context, userID, categoryID string) (int64, error) {
	var cleared int64
	for _, n := range s.notes {
		if n.UserID == userID && n.CategoryID == categoryID {
			n.CategoryID = ""
			cleared++
		}
	}
	return cleared, nil
}

var errStoreDown = errors.New("store unavailable")
