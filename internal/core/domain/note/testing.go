package note

import (
	"context"
	"sync"
)

type TestNoteRepository struct {
	CreateError error
	Created     []CreateInput

	GetByIDError error
	GetByIDNote  Note
	GetByIDWith  []ID

	ReadError error
	ReadNotes []Note
	ReadWith  []ReadOptions

	CountError  error
	CountResult uint
	CountWith   []ReadOptions

	UpdateError error
	UpdateNote  Note
	UpdatedWith []UpdateInput

	DeleteError error
	DeletedIDs  []ID

	lock sync.Mutex
}

func NewTestNoteRepository() *TestNoteRepository {
	return &TestNoteRepository{}
}

func (r *TestNoteRepository) Create(ctx context.Context, input CreateInput) (n Note, err error) {
	if r.CreateError != nil {
		return n, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Created = append(r.Created, input)
	n.ID = ID(len(r.Created))
	n.Title = input.Title
	n.Content = input.Content
	n.CreatedAt = input.CreatedAt
	n.UpdatedAt = input.CreatedAt
	return n, nil
}

func (r *TestNoteRepository) GetByID(ctx context.Context, id ID) (n Note, err error) {
	if r.GetByIDError != nil {
		return n, r.GetByIDError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.GetByIDWith = append(r.GetByIDWith, id)
	return r.GetByIDNote, nil
}

func (r *TestNoteRepository) Read(ctx context.Context, options ReadOptions) ([]Note, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	return r.ReadNotes, nil
}

func (r *TestNoteRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CountWith = append(r.CountWith, options)
	return r.CountResult, nil
}

func (r *TestNoteRepository) Update(ctx context.Context, input UpdateInput) (n Note, err error) {
	if r.UpdateError != nil {
		return n, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UpdatedWith = append(r.UpdatedWith, input)
	n = r.UpdateNote
	n.ID = input.ID
	if input.DoTitleUpdate {
		n.Title = input.Title
	}
	if input.DoContentUpdate {
		n.Content = input.Content
	}
	n.UpdatedAt = input.UpdatedAt
	return n, nil
}

func (r *TestNoteRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.DeletedIDs = append(r.DeletedIDs, id)
	return nil
}

type TestEventPublisher struct {
	Error     error
	Published []Event
	lock      sync.Mutex
}

func NewTestEventPublisher() *TestEventPublisher {
	return &TestEventPublisher{}
}

func (p *TestEventPublisher) Publish(ctx context.Context, event Event) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, event)
	return nil
}
