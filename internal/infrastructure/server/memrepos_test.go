package server

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simpletodo/api/internal/domain/entities"
)

// In-memory repositories with the same contracts as the Postgres
// implementations: unique username/email, owner-filtered task lookups,
// transactional cascade on account deletion.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
	tasks *memTaskRepo
}

func newMemUserRepo(tasks *memTaskRepo) *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entities.User), tasks: tasks}
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return entities.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return entities.ErrEmailTaken
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()

	dup := *user
	r.users[user.ID] = &dup
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		dup := *u
		return &dup, nil
	}
	return nil, entities.ErrUserNotFound
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.Email == email })
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.Username == username })
}

func (r *memUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.User, error) {
	return r.find(func(u *entities.User) bool { return u.Username == identifier || u.Email == identifier })
}

func (r *memUserRepo) DeleteWithTasks(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return entities.ErrUserNotFound
	}

	r.tasks.deleteByOwner(id)
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) find(match func(*entities.User) bool) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			dup := *u
			return &dup, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

type memTaskRepo struct {
	mu    sync.Mutex
	seq   int
	tasks map[int]*entities.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[int]*entities.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	task.ID = r.seq
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	dup := *task
	r.tasks[task.ID] = &dup
	return nil
}

func (r *memTaskRepo) GetByIDAndOwner(_ context.Context, id int, ownerID uuid.UUID) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[id]; ok && t.UserID == ownerID {
		dup := *t
		return &dup, nil
	}
	return nil, entities.ErrTaskNotFound
}

func (r *memTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*entities.Task{}
	for _, t := range r.tasks {
		if t.UserID == ownerID {
			dup := *t
			result = append(result, &dup)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memTaskRepo) Update(_ context.Context, task *entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return entities.ErrTaskNotFound
	}

	task.UpdatedAt = time.Now()
	dup := *task
	r.tasks[task.ID] = &dup
	return nil
}

func (r *memTaskRepo) DeleteByIDAndOwner(_ context.Context, id int, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tasks[id]; ok && t.UserID == ownerID {
		delete(r.tasks, id)
		return nil
	}
	return entities.ErrTaskNotFound
}

func (r *memTaskRepo) deleteByOwner(ownerID uuid.UUID) {
	for id, t := range r.tasks {
		if t.UserID == ownerID {
			delete(r.tasks, id)
		}
	}
}

func (r *memTaskRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
