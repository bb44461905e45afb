package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/storelane/commerce-api/internal/core/domain"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, page, limit int) ([]*domain.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*domain.User
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	for otherID, other := range r.users {
		if otherID != id && other.Email == email {
			return domain.ErrEmailExists
		}
	}
	u.Name = name
	u.Email = email
	return nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) SetRefreshToken(_ context.Context, id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *stubUserRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.RefreshToken = ""
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubProductRepo is an in-memory ports.ProductRepository.
type stubProductRepo struct {
	mu                  sync.Mutex
	products            map[string]*domain.Product
	nextID              int
	deactivatedCreators []string
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	copy := cloneProduct(p)
	copy.ID = "product-" + strconv.Itoa(r.nextID)
	r.products[copy.ID] = cloneProduct(copy)
	return cloneProduct(copy), nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Product
	for _, p := range r.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !p.Active {
			continue
		}
		matched = append(matched, cloneProduct(p))
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *stubProductRepo) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) DeactivateByCreator(_ context.Context, creatorID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deactivatedCreators = append(r.deactivatedCreators, creatorID)
	var n int64
	for _, p := range r.products {
		if p.CreatedBy == creatorID && p.Active {
			p.Active = false
			n++
		}
	}
	return n, nil
}

// stubAuditPublisher records published events.
type stubAuditPublisher struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (p *stubAuditPublisher) Publish(event domain.AuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *stubAuditPublisher) actions() []domain.AuditAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}
