package controllers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dwellio/property-marketplace/models"
	"github.com/dwellio/property-marketplace/store"
)

type memPropertyStore struct {
	mu   sync.Mutex
	byID map[string]*models.Property
}

func newMemPropertyStore() *memPropertyStore {
	return &memPropertyStore{byID: map[string]*models.Property{}}
}

func (m *memPropertyStore) Insert(_ context.Context, p *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	if p.Likes == nil {
		p.Likes = []string{}
	}
	clone := *p
	m.byID[p.ID.Hex()] = &clone
	return nil
}

func (m *memPropertyStore) FindByID(_ context.Context, id string) (*models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *memPropertyStore) FindAll(_ context.Context) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Property{}
	for _, p := range m.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memPropertyStore) FindBySeller(_ context.Context, sellerID string) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Property{}
	for _, p := range m.byID {
		if p.SellerID == sellerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPropertyStore) Search(_ context.Context, criteria models.SearchCriteria) ([]models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Property{}
	for _, p := range m.byID {
		if matchesCriteria(p, criteria) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func matchesCriteria(p *models.Property, c models.SearchCriteria) bool {
	if c.Location != "" && p.Address.State != c.Location {
		return false
	}
	if c.Bedrooms.Set && p.NumberOfBedrooms != c.Bedrooms.Value {
		return false
	}
	if c.Bathrooms.Set && p.NumberOfBathrooms != c.Bathrooms.Value {
		return false
	}
	if c.Price.Set && p.Price > float64(c.Price.Value) {
		return false
	}
	for _, amenity := range c.Amenities {
		if !containsString(p.Amenities, amenity) {
			return false
		}
	}
	return true
}

func (m *memPropertyStore) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			p.Title, _ = value.(string)
		case "description":
			p.Description, _ = value.(string)
		case "price":
			if n, ok := value.(float64); ok {
				p.Price = n
			}
		}
	}
	return nil
}

func (m *memPropertyStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memPropertyStore) ToggleLike(_ context.Context, id, userID string) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, false, store.ErrNotFound
	}
	if containsString(p.Likes, userID) {
		p.Likes = removeString(p.Likes, userID)
		return append([]string{}, p.Likes...), false, nil
	}
	p.Likes = append(p.Likes, userID)
	return append([]string{}, p.Likes...), true, nil
}

type memUserStore struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byID: map[string]*models.User{}}
}

func (m *memUserStore) Insert(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.ID = primitive.NewObjectID()
	if u.Wishlist == nil {
		u.Wishlist = []string{}
	}
	clone := *u
	m.byID[u.ID.Hex()] = &clone
	return nil
}

func (m *memUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUserStore) ToggleWishlist(_ context.Context, userID, propertyID string) ([]string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[userID]
	if !ok {
		return nil, false, store.ErrNotFound
	}
	if containsString(u.Wishlist, propertyID) {
		u.Wishlist = removeString(u.Wishlist, propertyID)
		return append([]string{}, u.Wishlist...), false, nil
	}
	u.Wishlist = append(u.Wishlist, propertyID)
	return append([]string{}, u.Wishlist...), true, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func removeString(haystack []string, needle string) []string {
	out := haystack[:0]
	for _, s := range haystack {
		if s != needle {
			out = append(out, s)
		}
	}
	return out
}
