// Package store holds the catalog state container: the single in-memory
// source of truth for products, branches, carts and favorites. Every
// catalog mutation is written through to the snapshot repo before the
// call returns; a failed write keeps memory authoritative and raises a
// user-visible warning instead of failing the operation.
package store

import (
	"encoding/json"
	"log"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"automall/internal/catalog"
	"automall/internal/domain"
	"automall/internal/repos"
)

// Snapshots is the durable storage the store writes through to.
// Satisfied by *repos.SnapshotRepo.
type Snapshots interface {
	Load(key string) ([]byte, error)
	Save(key string, body []byte) error
}

// CatalogStore is built once at startup and injected into handlers; it
// is never a package-level singleton. All methods are safe for
// concurrent use and atomic with respect to each other.
type CatalogStore struct {
	mu    sync.RWMutex
	snaps Snapshots

	products []domain.Product
	branches []domain.Branch
	carts    map[string][]domain.CartItem
	favs     map[string]map[string]bool // session id -> favorite product ids

	storageWarn bool
	now         func() time.Time
}

func NewCatalogStore(snaps Snapshots, seedProducts []domain.Product, seedBranches []domain.Branch) *CatalogStore {
	s := &CatalogStore{
		snaps:    snaps,
		branches: append([]domain.Branch(nil), seedBranches...),
		carts:    map[string][]domain.CartItem{},
		favs:     map[string]map[string]bool{},
		now:      time.Now,
	}
	s.products = loadProducts(snaps, seedProducts)
	return s
}

// loadProducts restores the last snapshot, falling back to the seed list
// when none exists or the blob does not parse. A bad blob is logged and
// treated exactly like absence.
func loadProducts(snaps Snapshots, seed []domain.Product) []domain.Product {
	body, err := snaps.Load(repos.ProductsKey)
	if err != nil {
		log.Printf("[store] snapshot load failed, using seed catalog: %v", err)
		return append([]domain.Product(nil), seed...)
	}
	if body == nil {
		return append([]domain.Product(nil), seed...)
	}
	var products []domain.Product
	if err := json.Unmarshal(body, &products); err != nil {
		log.Printf("[store] malformed snapshot, using seed catalog: %v", err)
		return append([]domain.Product(nil), seed...)
	}
	return products
}

// ---------- products ----------

func (s *CatalogStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *CatalogStore) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CreateProduct prepends a placeholder product with a timestamp-derived
// id and returns it for immediate editing.
func (s *CatalogStore) CreateProduct() domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Product{
		ID:          "new-" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:        "NUEVO PRODUCTO",
		Brand:       "Marca",
		Price:       0,
		Condition:   domain.ConditionNew,
		Stock:       0,
		Images:      []string{"https://picsum.photos/seed/new/800/600"},
		Description: "Descripción del nuevo producto...",
		SKU:         "SKU-" + strconv.Itoa(rand.Intn(10000)),
		Category:    "motores",
	}
	s.products = append([]domain.Product{p}, s.products...)
	s.persistProducts()
	return p
}

// UpdateProduct replaces the product with a matching id. A miss is a
// tolerated no-op (callers derive the argument from an existing record)
// and reports false so the caller can log it.
func (s *CatalogStore) UpdateProduct(updated domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == updated.ID {
			s.products[i] = updated
			s.persistProducts()
			return true
		}
	}
	return false
}

// DeleteProduct removes the product by id. The yes/no confirmation gate
// lives at the handler; the store itself is unconditional.
func (s *CatalogStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persistProducts()
			return true
		}
	}
	return false
}

// Reorder moves sourceID to targetID's position, keeping every other
// product in relative order. Self-drops and unknown ids are no-ops.
func (s *CatalogStore) Reorder(sourceID, targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved, ok := catalog.MoveByID(s.products, sourceID, targetID)
	if !ok {
		return false
	}
	s.products = moved
	s.persistProducts()
	return true
}

// ExportSnapshot serializes the catalog as a seed-file literal for a
// human to copy out and commit as the new baseline.
func (s *CatalogStore) ExportSnapshot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, err := json.MarshalIndent(s.products, "", "  ")
	if err != nil {
		return ""
	}
	return "var seedProducts = " + string(body) + "\n"
}

// persistProducts writes the catalog through to durable storage. Caller
// holds the write lock. Failure latches the storage warning; the next
// successful write clears it.
func (s *CatalogStore) persistProducts() {
	body, err := json.Marshal(s.products)
	if err != nil {
		log.Printf("[store] snapshot marshal failed: %v", err)
		return
	}
	if err := s.snaps.Save(repos.ProductsKey, body); err != nil {
		log.Printf("[store] snapshot save failed, session stays in memory: %v", err)
		s.storageWarn = true
		return
	}
	s.storageWarn = false
}

// StorageWarning reports whether the last write-through failed, so the
// UI can tell the user their edits are not durably persisted.
func (s *CatalogStore) StorageWarning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.storageWarn
}

// ---------- cart (per session, in memory only) ----------

// AddToCart merges by product id: a repeat add increments the existing
// line's quantity rather than duplicating it.
func (s *CatalogStore) AddToCart(sid string, p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sid]
	for i, it := range items {
		if it.ID == p.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[sid] = append(items, domain.CartItem{Product: p, Quantity: 1})
}

// RemoveFromCart drops the whole line regardless of quantity.
func (s *CatalogStore) RemoveFromCart(sid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[sid]
	for i, it := range items {
		if it.ID == productID {
			s.carts[sid] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (s *CatalogStore) Cart(sid string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.carts[sid]...)
}

// ---------- favorites (per session, persisted) ----------

// ToggleFavorite adds the id if absent and removes it if present,
// reporting the new membership. The set is written through under the
// session's favorites key.
func (s *CatalogStore) ToggleFavorite(sid, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.favoritesLocked(sid)
	var nowFav bool
	if set[productID] {
		delete(set, productID)
	} else {
		set[productID] = true
		nowFav = true
	}
	s.persistFavorites(sid, set)
	return nowFav
}

func (s *CatalogStore) IsFavorite(sid, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favoritesLocked(sid)[productID]
}

// FavoriteProducts lists the favorited products in catalog order.
func (s *CatalogStore) FavoriteProducts(sid string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.favoritesLocked(sid)
	var out []domain.Product
	for _, p := range s.products {
		if set[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (s *CatalogStore) FavoriteSet(sid string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.favoritesLocked(sid)
	out := make(map[string]bool, len(set))
	for id := range set {
		out[id] = true
	}
	return out
}

// favoritesLocked returns the session's set, restoring it from the
// snapshot repo on first access. Caller holds the write lock.
func (s *CatalogStore) favoritesLocked(sid string) map[string]bool {
	if set, ok := s.favs[sid]; ok {
		return set
	}
	set := map[string]bool{}
	body, err := s.snaps.Load(repos.FavoritesKeyPrefix + sid)
	if err == nil && body != nil {
		var idList []string
		if jsonErr := json.Unmarshal(body, &idList); jsonErr != nil {
			log.Printf("[store] malformed favorites snapshot for %s: %v", sid, jsonErr)
		} else {
			for _, id := range idList {
				set[id] = true
			}
		}
	}
	s.favs[sid] = set
	return set
}

// persistFavorites writes the whole set as-is: an id that has left the
// catalog stays favorited, matching the in-memory state.
func (s *CatalogStore) persistFavorites(sid string, set map[string]bool) {
	idList := make([]string, 0, len(set))
	for id := range set {
		idList = append(idList, id)
	}
	sort.Strings(idList)
	body, err := json.Marshal(idList)
	if err != nil {
		return
	}
	if err := s.snaps.Save(repos.FavoritesKeyPrefix+sid, body); err != nil {
		log.Printf("[store] favorites save failed for %s: %v", sid, err)
		s.storageWarn = true
		return
	}
	s.storageWarn = false
}

// ---------- branches (session only, not persisted) ----------

func (s *CatalogStore) Branches() []domain.Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Branch(nil), s.branches...)
}

func (s *CatalogStore) Branch(id string) (domain.Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.branches {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Branch{}, false
}

// UpdateBranch replaces the branch with a matching id. Branch edits are
// deliberately session-only: the seed list is the durable source.
func (s *CatalogStore) UpdateBranch(updated domain.Branch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.branches {
		if b.ID == updated.ID {
			s.branches[i] = updated
			return true
		}
	}
	return false
}
