package cart

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// SessionObserver получает события корзин всех сессий.
type SessionObserver func(sessionID string, ev Event)

// Manager выдаёт корзину по id сессии. Активные корзины держатся в LRU,
// вытесненная корзина при следующем обращении восстанавливается из хранилища.
type Manager struct {
	storage   Storage
	keyPrefix string
	logger    logger.Logger

	mu        sync.Mutex
	stores    *lru.Cache[string, *Store]
	observers []SessionObserver
	loads     singleflight.Group
}

func NewManager(storage Storage, keyPrefix string, maxSessions int, logger logger.Logger) (*Manager, error) {
	const op = "cart.NewManager"

	stores, err := lru.New[string, *Store](maxSessions)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Manager{
		storage:   storage,
		keyPrefix: keyPrefix,
		logger:    logger,
		stores:    stores,
	}, nil
}

// Observe подписывает fn на корзины всех сессий, в том числе уже открытые.
func (m *Manager) Observe(fn SessionObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observers = append(m.observers, fn)
	for _, sessionID := range m.stores.Keys() {
		if store, ok := m.stores.Peek(sessionID); ok {
			m.attach(sessionID, store, fn)
		}
	}
}

// Cart возвращает корзину сессии, при необходимости восстанавливая её из хранилища.
// Чтение хранилища идёт без m.mu, одновременные обращения к одной сессии читают его один раз.
func (m *Manager) Cart(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	store, ok := m.stores.Get(sessionID)
	m.mu.Unlock()
	if ok {
		return store
	}

	v, _, _ := m.loads.Do(sessionID, func() (any, error) {
		loaded := NewStore(ctx, m.StorageKey(sessionID), m.storage, m.logger)

		m.mu.Lock()
		defer m.mu.Unlock()

		if existing, ok := m.stores.Get(sessionID); ok {
			return existing, nil
		}
		for _, fn := range m.observers {
			m.attach(sessionID, loaded, fn)
		}
		m.stores.Add(sessionID, loaded)

		return loaded, nil
	})

	return v.(*Store)
}

// StorageKey возвращает ключ хранилища для сессии: <prefix>:<session>.
func (m *Manager) StorageKey(sessionID string) string {
	return m.keyPrefix + ":" + sessionID
}

// Len возвращает число корзин, открытых в памяти.
func (m *Manager) Len() int {
	return m.stores.Len()
}

func (m *Manager) attach(sessionID string, store *Store, fn SessionObserver) {
	store.Subscribe(func(ev Event) {
		fn(sessionID, ev)
	})
}
