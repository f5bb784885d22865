// Package cart содержит корзину покупателя: строки, мутации, производные итоги,
// сохранение в хранилище и уведомление подписчиков.
package cart

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity — верхняя граница количества в одной строке корзины.
const MaxLineQuantity = 9999

// Storage — key-value хранилище сериализованной корзины.
// Load возвращает (nil, nil), если ключа нет.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// EventKind — тип мутации корзины.
type EventKind string

const (
	ItemAdded      EventKind = "item_added"
	ItemRemoved    EventKind = "item_removed"
	ProductRemoved EventKind = "product_removed"
	CartCleared    EventKind = "cart_cleared"
)

// Snapshot — состояние корзины после мутации.
type Snapshot struct {
	Lines      []domain.CartLine
	TotalItems int
	CartTotal  decimal.Decimal
}

// Event передаётся подписчикам после каждой применённой мутации.
type Event struct {
	Kind      EventKind
	ProductID string
	Quantity  int
	Snapshot  Snapshot
}

// Observer получает события корзины. Вызывается синхронно под блокировкой корзины,
// поэтому не должен вызывать методы Store.
type Observer func(ev Event)

// Store — единственный источник правды о корзине одной сессии.
// Каждая мутация выполняет read-modify-write над текущим состоянием под мьютексом,
// затем сохраняет корзину целиком и уведомляет подписчиков.
type Store struct {
	mu        sync.Mutex
	key       string
	storage   Storage
	logger    logger.Logger
	lines     []domain.CartLine
	observers map[int]Observer
	nextObsID int
}

// NewStore создаёт корзину и восстанавливает её из хранилища.
// Ошибка чтения или повреждённые данные дают пустую корзину.
func NewStore(ctx context.Context, key string, storage Storage, logger logger.Logger) *Store {
	s := &Store{
		key:       key,
		storage:   storage,
		logger:    logger,
		observers: make(map[int]Observer),
	}
	s.lines = s.rehydrate(ctx)

	return s
}

// AddItem добавляет quantity единиц товара. quantity == 0 означает 1, отрицательное значение
// и значение больше MaxLineQuantity игнорируются. Количество в строке не превышает MaxLineQuantity.
// Товар без id игнорируется. onComplete (может быть nil) вызывается после применения, уже без блокировки.
func (s *Store) AddItem(ctx context.Context, product *domain.CatalogProduct, quantity int, onComplete func()) {
	if product == nil || product.ID == "" {
		return
	}

	quantity, ok := normalizeQuantity(quantity)
	if !ok || quantity > MaxLineQuantity {
		return
	}

	s.add(ctx, product, quantity)

	if onComplete != nil {
		onComplete()
	}
}

func (s *Store) add(ctx context.Context, product *domain.CatalogProduct, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(product.ID); i != -1 {
		s.lines[i].Quantity = capQuantity(s.lines[i].Quantity, quantity)
	} else {
		s.lines = append(s.lines, domain.NewCartLine(product, quantity))
	}

	s.commit(ctx, ItemAdded, product.ID, quantity)
}

// RemoveItem уменьшает количество товара на quantity (0 означает 1).
// Если остаток <= 0, строка удаляется. Нет строки — ничего не делает.
func (s *Store) RemoveItem(ctx context.Context, productID string, quantity int) {
	quantity, ok := normalizeQuantity(quantity)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i == -1 {
		return
	}

	if left := s.lines[i].Quantity - quantity; left > 0 {
		s.lines[i].Quantity = left
	} else {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}

	s.commit(ctx, ItemRemoved, productID, quantity)
}

// RemoveProduct удаляет строку товара целиком.
func (s *Store) RemoveProduct(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i == -1 {
		return
	}

	removed := s.lines[i].Quantity
	s.lines = append(s.lines[:i], s.lines[i+1:]...)

	s.commit(ctx, ProductRemoved, productID, removed)
}

// Clear очищает корзину.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.commit(ctx, CartCleared, "", 0)
}

// Lines возвращает копию строк корзины.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneLines(s.lines)
}

// Snapshot возвращает строки и итоги, посчитанные по одному и тому же состоянию.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// TotalItems — сумма количеств по всем строкам.
func (s *Store) TotalItems() int {
	return s.Snapshot().TotalItems
}

// CartTotal — сумма UnitPrice × Quantity по всем строкам.
func (s *Store) CartTotal() decimal.Decimal {
	return s.Snapshot().CartTotal
}

// Subscribe регистрирует подписчика и возвращает функцию отписки.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// commit сохраняет корзину и уведомляет подписчиков. Вызывается под s.mu.
func (s *Store) commit(ctx context.Context, kind EventKind, productID string, quantity int) {
	s.persist(ctx)

	if len(s.observers) == 0 {
		return
	}

	ev := Event{
		Kind:      kind,
		ProductID: productID,
		Quantity:  quantity,
		Snapshot:  s.snapshot(),
	}
	for _, obs := range s.observers {
		obs(ev)
	}
}

// persist пишет корзину целиком. Ошибка записи не фатальна: состояние в памяти остаётся главным.
func (s *Store) persist(ctx context.Context) {
	const op = "cart.Store.persist"

	data, err := encodeLines(s.lines)
	if err != nil {
		s.logger.Warnf("failed to encode cart %s: %v", s.key, e.Wrap(op, err))
		return
	}

	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.Warnf("failed to persist cart %s: %v", s.key, e.Wrap(op, err))
	}
}

func (s *Store) rehydrate(ctx context.Context) []domain.CartLine {
	const op = "cart.Store.rehydrate"

	data, err := s.storage.Load(ctx, s.key)
	if err != nil {
		s.logger.Warnf("failed to load cart %s, starting empty: %v", s.key, e.Wrap(op, err))
		return nil
	}

	lines, err := decodeLines(data)
	if err != nil {
		s.logger.Warnf("corrupt cart %s, starting empty: %v", s.key, e.Wrap(op, err))
		return nil
	}

	return lines
}

func (s *Store) snapshot() Snapshot {
	snap := Snapshot{
		Lines:     cloneLines(s.lines),
		CartTotal: decimal.Zero,
	}
	for _, l := range s.lines {
		snap.TotalItems += l.Quantity
		snap.CartTotal = snap.CartTotal.Add(l.Subtotal())
	}

	return snap
}

func (s *Store) indexOf(productID string) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}

	return -1
}

func normalizeQuantity(quantity int) (int, bool) {
	switch {
	case quantity == 0:
		return 1, true
	case quantity < 0:
		return 0, false
	default:
		return quantity, true
	}
}

// capQuantity складывает количества, не выходя за MaxLineQuantity. Оба слагаемых неотрицательны.
func capQuantity(current, delta int) int {
	if delta >= MaxLineQuantity-current {
		return MaxLineQuantity
	}

	return current + delta
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
