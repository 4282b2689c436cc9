package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"connectfit-backend/ledger"
	"connectfit-backend/models"
)

// ErrInvalidBackup is returned when an imported payload is not a JSON object
// holding valid collections. Nothing is applied in that case.
var ErrInvalidBackup = errors.New("invalid backup payload")

// Store holds the authoritative snapshot of all three collections. Every
// mutation rewrites the touched collection in full; there is no transaction
// spanning collections.
type Store struct {
	mu       sync.RWMutex
	kv       KV
	products []models.Product
	sales    []models.Sale
	expenses []models.Expense

	now   func() time.Time
	newID ledger.IDFunc
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to stamp sales and expenses.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDFunc overrides record id generation.
func WithIDFunc(f ledger.IDFunc) Option {
	return func(s *Store) {
		s.newID = f
	}
}

// New loads the collections from kv, installing the seed dataset for any
// key that is missing or unreadable.
func New(ctx context.Context, kv KV, opts ...Option) *Store {
	s := &Store{
		kv:    kv,
		now:   time.Now,
		newID: newShortID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.products = load(ctx, kv, KeyProducts, SeedProducts)
	s.sales = load(ctx, kv, KeySales, SeedSales)
	s.expenses = load(ctx, kv, KeyExpenses, SeedExpenses)
	return s
}

func newShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// load never fails: a missing key, a driver error or a malformed payload all
// fall back to the seed for that key.
func load[T any](ctx context.Context, kv KV, key string, seed func() []T) []T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		zap.L().Warn("failed to read collection, using seed data", zap.String("key", key), zap.Error(err))
		return seed()
	}
	if !ok {
		return seed()
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		zap.L().Warn("malformed collection payload, using seed data", zap.String("key", key), zap.Error(err))
		return seed()
	}
	return out
}

func save[T any](ctx context.Context, kv KV, key string, collection []T) error {
	if collection == nil {
		collection = []T{}
	}
	data, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		zap.L().Error("failed to persist collection", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyProducts()
}

func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Sale{}, s.sales...)
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense{}, s.expenses...)
}

// copyProducts must be called with s.mu held.
func (s *Store) copyProducts() []models.Product {
	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Product returns a copy of the product with the given id.
func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

// SaveProduct creates or replaces a product from the form.
func (s *Store) SaveProduct(ctx context.Context, form ledger.ProductForm) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, next, err := ledger.UpsertProduct(s.products, form, s.newID)
	if err != nil {
		return models.Product{}, err
	}
	s.products = next
	return p, save(ctx, s.kv, KeyProducts, s.products)
}

// DeleteProduct removes the product. Historical sales are kept as they are.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ledger.DeleteProduct(s.products, id)
	if err != nil {
		return err
	}
	s.products = next
	return save(ctx, s.kv, KeyProducts, s.products)
}

// RecordSale appends the sale and decrements stock as two separate persisted
// writes. A failure between them leaves the collections inconsistent.
func (s *Store) RecordSale(ctx context.Context, productID string, quantity int) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale, products, err := ledger.RecordSale(s.products, productID, quantity, s.now().UTC(), s.newID)
	if err != nil {
		return models.Sale{}, err
	}
	s.sales = append(s.sales, sale)
	s.products = products
	if err := save(ctx, s.kv, KeySales, s.sales); err != nil {
		return sale, err
	}
	return sale, save(ctx, s.kv, KeyProducts, s.products)
}

func (s *Store) RecordExpense(ctx context.Context, form ledger.ExpenseForm) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense, err := ledger.RecordExpense(form, s.now().UTC(), s.newID)
	if err != nil {
		return models.Expense{}, err
	}
	s.expenses = append(s.expenses, expense)
	return expense, save(ctx, s.kv, KeyExpenses, s.expenses)
}

// ExportSnapshot returns the backup document. All three collections are read
// under one lock so the document never mixes states.
func (s *Store) ExportSnapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		Products:   s.copyProducts(),
		Sales:      append([]models.Sale{}, s.sales...),
		Expenses:   append([]models.Expense{}, s.expenses...),
		ExportDate: s.now().UTC().Format(time.RFC3339),
	}
}

// ImportResult lists which collections an import replaced.
type ImportResult struct {
	Products bool `json:"products"`
	Sales    bool `json:"sales"`
	Expenses bool `json:"expenses"`
}

// ImportSnapshot applies a backup. Each collection key present in the object
// replaces that collection wholesale; unknown keys are ignored. The payload
// is fully decoded before anything is applied.
func (s *Store) ImportSnapshot(ctx context.Context, payload []byte) (ImportResult, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil || doc == nil {
		return ImportResult{}, ErrInvalidBackup
	}

	var (
		res      ImportResult
		products []models.Product
		sales    []models.Sale
		expenses []models.Expense
	)
	var err error
	if res.Products, err = decodeKey(doc, "products", &products); err != nil {
		return ImportResult{}, ErrInvalidBackup
	}
	if res.Sales, err = decodeKey(doc, "sales", &sales); err != nil {
		return ImportResult{}, ErrInvalidBackup
	}
	if res.Expenses, err = decodeKey(doc, "expenses", &expenses); err != nil {
		return ImportResult{}, ErrInvalidBackup
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if res.Products {
		s.products = products
		errs = append(errs, save(ctx, s.kv, KeyProducts, s.products))
	}
	if res.Sales {
		s.sales = sales
		errs = append(errs, save(ctx, s.kv, KeySales, s.sales))
	}
	if res.Expenses {
		s.expenses = expenses
		errs = append(errs, save(ctx, s.kv, KeyExpenses, s.expenses))
	}
	return res, errors.Join(errs...)
}

// decodeKey reports whether key is present with a non-null value and decodes
// it into dst.
func decodeKey[T any](doc map[string]json.RawMessage, key string, dst *[]T) (bool, error) {
	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	if *dst == nil {
		*dst = []T{}
	}
	return true, nil
}
