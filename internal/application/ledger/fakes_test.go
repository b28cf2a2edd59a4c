package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/application/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba: un almacén en memoria que implementa los puertos de
// repositorio, y un TxRunner falso con snapshot/restore para emular el
// Commit/Rollback real (si fn falla, ninguna escritura sobrevive).
// ──────────────────────────────────────────────────────────────────────────────

var errForcedFailure = errors.New("fallo forzado")

type memStore struct {
	products    map[string]*entity.Product
	categories  map[string]*entity.Category
	inventories map[string]*entity.Inventory
	stocks      map[string]*entity.StoreStock // clave inventoryID|storeID
	history     []*entity.StockHistoryEntry
	transfers   []*entity.Transfer
	entries     map[string]*entity.PurchaseEntry
	lines       map[string]*entity.PurchaseEntryLine
	serials     map[string]*entity.Serial
	providers   map[string]*entity.Provider
	stores      map[string]*entity.Store
	rate        *entity.ExchangeRate

	failHistory bool // fuerza el fallo del próximo Create de historial
}

func newMemStore() *memStore {
	return &memStore{
		products:    map[string]*entity.Product{},
		categories:  map[string]*entity.Category{},
		inventories: map[string]*entity.Inventory{},
		stocks:      map[string]*entity.StoreStock{},
		entries:     map[string]*entity.PurchaseEntry{},
		lines:       map[string]*entity.PurchaseEntryLine{},
		serials:     map[string]*entity.Serial{},
		providers:   map[string]*entity.Provider{},
		stores:      map[string]*entity.Store{},
	}
}

func stockKey(inventoryID, storeID string) string { return inventoryID + "|" + storeID }

func cloneMap[V any](m map[string]*V) map[string]*V {
	out := make(map[string]*V, len(m))
	for k, v := range m {
		c := *v
		out[k] = &c
	}
	return out
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		products:    cloneMap(s.products),
		categories:  cloneMap(s.categories),
		inventories: cloneMap(s.inventories),
		stocks:      cloneMap(s.stocks),
		entries:     cloneMap(s.entries),
		lines:       cloneMap(s.lines),
		serials:     cloneMap(s.serials),
		providers:   cloneMap(s.providers),
		stores:      cloneMap(s.stores),
		failHistory: s.failHistory,
	}
	c.history = append([]*entity.StockHistoryEntry(nil), s.history...)
	c.transfers = append([]*entity.Transfer(nil), s.transfers...)
	if s.rate != nil {
		r := *s.rate
		c.rate = &r
	}
	return c
}

// Helpers de seed.

func (s *memStore) addStore(id, name string) {
	s.stores[id] = &entity.Store{ID: id, Name: name, CreatedAt: time.Now()}
}

func (s *memStore) addProduct(name string, purchasePrice, sellPrice decimal.Decimal) *entity.Product {
	p := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		PurchasePrice: purchasePrice,
		SellPrice:     sellPrice,
		CreatedAt:     time.Now(),
	}
	s.products[p.ID] = p
	return p
}

// seedStock crea (si hace falta) el inventario del producto y deja qty
// unidades en la tienda.
func (s *memStore) seedStock(productID, storeID string, qty int64) *entity.Inventory {
	var inv *entity.Inventory
	for _, i := range s.inventories {
		if i.ProductID == productID {
			inv = i
			break
		}
	}
	if inv == nil {
		inv = &entity.Inventory{ID: uuid.New().String(), ProductID: productID, CreatedAt: time.Now()}
		s.inventories[inv.ID] = inv
	}
	s.stocks[stockKey(inv.ID, storeID)] = &entity.StoreStock{
		ID:          uuid.New().String(),
		InventoryID: inv.ID,
		StoreID:     storeID,
		Quantity:    qty,
		UpdatedAt:   time.Now(),
	}
	return inv
}

func (s *memStore) seedActiveSerial(value, lineID string) {
	sr := &entity.Serial{
		ID:                  uuid.New().String(),
		Value:               value,
		PurchaseEntryLineID: lineID,
		Status:              entity.SerialStatusActive,
		CreatedAt:           time.Now(),
	}
	s.serials[sr.ID] = sr
}

// stockQty devuelve la cantidad actual para (producto, tienda), o 0.
func (s *memStore) stockQty(productID, storeID string) int64 {
	for _, inv := range s.inventories {
		if inv.ProductID == productID {
			if st, ok := s.stocks[stockKey(inv.ID, storeID)]; ok {
				return st.Quantity
			}
		}
	}
	return 0
}

// totalStock suma el stock de un producto en todas las tiendas.
func (s *memStore) totalStock(productID string) int64 {
	var total int64
	for _, inv := range s.inventories {
		if inv.ProductID != productID {
			continue
		}
		for _, st := range s.stocks {
			if st.InventoryID == inv.ID {
				total += st.Quantity
			}
		}
	}
	return total
}

// ─── Repositorios falsos ─────────────────────────────────────────────────────

type fakeProductRepo struct{ s *memStore }

func (r fakeProductRepo) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	c := *p
	r.s.products[p.ID] = &c
	return nil
}

func (r fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.s.products[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Name == name {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

type fakeCategoryRepo struct{ s *memStore }

func (r fakeCategoryRepo) Create(c *entity.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cc := *c
	r.s.categories[c.ID] = &cc
	return nil
}

func (r fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.Name == name {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

type fakeInventoryRepo struct{ s *memStore }

func (r fakeInventoryRepo) Create(inv *entity.Inventory) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	c := *inv
	r.s.inventories[inv.ID] = &c
	return nil
}

func (r fakeInventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	for _, inv := range r.s.inventories {
		if inv.ProductID == productID {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

type fakeStockRepo struct{ s *memStore }

func (r fakeStockRepo) Get(inventoryID, storeID string) (*entity.StoreStock, error) {
	if st, ok := r.s.stocks[stockKey(inventoryID, storeID)]; ok {
		c := *st
		return &c, nil
	}
	return nil, nil
}

func (r fakeStockRepo) GetForUpdate(inventoryID, storeID string) (*entity.StoreStock, error) {
	return r.Get(inventoryID, storeID)
}

func (r fakeStockRepo) Upsert(stock *entity.StoreStock) error {
	key := stockKey(stock.InventoryID, stock.StoreID)
	if prev, ok := r.s.stocks[key]; ok && stock.ID == "" {
		stock.ID = prev.ID
	}
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	c := *stock
	r.s.stocks[key] = &c
	return nil
}

type fakeHistoryRepo struct{ s *memStore }

func (r fakeHistoryRepo) Create(e *entity.StockHistoryEntry) error {
	if r.s.failHistory {
		return errForcedFailure
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	c := *e
	r.s.history = append(r.s.history, &c)
	return nil
}

func (r fakeHistoryRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.StockHistoryEntry, error) {
	var out []*entity.StockHistoryEntry
	for _, e := range r.s.history {
		if e.InventoryID == inventoryID {
			c := *e
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeTransferRepo struct{ s *memStore }

func (r fakeTransferRepo) Create(t *entity.Transfer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	c := *t
	r.s.transfers = append(r.s.transfers, &c)
	return nil
}

func (r fakeTransferRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Transfer, error) {
	var out []*entity.Transfer
	for _, t := range r.s.transfers {
		if t.SourceStoreID == storeID || t.DestinationStoreID == storeID {
			c := *t
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct{ s *memStore }

func (r fakePurchaseRepo) CreateEntry(e *entity.PurchaseEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	c := *e
	r.s.entries[e.ID] = &c
	return nil
}

func (r fakePurchaseRepo) CreateLine(l *entity.PurchaseEntryLine) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	c := *l
	r.s.lines[l.ID] = &c
	return nil
}

func (r fakePurchaseRepo) ListLinesByProduct(productID string) ([]*entity.PurchaseEntryLine, error) {
	var out []*entity.PurchaseEntryLine
	for _, l := range r.s.lines {
		if l.ProductID == productID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeSerialRepo struct{ s *memStore }

func (r fakeSerialRepo) ExistsActive(value string) (bool, error) {
	for _, sr := range r.s.serials {
		if sr.Value == value && sr.Status == entity.SerialStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeSerialRepo) Create(sr *entity.Serial) error {
	if sr.ID == "" {
		sr.ID = uuid.New().String()
	}
	c := *sr
	r.s.serials[sr.ID] = &c
	return nil
}

func (r fakeSerialRepo) ListActiveByProductAndStore(storeID, productID string) ([]*entity.Serial, error) {
	var out []*entity.Serial
	for _, sr := range r.s.serials {
		if sr.Status != entity.SerialStatusActive {
			continue
		}
		line, ok := r.s.lines[sr.PurchaseEntryLineID]
		if !ok || line.ProductID != productID {
			continue
		}
		entry, ok := r.s.entries[line.EntryID]
		if !ok || entry.StoreID != storeID {
			continue
		}
		c := *sr
		out = append(out, &c)
	}
	return out, nil
}

type fakeProviderRepo struct{ s *memStore }

func (r fakeProviderRepo) GetByID(id string) (*entity.Provider, error) {
	if p, ok := r.s.providers[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r fakeProviderRepo) GetOrCreateByName(name string) (*entity.Provider, error) {
	for _, p := range r.s.providers {
		if p.Name == name {
			c := *p
			return &c, nil
		}
	}
	p := &entity.Provider{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	r.s.providers[p.ID] = p
	c := *p
	return &c, nil
}

type fakeStoreRepo struct{ s *memStore }

func (r fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	if st, ok := r.s.stores[id]; ok {
		c := *st
		return &c, nil
	}
	return nil, nil
}

type fakeRateRepo struct{ s *memStore }

func (r fakeRateRepo) GetDefault() (*entity.ExchangeRate, error) {
	if r.s.rate == nil {
		return nil, nil
	}
	c := *r.s.rate
	return &c, nil
}

// ─── TxRunner falso con rollback por snapshot ────────────────────────────────

type fakeTxRunner struct{ s *memStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	stockRepo repository.StoreStockRepository,
	histRepo repository.StockHistoryRepository,
	transferRepo repository.TransferRepository,
) error) error {
	snap := r.s.clone()
	err := fn(fakeInventoryRepo{r.s}, fakeStockRepo{r.s}, fakeHistoryRepo{r.s}, fakeTransferRepo{r.s})
	if err != nil {
		*r.s = *snap // rollback
	}
	return err
}

func (r fakeTxRunner) RunImport(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	invRepo repository.InventoryRepository,
	stockRepo repository.StoreStockRepository,
	histRepo repository.StockHistoryRepository,
	purchaseRepo repository.PurchaseRepository,
	serialRepo repository.SerialRepository,
) error) error {
	snap := r.s.clone()
	err := fn(fakeProductRepo{r.s}, fakeCategoryRepo{r.s}, fakeInventoryRepo{r.s},
		fakeStockRepo{r.s}, fakeHistoryRepo{r.s}, fakePurchaseRepo{r.s}, fakeSerialRepo{r.s})
	if err != nil {
		*r.s = *snap // rollback
	}
	return err
}

// ─── Puertos de salida falsos ────────────────────────────────────────────────

type activityCall struct {
	ActorID, EntityType, EntityID, Action, Summary string
}

type fakeActivityLogger struct {
	calls []activityCall
	fail  bool
}

func (l *fakeActivityLogger) Log(actorID, entityType, entityID, action, summary string) error {
	if l.fail {
		return errForcedFailure
	}
	l.calls = append(l.calls, activityCall{actorID, entityType, entityID, action, summary})
	return nil
}

type accountingCall struct {
	ProductID      string
	Amount         decimal.Decimal
	CounterAccount string
	Description    string
}

type fakeAccountingHook struct {
	calls []accountingCall
	fail  bool
}

func (h *fakeAccountingHook) PostInventoryAdjustment(productID string, amount decimal.Decimal, counterAccount, description string) error {
	if h.fail {
		return errForcedFailure
	}
	h.calls = append(h.calls, accountingCall{productID, amount, counterAccount, description})
	return nil
}

// fakeReportRepo calcula los agregados directamente sobre el memStore.
type fakeReportRepo struct{ s *memStore }

func (r fakeReportRepo) TotalStockByProduct(ctx context.Context) ([]repository.ProductStockTotal, error) {
	var out []repository.ProductStockTotal
	for _, p := range r.s.products {
		out = append(out, repository.ProductStockTotal{
			ProductID:   p.ID,
			ProductName: p.Name,
			TotalStock:  r.s.totalStock(p.ID),
		})
	}
	return out, nil
}

func (r fakeReportRepo) OutOfStockProducts(ctx context.Context) ([]repository.ProductStockTotal, error) {
	all, _ := r.TotalStockByProduct(ctx)
	var out []repository.ProductStockTotal
	for _, t := range all {
		if t.TotalStock <= 0 {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeReportRepo) ProductsByStore(ctx context.Context, storeID, categoryID string, onlyInStock bool) ([]repository.StoreProductRow, error) {
	var out []repository.StoreProductRow
	for _, st := range r.s.stocks {
		if st.StoreID != storeID {
			continue
		}
		inv, ok := r.s.inventories[st.InventoryID]
		if !ok {
			continue
		}
		p, ok := r.s.products[inv.ProductID]
		if !ok {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if onlyInStock && st.Quantity <= 0 {
			continue
		}
		out = append(out, repository.StoreProductRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			CategoryID:  p.CategoryID,
			SellPrice:   p.SellPrice,
			Quantity:    st.Quantity,
		})
	}
	return out, nil
}

// Verificaciones de interfaz.
var (
	_ repository.ProductRepository      = fakeProductRepo{}
	_ repository.CategoryRepository     = fakeCategoryRepo{}
	_ repository.InventoryRepository    = fakeInventoryRepo{}
	_ repository.StoreStockRepository   = fakeStockRepo{}
	_ repository.StockHistoryRepository = fakeHistoryRepo{}
	_ repository.TransferRepository     = fakeTransferRepo{}
	_ repository.PurchaseRepository     = fakePurchaseRepo{}
	_ repository.SerialRepository       = fakeSerialRepo{}
	_ repository.ProviderRepository     = fakeProviderRepo{}
	_ repository.StoreRepository        = fakeStoreRepo{}
	_ repository.ExchangeRateRepository = fakeRateRepo{}
	_ repository.ReportRepository       = fakeReportRepo{}
	_ ledger.TxRunner                   = fakeTxRunner{}
	_ ledger.ActivityLogger             = (*fakeActivityLogger)(nil)
	_ ledger.AccountingHook             = (*fakeAccountingHook)(nil)
)

// dec es un atajo para literales decimales en los tests.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("decimal inválido en test: %q", s))
	}
	return d
}
