package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// ImportConfig decisiones de configuración de la importación masiva.
type ImportConfig struct {
	// ReportingCurrency moneda en la que se registran las compras de
	// importación (PEN por defecto).
	ReportingCurrency string
	// RequireExchangeRate si es true, un lote sin snapshot de tipo de
	// cambio registrado se rechaza antes de escribir; si es false la
	// línea queda sin referencia de tipo de cambio.
	RequireExchangeRate bool
	// GenericProviderName nombre del proveedor genérico para filas sin
	// proveedor explícito ("Sin Proveedor").
	GenericProviderName string
}

// ImportUseCase reconcilia un lote de filas de spreadsheet contra el
// stock existente: crea/actualiza catálogo, stock, compras y seriales
// en una pasada, dentro de una sola transacción por lote. Las filas se
// procesan en orden porque una fila posterior puede depender de que una
// anterior haya creado el mismo producto o categoría.
type ImportUseCase struct {
	txRunner     TxRunner
	storeRepo    repository.StoreRepository
	providerRepo repository.ProviderRepository
	rateRepo     repository.ExchangeRateRepository
	accounting   AccountingHook
	cfg          ImportConfig
	validate     *validator.Validate
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	txRunner TxRunner,
	storeRepo repository.StoreRepository,
	providerRepo repository.ProviderRepository,
	rateRepo repository.ExchangeRateRepository,
	accounting AccountingHook,
	cfg ImportConfig,
) *ImportUseCase {
	if cfg.ReportingCurrency == "" {
		cfg.ReportingCurrency = entity.CurrencyPEN
	}
	if cfg.GenericProviderName == "" {
		cfg.GenericProviderName = "Sin Proveedor"
	}
	return &ImportUseCase{
		txRunner:     txRunner,
		storeRepo:    storeRepo,
		providerRepo: providerRepo,
		rateRepo:     rateRepo,
		accounting:   accounting,
		cfg:          cfg,
		validate:     validator.New(),
	}
}

// parsedRow es una fila ya validada y tipada.
type parsedRow struct {
	Name          string
	Category      string
	Description   string
	PurchasePrice decimal.Decimal
	SellPrice     decimal.Decimal
	Stock         int64
	Serials       []string
}

// pendingAdjustment ajuste contable acumulado durante la transacción y
// notificado después del commit.
type pendingAdjustment struct {
	productID   string
	amount      decimal.Decimal
	description string
}

// Reconcile ingesta un lote. Una fila inválida aborta el lote completo
// con el detalle de la fila ofensora (fail-fast, sin escrituras
// parciales). Los seriales duplicados no son fatales: se acumulan y se
// devuelven junto al conteo de filas creadas. providerID vacío usa el
// proveedor genérico.
func (uc *ImportUseCase) Reconcile(
	ctx context.Context,
	rows []dto.ImportRow,
	storeID, userID, providerID string,
) (*dto.ImportResultDTO, error) {
	if storeID == "" || userID == "" || len(rows) == 0 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil || store == nil {
		return nil, domain.ErrNotFound
	}

	// Validación total antes de tocar la BD.
	parsed := make([]parsedRow, 0, len(rows))
	for i, row := range rows {
		p, err := uc.parseRow(i+1, row)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}

	// Snapshot de tipo de cambio vigente (puede no existir).
	rate, err := uc.rateRepo.GetDefault()
	if err != nil {
		return nil, err
	}
	if rate == nil && uc.cfg.RequireExchangeRate {
		return nil, fmt.Errorf("%w: no hay tipo de cambio registrado y la configuración lo exige", domain.ErrInvalidInput)
	}
	var rateID *string
	if rate != nil {
		rateID = &rate.ID
	}

	// Proveedor: explícito o el genérico (upsert idempotente por nombre).
	var provider *entity.Provider
	if providerID != "" {
		provider, err = uc.providerRepo.GetByID(providerID)
		if err != nil || provider == nil {
			return nil, domain.ErrNotFound
		}
	} else {
		provider, err = uc.providerRepo.GetOrCreateByName(uc.cfg.GenericProviderName)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	result := &dto.ImportResultDTO{
		DuplicatedSerialsLocal:  []string{},
		DuplicatedSerialsGlobal: []string{},
	}
	batchSeen := make(map[string]struct{})
	var adjustments []pendingAdjustment

	err = uc.txRunner.RunImport(ctx, func(
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
		invRepo repository.InventoryRepository,
		stockRepo repository.StoreStockRepository,
		histRepo repository.StockHistoryRepository,
		purchaseRepo repository.PurchaseRepository,
		serialRepo repository.SerialRepository,
	) error {
		for _, row := range parsed {
			// Categoría y producto por nombre exacto; los precios de un
			// producto existente nunca se pisan con los de la fila.
			category, err := categoryRepo.GetByName(row.Category)
			if err != nil {
				return err
			}
			if category == nil {
				category = &entity.Category{Name: row.Category, CreatedAt: now}
				if err := categoryRepo.Create(category); err != nil {
					return err
				}
			}
			product, err := productRepo.GetByName(row.Name)
			if err != nil {
				return err
			}
			if product == nil {
				product = &entity.Product{
					Name:          row.Name,
					Description:   row.Description,
					CategoryID:    category.ID,
					PurchasePrice: row.PurchasePrice,
					SellPrice:     row.SellPrice,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if err := productRepo.Create(product); err != nil {
					return err
				}
			}

			inv, err := invRepo.GetByProductID(product.ID)
			if err != nil {
				return err
			}
			if inv == nil {
				inv = &entity.Inventory{ProductID: product.ID, CreatedAt: now}
				if err := invRepo.Create(inv); err != nil {
					return err
				}
			}

			// Stock aditivo: importar dos veces 5 unidades deja 10.
			stock, err := stockRepo.GetForUpdate(inv.ID, storeID)
			if err != nil {
				return err
			}
			var prev int64
			if stock == nil {
				stock = &entity.StoreStock{
					InventoryID: inv.ID,
					StoreID:     storeID,
					Quantity:    row.Stock,
					UpdatedAt:   now,
				}
			} else {
				prev = stock.Quantity
				stock.Quantity += row.Stock
				stock.UpdatedAt = now
			}
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}

			entry := &entity.StockHistoryEntry{
				InventoryID:   inv.ID,
				StoreID:       storeID,
				Action:        entity.ActionImport,
				StockChange:   row.Stock,
				PreviousStock: prev,
				NewStock:      stock.Quantity,
				UserID:        userID,
				CreatedAt:     now,
			}
			if err := histRepo.Create(entry); err != nil {
				return err
			}

			// Un lote de compra por fila, en moneda de reporte, con una
			// única línea ligada al snapshot de tipo de cambio si existe.
			purchase := &entity.PurchaseEntry{
				ProviderID: provider.ID,
				StoreID:    storeID,
				UserID:     userID,
				Currency:   uc.cfg.ReportingCurrency,
				CreatedAt:  now,
			}
			if err := purchaseRepo.CreateEntry(purchase); err != nil {
				return err
			}
			line := &entity.PurchaseEntryLine{
				EntryID:        purchase.ID,
				ProductID:      product.ID,
				Quantity:       row.Stock,
				UnitPrice:      row.PurchasePrice,
				Currency:       uc.cfg.ReportingCurrency,
				UnitPriceLocal: row.PurchasePrice,
				ExchangeRateID: rateID,
				CreatedAt:      now,
			}
			if err := purchaseRepo.CreateLine(line); err != nil {
				return err
			}

			for _, s := range row.Serials {
				outcome, err := ReserveSerial(serialRepo, s, line.ID, batchSeen)
				if err != nil {
					return err
				}
				switch outcome {
				case SerialDuplicateInBatch:
					result.DuplicatedSerialsLocal = append(result.DuplicatedSerialsLocal, s)
				case SerialDuplicateGlobal:
					result.DuplicatedSerialsGlobal = append(result.DuplicatedSerialsGlobal, s)
				}
			}

			adjustments = append(adjustments, pendingAdjustment{
				productID:   product.ID,
				amount:      row.PurchasePrice.Mul(decimal.NewFromInt(row.Stock)),
				description: fmt.Sprintf("importación de %d x %s", row.Stock, row.Name),
			})
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Notificación contable best-effort, después del commit: un fallo
	// aquí se loguea y se descarta, jamás falla la importación.
	for _, adj := range adjustments {
		if hookErr := uc.accounting.PostInventoryAdjustment(adj.productID, adj.amount, "mercaderías", adj.description); hookErr != nil {
			log.Warn().Err(hookErr).Str("product_id", adj.productID).Msg("fallo el hook contable de importación")
		}
	}

	return result, nil
}

// parseRow valida y tipa una fila. rowNum es base 1, como la numeración
// que ve el operador en la hoja.
func (uc *ImportUseCase) parseRow(rowNum int, row dto.ImportRow) (parsedRow, error) {
	// Los spreadsheets llegan con formas Unicode mezcladas (NFD en
	// archivos exportados de macOS); se canonicaliza a NFC antes de
	// comparar nombres por igualdad exacta.
	row.Name = norm.NFC.String(strings.TrimSpace(row.Name))
	row.Category = norm.NFC.String(strings.TrimSpace(row.Category))
	row.Description = strings.TrimSpace(row.Description)

	if err := uc.validate.Struct(row); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return parsedRow{}, &domain.ValidationError{Row: rowNum, Field: errs[0].Field(), Reason: "campo requerido ausente"}
		}
		return parsedRow{}, &domain.ValidationError{Row: rowNum, Reason: err.Error()}
	}

	purchasePrice, err := decimal.NewFromString(strings.TrimSpace(row.PurchasePrice))
	if err != nil || purchasePrice.IsNegative() {
		return parsedRow{}, &domain.ValidationError{Row: rowNum, Field: "precioCompra", Reason: "no es un número válido"}
	}
	sellPrice := decimal.Zero
	if s := strings.TrimSpace(row.SellPrice); s != "" {
		sellPrice, err = decimal.NewFromString(s)
		if err != nil || sellPrice.IsNegative() {
			return parsedRow{}, &domain.ValidationError{Row: rowNum, Field: "precioVenta", Reason: "no es un número válido"}
		}
	}
	stock, err := strconv.ParseInt(strings.TrimSpace(row.Stock), 10, 64)
	if err != nil || stock < 0 {
		return parsedRow{}, &domain.ValidationError{Row: rowNum, Field: "stock", Reason: "no es un entero válido"}
	}

	// Seriales: separados por coma, recortados, vacíos descartados.
	var serials []string
	for _, tok := range strings.Split(row.Serials, ",") {
		tok = norm.NFC.String(strings.TrimSpace(tok))
		if tok != "" {
			serials = append(serials, tok)
		}
	}

	return parsedRow{
		Name:          row.Name,
		Category:      row.Category,
		Description:   row.Description,
		PurchasePrice: purchasePrice,
		SellPrice:     sellPrice,
		Stock:         stock,
		Serials:       serials,
	}, nil
}
