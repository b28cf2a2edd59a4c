package ledger

import (
	"context"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	domledger "github.com/kardexapp/kardex-api/internal/domain/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// ReportUseCase agregados de solo lectura sobre el stock: totales por
// producto, productos agotados, productos por tienda, rango de precios
// de compra y seriales activos.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	purchaseRepo repository.PurchaseRepository
	serialRepo   repository.SerialRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	purchaseRepo repository.PurchaseRepository,
	serialRepo repository.SerialRepository,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		purchaseRepo: purchaseRepo,
		serialRepo:   serialRepo,
	}
}

// TotalStockByProduct suma el stock de cada producto en todas las tiendas.
func (uc *ReportUseCase) TotalStockByProduct(ctx context.Context) ([]repository.ProductStockTotal, error) {
	return uc.reportRepo.TotalStockByProduct(ctx)
}

// LowStockProducts lista los productos cuyo stock sumado en todas las
// tiendas es <= 0 (agotados).
func (uc *ReportUseCase) LowStockProducts(ctx context.Context) ([]repository.ProductStockTotal, error) {
	return uc.reportRepo.OutOfStockProducts(ctx)
}

// ProductsByStore lista los productos de una tienda, con filtro opcional
// por categoría y por existencia.
func (uc *ReportUseCase) ProductsByStore(ctx context.Context, storeID, categoryID string, onlyInStock bool) ([]repository.StoreProductRow, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.reportRepo.ProductsByStore(ctx, storeID, categoryID, onlyInStock)
}

// AggregatePurchasePriceRange devuelve el menor y mayor precio de
// compra normalizado a moneda de reporte entre todas las líneas de
// compra del producto.
func (uc *ReportUseCase) AggregatePurchasePriceRange(ctx context.Context, productID string) (*dto.PriceRangeDTO, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.purchaseRepo.ListLinesByProduct(productID)
	if err != nil {
		return nil, err
	}
	r, ok := domledger.PurchasePriceRange(lines)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dto.PriceRangeDTO{ProductID: productID, Lowest: r.Lowest, Highest: r.Highest}, nil
}

// SeriesForProductAtStore lista los seriales activos de un producto en
// una tienda.
func (uc *ReportUseCase) SeriesForProductAtStore(ctx context.Context, storeID, productID string) ([]*entity.Serial, error) {
	if storeID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.serialRepo.ListActiveByProductAndStore(storeID, productID)
}
