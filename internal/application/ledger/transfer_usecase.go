package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kardexapp/kardex-api/internal/application/dto"
	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// TransferUseCase mueve N unidades de un producto de una tienda a otra
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. En un traslado exitoso la suma de stock del producto
// entre todas las tiendas no cambia, y las dos entradas de historial
// cuadran exactamente con el delta aplicado.
type TransferUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	activity    ActivityLogger
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	activity ActivityLogger,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		activity:    activity,
	}
}

// TransferInputDTO entrada para un traslado entre tiendas.
type TransferInputDTO struct {
	SourceStoreID      string
	DestinationStoreID string
	ProductID          string
	Quantity           int64
	UserID             string
	Description        string
}

// Transfer ejecuta el traslado. Precondiciones: Quantity > 0, tiendas
// distintas y existentes, y stock suficiente en origen; si alguna
// falla no se escribe nada. Dentro de la transacción: resta en origen,
// suma (o crea) en destino, crea el hecho Transfer y agrega las dos
// entradas de historial. La bitácora de actividad se emite después del
// commit y sus fallos se descartan.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInputDTO) (*dto.TransferResultDTO, error) {
	if input.Quantity <= 0 || input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.SourceStoreID == "" || input.DestinationStoreID == "" || input.SourceStoreID == input.DestinationStoreID {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	src, _ := uc.storeRepo.GetByID(input.SourceStoreID)
	dst, _ := uc.storeRepo.GetByID(input.DestinationStoreID)
	if src == nil || dst == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	result := &dto.TransferResultDTO{}

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		stockRepo repository.StoreStockRepository,
		histRepo repository.StockHistoryRepository,
		transferRepo repository.TransferRepository,
	) error {
		inv, err := invRepo.GetByProductID(input.ProductID)
		if err != nil {
			return err
		}
		if inv == nil {
			// El producto nunca recibió stock: equivale a stock 0 en origen.
			return domain.ErrInsufficientStock
		}

		// Bloquea la fila de origen para serializar traslados
		// concurrentes sobre el mismo (producto, tienda).
		origin, err := stockRepo.GetForUpdate(inv.ID, input.SourceStoreID)
		if err != nil {
			return err
		}
		if origin == nil || origin.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		prevOrigin := origin.Quantity
		origin.Quantity -= input.Quantity
		origin.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}

		// Destino: suma si existe, si no crea la fila con la cantidad
		// trasladada (primer stock del producto en esa tienda).
		dest, err := stockRepo.GetForUpdate(inv.ID, input.DestinationStoreID)
		if err != nil {
			return err
		}
		var prevDest int64
		if dest == nil {
			dest = &entity.StoreStock{
				InventoryID: inv.ID,
				StoreID:     input.DestinationStoreID,
				Quantity:    input.Quantity,
				UpdatedAt:   now,
			}
		} else {
			prevDest = dest.Quantity
			dest.Quantity += input.Quantity
			dest.UpdatedAt = now
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}

		transfer := &entity.Transfer{
			ProductID:          input.ProductID,
			SourceStoreID:      input.SourceStoreID,
			DestinationStoreID: input.DestinationStoreID,
			Quantity:           input.Quantity,
			Description:        input.Description,
			UserID:             input.UserID,
			CreatedAt:          now,
		}
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}

		// Dos entradas de historial en la misma transacción: la salida
		// en origen y la entrada en destino.
		out := &entity.StockHistoryEntry{
			InventoryID:   inv.ID,
			StoreID:       input.SourceStoreID,
			Action:        entity.ActionTransferOut,
			StockChange:   -input.Quantity,
			PreviousStock: prevOrigin,
			NewStock:      origin.Quantity,
			UserID:        input.UserID,
			CreatedAt:     now,
		}
		if err := histRepo.Create(out); err != nil {
			return err
		}
		in := &entity.StockHistoryEntry{
			InventoryID:   inv.ID,
			StoreID:       input.DestinationStoreID,
			Action:        entity.ActionTransferIn,
			StockChange:   input.Quantity,
			PreviousStock: prevDest,
			NewStock:      dest.Quantity,
			UserID:        input.UserID,
			CreatedAt:     now,
		}
		if err := histRepo.Create(in); err != nil {
			return err
		}

		result.TransferID = transfer.ID
		result.SourceStock = origin.Quantity
		result.DestinationStock = dest.Quantity
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Bitácora best-effort fuera de la transacción.
	summary := fmt.Sprintf("traslado de %d x %s de la tienda %s a la tienda %s",
		input.Quantity, product.Name, input.SourceStoreID, input.DestinationStoreID)
	if logErr := uc.activity.Log(input.UserID, "transfer", result.TransferID, "transfer", summary); logErr != nil {
		log.Warn().Err(logErr).Str("transfer_id", result.TransferID).Msg("no se pudo registrar la bitácora del traslado")
	}

	return result, nil
}
