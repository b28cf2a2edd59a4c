package dto

import "github.com/shopspring/decimal"

// TransferRequest solicitud de traslado de stock entre tiendas.
type TransferRequest struct {
	SourceStoreID      string `json:"source_store_id" validate:"required"`
	DestinationStoreID string `json:"destination_store_id" validate:"required"`
	ProductID          string `json:"product_id" validate:"required"`
	Quantity           int64  `json:"quantity" validate:"required,gt=0"`
	Description        string `json:"description,omitempty"`
}

// TransferResultDTO resumen de un traslado exitoso.
type TransferResultDTO struct {
	TransferID       string `json:"transfer_id"`
	SourceStock      int64  `json:"source_stock"`      // stock resultante en origen
	DestinationStock int64  `json:"destination_stock"` // stock resultante en destino
}

// ImportRow es una fila de importación masiva ya parseada del
// spreadsheet, con los valores numéricos aún como texto (así llegan de
// la hoja). Se valida una sola vez en el borde, fail-fast.
type ImportRow struct {
	Name          string `json:"nombre" validate:"required"`
	Category      string `json:"categoria" validate:"required"`
	Description   string `json:"descripcion,omitempty"`
	PurchasePrice string `json:"precioCompra" validate:"required"`
	SellPrice     string `json:"precioVenta,omitempty"`
	Stock         string `json:"stock" validate:"required"`
	Serials       string `json:"serie,omitempty"` // lista separada por comas
}

// ImportResultDTO resumen de una importación reconciliada.
// Los seriales duplicados no son fatales: se devuelven en listas
// separadas porque la remediación del operador es distinta (corregir el
// archivo vs. investigar un posible doble registro).
type ImportResultDTO struct {
	Created                 int      `json:"created"`
	DuplicatedSerialsLocal  []string `json:"duplicated_serials_local"`
	DuplicatedSerialsGlobal []string `json:"duplicated_serials_global"`
}

// PriceRangeDTO rango de precios de compra normalizados de un producto.
type PriceRangeDTO struct {
	ProductID string          `json:"product_id"`
	Lowest    decimal.Decimal `json:"lowest"`
	Highest   decimal.Decimal `json:"highest"`
}
