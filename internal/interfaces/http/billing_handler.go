package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/MrRohit-01/barcode-stock-system/internal/application/billing"
	"github.com/MrRohit-01/barcode-stock-system/internal/application/dto"
	"github.com/MrRohit-01/barcode-stock-system/internal/domain"
)

// BillingHandler maneja el checkout, la consulta de ventas y el recibo PDF.
type BillingHandler struct {
	checkoutUC *billing.CheckoutUseCase
	receiptUC  *billing.ReceiptUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(checkoutUC *billing.CheckoutUseCase, receiptUC *billing.ReceiptUseCase) *BillingHandler {
	return &BillingHandler{checkoutUC: checkoutUC, receiptUC: receiptUC}
}

// CreateTransaction godoc
// @Summary      Registrar venta (checkout)
// @Description  Valida el carrito, descuenta stock de forma atómica, registra los movimientos y persiste la venta. Los totales los calcula el servidor.
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Carrito, cliente opcional y método de pago"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/billing/transaction [post]
func (h *BillingHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.CreateTransaction(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito, cantidades o método de pago inválidos"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para uno o más productos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto de la venta no encontrado"})
		case domain.ErrUnauthorized:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "cajero no identificado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTransaction godoc
// @Summary      Obtener venta por número o ID
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Número (TXN...) o ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/transaction/{id} [get]
func (h *BillingHandler) GetTransaction(c *fiber.Ctx) error {
	ref := c.Params("id")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.checkoutUC.GetTransaction(c.UserContext(), ref)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Listar ventas
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/billing/transactions [get]
func (h *BillingHandler) ListTransactions(c *fiber.Ctx) error {
	limit, offset := dto.ClampPage(c.QueryInt("limit", 0), c.QueryInt("offset", 0))
	out, err := h.checkoutUC.ListTransactions(c.UserContext(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadReceipt godoc
// @Summary      Descargar recibo PDF de una venta
// @Tags         billing
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Número (TXN...) o ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/transaction/{id}/receipt [get]
func (h *BillingHandler) DownloadReceipt(c *fiber.Ctx) error {
	ref := c.Params("id")
	if ref == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, filename, err := h.receiptUC.DownloadReceipt(c.UserContext(), ref)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
