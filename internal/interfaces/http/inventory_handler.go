package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
)

// InventoryHandler maneja el libro de movimientos (protegido).
type InventoryHandler struct {
	ledger *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// List godoc
// @Summary      Historial de movimientos
// @Description  Libro completo, más reciente primero. type filtra por Ingreso o Salida; q busca en producto y almacén.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  false  "Todos | Ingreso | Salida"
// @Param        q     query  string  false  "Texto a buscar"
// @Success      200   {object}  dto.MovementListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var filter dto.MovementFilter
	if ok, err := parseQuery(c, &filter); !ok {
		return err
	}
	out, err := h.ledger.Search(c.UserContext(), GetPrincipal(c), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Append godoc
// @Summary      Registrar movimiento
// @Description  Un Ingreso con costo positivo actualiza el costo del producto.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) Append(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.ledger.Append(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Amend godoc
// @Summary      Corregir movimiento
// @Description  Solo cambian los campos enviados; tipo, producto y fecha son inmutables.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.AmendMovementRequest  true  "Campos a corregir"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [patch]
func (h *InventoryHandler) Amend(c *fiber.Ctx) error {
	var in dto.AmendMovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.ledger.Amend(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar movimiento
// @Tags         movements
// @Security     Bearer
// @Param        id  path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *InventoryHandler) Remove(c *fiber.Ctx) error {
	if err := h.ledger.Remove(c.UserContext(), GetPrincipal(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
