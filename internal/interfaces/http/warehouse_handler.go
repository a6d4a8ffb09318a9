package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-planchas/internal/application/usecase"
)

// WarehouseHandler expone las etiquetas de almacén (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// List godoc
// @Summary      Listar almacenes
// @Description  Etiquetas predefinidas seguidas de las que aparecen en el libro, con su uso.
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WarehouseListResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
