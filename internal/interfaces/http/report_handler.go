package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-planchas/internal/application/dto"
	"github.com/jhoicas/inventario-planchas/internal/application/inventory"
)

// ReportHandler maneja los reportes de Ingreso, Salida y Diferencia.
type ReportHandler struct {
	uc *inventory.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Build godoc
// @Summary      Reporte de movimientos
// @Description  Sin fecha inicial o final (y sin all=true) responde generated=false, no error.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type   query  string  true   "Ingreso | Salida | Diferencia"
// @Param        start  query  string  false  "Fecha inicial AAAA-MM-DD"
// @Param        end    query  string  false  "Fecha final AAAA-MM-DD"
// @Param        all    query  bool    false  "Histórico completo"
// @Success      200    {object}  dto.ReportResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Build(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	out, err := h.uc.Build(c.UserContext(), GetPrincipal(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        type    query  string  true   "Ingreso | Salida | Diferencia"
// @Param        start   query  string  false  "Fecha inicial AAAA-MM-DD"
// @Param        end     query  string  false  "Fecha final AAAA-MM-DD"
// @Param        all     query  bool    false  "Histórico completo"
// @Param        format  query  string  false  "pdf | xlsx"  default(pdf)
// @Success      200     {file}    file
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	file, err := h.uc.Export(c.UserContext(), GetPrincipal(c), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	return c.Send(file.Content)
}
