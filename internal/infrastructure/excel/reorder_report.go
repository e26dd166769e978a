package excel

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/retailflow-erp/internal/application/dto"
	"github.com/xuri/excelize/v2"
)

// BuildReorderWorkbook arma el libro .xlsx con las sugerencias de reposición,
// una fila por producto, para que compras lo trabaje fuera del sistema.
func BuildReorderWorkbook(res *dto.ReorderSuggestionsDTO) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"SKU",
		"Producto",
		"Stock actual",
		"Stock mínimo",
		"Velocidad (u/sem)",
		"Quiebre previsto",
		"Cantidad sugerida",
		"Urgencia",
		"Confianza",
		"Factor estacional",
		"Razones",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	for i, s := range res.Suggestions {
		stockout := ""
		if s.PredictedStockoutDate != nil {
			stockout = *s.PredictedStockoutDate
		}
		row := []interface{}{
			s.ProductSKU,
			s.ProductName,
			s.CurrentStock,
			s.MinStock,
			s.SalesVelocity,
			stockout,
			s.SuggestedQuantity,
			s.Urgency,
			s.Confidence,
			s.SeasonalFactor,
			strings.Join(s.Reasoning, "; "),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	return f, nil
}
