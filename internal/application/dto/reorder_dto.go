package dto

// ReorderSuggestionDTO sugerencia de reposición para un producto.
type ReorderSuggestionDTO struct {
	ProductID             string   `json:"productId"`
	ProductSKU            string   `json:"productSku"`
	ProductName           string   `json:"productName"`
	CurrentStock          int      `json:"currentStock"`
	MinStock              int      `json:"minStock"`
	SalesVelocity         float64  `json:"salesVelocity"`         // unidades por semana, 1 decimal
	PredictedStockoutDate *string  `json:"predictedStockoutDate"` // YYYY-MM-DD o null
	SuggestedQuantity     int      `json:"suggestedQuantity"`
	Reasoning             []string `json:"reasoning"`
	Urgency               string   `json:"urgency"`    // critical|high|medium|low
	Confidence            string   `json:"confidence"` // high|medium|low
	SeasonalFactor        float64  `json:"seasonalFactor"` // 0.5-2.0, 2 decimales
}

// ReorderSummaryDTO conteo de sugerencias por urgencia.
type ReorderSummaryDTO struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// ReorderSuggestionsDTO respuesta completa de GET /api/inventory/reorder-suggestions.
type ReorderSuggestionsDTO struct {
	Suggestions []ReorderSuggestionDTO `json:"suggestions"`
	Summary     ReorderSummaryDTO      `json:"summary"`
}
