package forecast

import "time"

// SalePoint par fecha/cantidad de una línea de venta confirmada, embarcada o
// entregada. Es el insumo de la velocidad de ventas y de la estacionalidad.
type SalePoint struct {
	Date     time.Time
	Quantity int
}

// WeeklyVelocity calcula la demanda semanal promedio de un producto:
// unidades vendidas dentro de la ventana de lookback divididas por el número
// de semanas de la ventana. Sin ventas devuelve 0, no un error.
func WeeklyVelocity(sales []SalePoint, now time.Time, lookbackDays int) float64 {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	cutoff := now.AddDate(0, 0, -lookbackDays)

	total := 0
	for _, s := range sales {
		if !s.Date.Before(cutoff) {
			total += s.Quantity
		}
	}

	weeks := float64(lookbackDays) / 7.0
	if weeks < 1 {
		weeks = 1
	}
	return float64(total) / weeks
}

// SeasonalFactor estima el multiplicador de demanda del mes calendario actual
// relativo al promedio de todos los meses con ventas. Requiere al menos 12
// puntos históricos y 3 meses distintos representados; con menos datos
// devuelve 1.0 (neutral). El resultado se recorta a [0.5, 2.0] para evitar
// oscilaciones extremas con datos dispersos.
func SeasonalFactor(history []SalePoint, now time.Time) float64 {
	if len(history) < seasonalMinPoints {
		return 1.0
	}

	byMonth := make(map[time.Month][]int)
	for _, s := range history {
		m := s.Date.Month()
		byMonth[m] = append(byMonth[m], s.Quantity)
	}
	if len(byMonth) < seasonalMinMonths {
		return 1.0
	}

	currentMonth := byMonth[now.Month()]
	currentSum := 0
	for _, q := range currentMonth {
		currentSum += q
	}
	avgCurrent := float64(currentSum) / float64(max(1, len(currentMonth)))

	totalSum, totalCount := 0, 0
	for _, qs := range byMonth {
		for _, q := range qs {
			totalSum += q
			totalCount++
		}
	}
	overallAvg := float64(totalSum) / float64(totalCount)
	if overallAvg == 0 {
		return 1.0
	}

	ratio := avgCurrent / overallAvg
	if ratio < SeasonalFloor {
		return SeasonalFloor
	}
	if ratio > SeasonalCeil {
		return SeasonalCeil
	}
	return ratio
}
