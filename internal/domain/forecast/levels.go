package forecast

// Urgency prioridad de una sugerencia de reposición. Ordena la salida:
// critical → high → medium → low.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Rank posición ordinal para ordenamiento (0 = más urgente).
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyMedium:
		return 2
	default:
		return 3
	}
}

// Confidence respaldo histórico de una predicción.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Trend señal de tendencia de un cliente (ventana de 30 días vs. la anterior).
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// HealthStatus clasificación del puntaje de salud de un cliente.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusAtRisk   HealthStatus = "at-risk"
	StatusCritical HealthStatus = "critical"
)

// StatusForScore clasifica un puntaje 0-100: >=70 healthy, >=40 at-risk, resto critical.
func StatusForScore(score int) HealthStatus {
	switch {
	case score >= healthyScoreCutoff:
		return StatusHealthy
	case score >= atRiskScoreCutoff:
		return StatusAtRisk
	default:
		return StatusCritical
	}
}
