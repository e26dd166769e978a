package forecast

// Umbrales heurísticos del subsistema de pronósticos. Son reglas de negocio
// existentes (promedios móviles y scoring por reglas, no modelos estadísticos);
// sus valores no deben alterarse sin revisar los contratos de la API.
const (
	// Velocidad de ventas y estacionalidad
	DefaultLookbackDays = 60  // ventana de demanda reciente por producto
	seasonalMinPoints   = 12  // mínimo de pares fecha/cantidad
	seasonalMinMonths   = 3   // mínimo de meses calendario distintos
	SeasonalFloor       = 0.5 // tope inferior del factor estacional
	SeasonalCeil        = 2.0 // tope superior del factor estacional

	// Proyección de flujo de caja
	HorizonMinDays          = 7   // horizonte mínimo aceptado
	HorizonMaxDays          = 180 // horizonte máximo aceptado
	historyWindowDays       = 90  // ventana histórica para promedios diarios
	recurringMinOccurrences = 3   // repeticiones de (tipo, monto) para considerarse recurrente
	recurringDayTolerance   = 2   // ± días contra el día-de-mes promedio del patrón
	pendingPaymentDays      = 7   // cobro estimado de órdenes PENDING
	confirmedPaymentDays    = 3   // cobro estimado de órdenes CONFIRMED
	purchaseFallbackDays    = 14  // pago estimado de OC sin fecha esperada
	lowCashRatio            = 0.2 // alerta si el saldo cae bajo 20% del actual

	// Reposición
	stockoutMaxDays      = 180 // más allá no se predice quiebre
	reorderWindowDays    = 30  // quiebre dentro de esta ventana dispara sugerencia
	supplierLeadTimeDays = 14  // lead time asumido del proveedor
	safetyStockWeeks     = 2   // colchón de seguridad en semanas de demanda
	reorderRoundTo       = 5   // redondeo del pedido al múltiplo superior
	criticalStockRatio   = 0.5 // bajo 50% del mínimo la urgencia es critical
	urgentStockoutDays   = 7   // quiebre en <7 días: high
	mediumStockoutDays   = 14  // quiebre en <14 días: medium
	confHighMinLines     = 20  // líneas históricas para confianza high
	confMediumMinLines   = 5   // líneas históricas para confianza medium

	// Salud de clientes
	healthyScoreCutoff = 70
	atRiskScoreCutoff  = 40
	trendImproveRatio  = 1.2 // recientes > 1.2× previas: improving
	trendDeclineRatio  = 0.8 // recientes < 0.8× previas: declining
)
