package model

// Series именованный числовой ряд графика.
type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// ChartData категории оси X и ряды значений.
type ChartData struct {
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

// ChartResult данные графика и признак того, что вместо реальной агрегации отдана заглушка.
type ChartResult struct {
	ChartData
	Placeholder bool   `json:"placeholder"`
	Reason      string `json:"reason,omitempty"`
}

// Trend направление изменения метрики.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Metric карточка метрики: значение, тренд и детали.
type Metric struct {
	Value      string         `json:"value"`
	Trend      Trend          `json:"trend"`
	TrendValue string         `json:"trend_value"`
	Details    map[string]any `json:"details,omitempty"`
}

// RevenueInsights все метрики страницы выручки.
type RevenueInsights struct {
	Revenue       Metric    `json:"revenue"`
	SalesCycle    Metric    `json:"sales_cycle"`
	DealValue     Metric    `json:"deal_value"`
	DealsWon      Metric    `json:"deals_won"`
	Opportunities Metric    `json:"opportunities"`
	Trends        ChartData `json:"trends"`
	Quarterly     ChartData `json:"quarterly"`
	Funnel        ChartData `json:"funnel"`
}
