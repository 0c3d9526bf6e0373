package domain

// PortfolioData é o snapshot completo do portfólio mantido em memória durante
// a sessão. É construído por inteiro por um adaptador de dados (gerador de
// demonstração ou importação de planilha) e substitui qualquer snapshot
// anterior; o núcleo de análise apenas lê e produz visões derivadas.
type PortfolioData struct {
	Clients    []ClientMetrics       `json:"clients"`
	Historical []HistoricalDataPoint `json:"historical_data"`
	Deals      []Deal                `json:"deals"`
}

// PortfolioSummary agrega os KPIs exibidos no topo do dashboard
type PortfolioSummary struct {
	TotalMRR          float64 `json:"total_mrr"`
	TotalPipeline     float64 `json:"total_pipeline"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
	CriticalClients   int     `json:"critical_clients"`
	ClientCount       int     `json:"client_count"`
}

// SortMode define os critérios de ordenação de clientes aceitos pelo dashboard
type SortMode string

const (
	SortByPerformance SortMode = "performance"
	SortByMRR         SortMode = "mrr"
	SortByGrowth      SortMode = "growth"
	SortByName        SortMode = "name"
)

// IsValid verifica se o modo de ordenação é conhecido
func (m SortMode) IsValid() bool {
	switch m {
	case SortByPerformance, SortByMRR, SortByGrowth, SortByName:
		return true
	}
	return false
}
