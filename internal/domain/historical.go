package domain

import "time"

// HistoricalDataPoint representa uma medição semanal de um cliente,
// usada para alimentar o gráfico de tendência de MRR.
// A ordenação esperada é cronológica por data.
type HistoricalDataPoint struct {
	ClientID      string    `json:"client_id"`
	Date          time.Time `json:"date"`
	MRR           float64   `json:"mrr"`
	PipelineValue float64   `json:"pipeline_value"`
	Leads         int       `json:"leads"`
	Conversions   int       `json:"conversions"`
	Activities    int       `json:"activities"`
}

// TrendPoint representa um ponto do gráfico de tendência: uma data com o MRR
// de cada cliente naquela semana, indexado por client_id.
type TrendPoint struct {
	Date time.Time          `json:"date"`
	MRR  map[string]float64 `json:"mrr"`
}
