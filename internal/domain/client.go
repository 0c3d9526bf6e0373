package domain

import (
	"math"
	"time"
)

// ClientStatus representa a classificação de saúde de um cliente no portfólio
type ClientStatus string

const (
	StatusHealthy  ClientStatus = "healthy"
	StatusAtRisk   ClientStatus = "at-risk"
	StatusCritical ClientStatus = "critical"
)

// IsValid verifica se o status é um dos valores conhecidos
func (s ClientStatus) IsValid() bool {
	switch s {
	case StatusHealthy, StatusAtRisk, StatusCritical:
		return true
	}
	return false
}

// ClientMetrics representa o snapshot mensal de métricas de um cliente.
// client_id é único dentro de um snapshot de portfólio.
type ClientMetrics struct {
	ClientID         string       `json:"client_id"`
	ClientName       string       `json:"client_name"`
	Industry         string       `json:"industry"`
	MRR              float64      `json:"mrr"`
	PipelineValue    float64      `json:"pipeline_value"`
	LeadsCount       int          `json:"leads_count"`
	ConversionsCount int          `json:"conversions_count"`
	ConversionRate   float64      `json:"conversion_rate"`
	CAC              float64      `json:"cac"`
	GrowthRate       float64      `json:"growth_rate"`
	Status           ClientStatus `json:"status"`
	LastUpdated      time.Time    `json:"last_updated"`
}

// PipelineRatio calcula a cobertura de pipeline (pipeline_value / mrr).
// Com MRR zerado ou negativo a cobertura não é calculável: retorna (0, false)
// e as regras que dependem dela devem ser puladas para o cliente.
func (c ClientMetrics) PipelineRatio() (float64, bool) {
	if c.MRR <= 0 {
		return 0, false
	}

	ratio := c.PipelineValue / c.MRR
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, false
	}

	return ratio, true
}
