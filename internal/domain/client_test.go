package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientMetrics_PipelineRatio(t *testing.T) {
	tests := []struct {
		name          string
		mrr           float64
		pipelineValue float64
		expectedRatio float64
		expectedOk    bool
	}{
		{
			name:          "Cobertura calculável",
			mrr:           100000,
			pipelineValue: 400000,
			expectedRatio: 4,
			expectedOk:    true,
		},
		{
			name:          "MRR zerado - cobertura não calculável",
			mrr:           0,
			pipelineValue: 400000,
			expectedOk:    false,
		},
		{
			name:       "MRR negativo - cobertura não calculável",
			mrr:        -5000,
			expectedOk: false,
		},
		{
			name:          "Pipeline não finito",
			mrr:           1,
			pipelineValue: math.Inf(1),
			expectedOk:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := ClientMetrics{MRR: tt.mrr, PipelineValue: tt.pipelineValue}

			ratio, ok := client.PipelineRatio()
			assert.Equal(t, tt.expectedOk, ok)
			assert.Equal(t, tt.expectedRatio, ratio)
		})
	}
}

func TestClientStatus_IsValid(t *testing.T) {
	assert.True(t, StatusHealthy.IsValid())
	assert.True(t, StatusAtRisk.IsValid())
	assert.True(t, StatusCritical.IsValid())
	assert.False(t, ClientStatus("exploding").IsValid())
	assert.False(t, ClientStatus("").IsValid())
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		expected   Severity
		expectedOk bool
	}{
		{name: "Valor do enum", raw: "critical", expected: SeverityCritical, expectedOk: true},
		{name: "Maiúsculas e espaços normalizados", raw: "  Warning ", expected: SeverityWarning, expectedOk: true},
		{name: "Fora do enum", raw: "catastrophic", expectedOk: false},
		{name: "Vazio", raw: "", expectedOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			severity, ok := ParseSeverity(tt.raw)
			assert.Equal(t, tt.expectedOk, ok)
			if tt.expectedOk {
				assert.Equal(t, tt.expected, severity)
			}
		})
	}
}

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityCritical.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeveritySuccess.Rank())

	// Severidades desconhecidas vão para o fim da ordem
	assert.Greater(t, Severity("other").Rank(), SeveritySuccess.Rank())
}
