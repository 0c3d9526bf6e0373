package insighting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/infrastructure/integrator/gemini/mocks"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func insightWith(severity domain.Severity, title string) domain.Insight {
	return domain.Insight{
		Severity: severity,
		Client:   "Acme Co",
		Title:    title,
		Message:  title + " message",
	}
}

func TestMergeInsights(t *testing.T) {
	tests := []struct {
		name         string
		rule         []domain.Insight
		supplemental []domain.Insight
		limit        int
		validate     func(t *testing.T, merged []domain.Insight)
	}{
		{
			name: "Ordenação por severidade - critical antes de warning antes de success",
			rule: []domain.Insight{
				insightWith(domain.SeveritySuccess, "S1"),
				insightWith(domain.SeverityCritical, "C1"),
				insightWith(domain.SeverityWarning, "W1"),
			},
			limit: 7,
			validate: func(t *testing.T, merged []domain.Insight) {
				require.Len(t, merged, 3)
				assert.Equal(t, "C1", merged[0].Title)
				assert.Equal(t, "W1", merged[1].Title)
				assert.Equal(t, "S1", merged[2].Title)
			},
		},
		{
			name: "Estabilidade - regras vêm antes de suplementos de mesma severidade",
			rule: []domain.Insight{
				insightWith(domain.SeverityWarning, "rule-W1"),
				insightWith(domain.SeverityWarning, "rule-W2"),
			},
			supplemental: []domain.Insight{
				insightWith(domain.SeverityWarning, "supp-W1"),
				insightWith(domain.SeverityCritical, "supp-C1"),
			},
			limit: 7,
			validate: func(t *testing.T, merged []domain.Insight) {
				require.Len(t, merged, 4)
				assert.Equal(t, "supp-C1", merged[0].Title)
				assert.Equal(t, "rule-W1", merged[1].Title)
				assert.Equal(t, "rule-W2", merged[2].Title)
				assert.Equal(t, "supp-W1", merged[3].Title)
			},
		},
		{
			name: "Truncamento ao limite de exibição",
			rule: []domain.Insight{
				insightWith(domain.SeverityCritical, "C1"),
				insightWith(domain.SeverityCritical, "C2"),
				insightWith(domain.SeverityCritical, "C3"),
				insightWith(domain.SeverityWarning, "W1"),
				insightWith(domain.SeverityWarning, "W2"),
				insightWith(domain.SeverityWarning, "W3"),
				insightWith(domain.SeveritySuccess, "S1"),
			},
			supplemental: []domain.Insight{
				insightWith(domain.SeveritySuccess, "supp-S1"),
				insightWith(domain.SeveritySuccess, "supp-S2"),
			},
			limit: 7,
			validate: func(t *testing.T, merged []domain.Insight) {
				require.Len(t, merged, 7)
				assert.Equal(t, "S1", merged[6].Title)
			},
		},
		{
			name: "Menos insights que o limite - lista inteira preservada",
			rule: []domain.Insight{
				insightWith(domain.SeverityWarning, "W1"),
			},
			limit: 7,
			validate: func(t *testing.T, merged []domain.Insight) {
				assert.Len(t, merged, 1)
			},
		},
		{
			name:  "Ambas as fontes vazias",
			limit: 7,
			validate: func(t *testing.T, merged []domain.Insight) {
				assert.Empty(t, merged)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, MergeInsights(tt.rule, tt.supplemental, tt.limit))
		})
	}
}

func TestService_GenerateInsights(t *testing.T) {
	clients := []domain.ClientMetrics{
		buildClient("LegacyTech Corp", -18.9, 125000, 150000, 2, domain.StatusCritical),
		buildClient("RocketGrowth AI", 24.7, 85000, 382500, 8, domain.StatusHealthy),
		buildClient("A", 5, 50000, 150000, 5, domain.StatusHealthy),
		buildClient("B", 5, 50000, 150000, 5, domain.StatusHealthy),
		buildClient("C", 5, 50000, 150000, 5, domain.StatusHealthy),
	}

	tests := []struct {
		name             string
		withSupplemental bool
		setupMock        func(mock *mocks.MockSupplementalInsighter)
		validate         func(t *testing.T, insights []domain.Insight)
	}{
		{
			name:             "Fonte suplementar desligada - mock nunca é chamado",
			withSupplemental: false,
			setupMock:        func(mock *mocks.MockSupplementalInsighter) {},
			validate: func(t *testing.T, insights []domain.Insight) {
				require.NotEmpty(t, insights)
				for _, insight := range insights {
					assert.NotEqual(t, "AI Insight", insight.Title)
				}
			},
		},
		{
			name:             "Fonte suplementar mesclada ao resultado das regras",
			withSupplemental: true,
			setupMock: func(mock *mocks.MockSupplementalInsighter) {
				mock.EXPECT().FetchSupplementalInsights(gomock.Any(), clients).Return([]domain.Insight{
					{
						Severity: domain.SeverityWarning,
						Client:   "RocketGrowth AI",
						Title:    "AI Insight",
						Message:  "Pipeline concentration risk detected",
					},
				}, nil)
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				titles := make([]string, 0, len(insights))
				for _, insight := range insights {
					titles = append(titles, insight.Title)
				}
				assert.Contains(t, titles, "AI Insight")
			},
		},
		{
			name:             "Falha da fonte suplementar - segue apenas com as regras",
			withSupplemental: true,
			setupMock: func(mock *mocks.MockSupplementalInsighter) {
				mock.EXPECT().FetchSupplementalInsights(gomock.Any(), clients).
					Return(nil, errors.New("gemini indisponível"))
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				require.NotEmpty(t, insights)
				assert.Equal(t, MergeInsights(GenerateRuleBasedInsights(clients), nil, 7), insights)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock := mocks.NewMockSupplementalInsighter(ctrl)
			tt.setupMock(mock)

			cfg := &config.Config{}
			cfg.Insights.DisplayLimit = 7

			service := NewService(cfg, mock)
			tt.validate(t, service.GenerateInsights(context.Background(), clients, tt.withSupplemental))
		})
	}
}

func TestService_GenerateInsights_NilSupplemental(t *testing.T) {
	clients := []domain.ClientMetrics{
		buildClient("RocketGrowth AI", 24.7, 85000, 382500, 8, domain.StatusHealthy),
	}

	service := NewService(&config.Config{}, nil)
	insights := service.GenerateInsights(context.Background(), clients, true)

	require.Len(t, insights, 1)
	assert.Equal(t, "Strong Performance", insights[0].Title)
}
