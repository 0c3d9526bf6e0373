package gemini

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetupTestLogger()
}

// stubClient responde com um conteúdo fixo, gravando o prompt recebido
type stubClient struct {
	response string
	err      error
	prompt   string
}

func (c *stubClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func testConfig(apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.Gemini.APIKey = apiKey
	return cfg
}

func testClients() []domain.ClientMetrics {
	return []domain.ClientMetrics{
		{
			ClientID:       "client_a",
			ClientName:     "RocketGrowth AI",
			Industry:       "AI/ML SaaS",
			MRR:            85000,
			PipelineValue:  382500,
			GrowthRate:     24.7,
			ConversionRate: 8,
			Status:         domain.StatusHealthy,
		},
	}
}

func TestService_FetchSupplementalInsights(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		clients  []domain.ClientMetrics
		stub     *stubClient
		validate func(t *testing.T, stub *stubClient, insights []domain.Insight, err error)
	}{
		{
			name:    "API key vazia - integração desabilitada, sem erro",
			apiKey:  "",
			clients: testClients(),
			stub:    &stubClient{},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				assert.NoError(t, err)
				assert.Empty(t, insights)
				assert.Empty(t, stub.prompt)
			},
		},
		{
			name:    "Portfólio vazio - nada a analisar",
			apiKey:  "key",
			clients: nil,
			stub:    &stubClient{},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				assert.NoError(t, err)
				assert.Empty(t, insights)
				assert.Empty(t, stub.prompt)
			},
		},
		{
			name:    "Resposta JSON limpa",
			apiKey:  "key",
			clients: testClients(),
			stub: &stubClient{
				response: `[{"severity": "warning", "client": "RocketGrowth AI", "title": "Pipeline Concentration", "message": "Most pipeline value sits in one deal", "recommendation": "Diversify the pipeline"}]`,
			},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				require.NoError(t, err)
				require.Len(t, insights, 1)
				assert.Equal(t, domain.SeverityWarning, insights[0].Severity)
				assert.Equal(t, "Pipeline Concentration", insights[0].Title)

				// O prompt leva o resumo do portfólio
				assert.Contains(t, stub.prompt, "RocketGrowth AI")
				assert.Contains(t, stub.prompt, "Return ONLY valid JSON")
			},
		},
		{
			name:    "Resposta embrulhada em cerca markdown",
			apiKey:  "key",
			clients: testClients(),
			stub: &stubClient{
				response: "```json\n[{\"severity\": \"success\", \"client\": \"Portfolio\", \"title\": \"Momentum\", \"message\": \"Growth is accelerating\"}]\n```",
			},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				require.NoError(t, err)
				require.Len(t, insights, 1)
				assert.Equal(t, "Momentum", insights[0].Title)
			},
		},
		{
			name:    "Falha do cliente propagada",
			apiKey:  "key",
			clients: testClients(),
			stub:    &stubClient{err: errors.New("timeout")},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				assert.Error(t, err)
				assert.Empty(t, insights)
			},
		},
		{
			name:    "Resposta que não é JSON",
			apiKey:  "key",
			clients: testClients(),
			stub:    &stubClient{response: "I'm sorry, I can't analyze that."},
			validate: func(t *testing.T, stub *stubClient, insights []domain.Insight, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := New(testConfig(tt.apiKey), tt.stub)
			insights, err := service.FetchSupplementalInsights(context.Background(), tt.clients)
			tt.validate(t, tt.stub, insights, err)
		})
	}
}

func TestParseInsights(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(t *testing.T, insights []domain.Insight, err error)
	}{
		{
			name: "Severidade fora do enum descartada, demais preservados",
			raw: `[
				{"severity": "catastrophic", "client": "A", "title": "Bad", "message": "Msg"},
				{"severity": "critical", "client": "B", "title": "Real", "message": "Msg"}
			]`,
			validate: func(t *testing.T, insights []domain.Insight, err error) {
				require.NoError(t, err)
				require.Len(t, insights, 1)
				assert.Equal(t, "Real", insights[0].Title)
			},
		},
		{
			name: "Título ou mensagem vazios descartados",
			raw: `[
				{"severity": "warning", "client": "A", "title": "", "message": "Msg"},
				{"severity": "warning", "client": "A", "title": "Title", "message": "  "}
			]`,
			validate: func(t *testing.T, insights []domain.Insight, err error) {
				require.NoError(t, err)
				assert.Empty(t, insights)
			},
		},
		{
			name: "Cliente vazio vira Portfolio",
			raw:  `[{"severity": "success", "client": "", "title": "Win", "message": "Msg"}]`,
			validate: func(t *testing.T, insights []domain.Insight, err error) {
				require.NoError(t, err)
				require.Len(t, insights, 1)
				assert.Equal(t, domain.PortfolioClient, insights[0].Client)
			},
		},
		{
			name: "Cerca markdown sem identificador de linguagem",
			raw:  "```\n[{\"severity\": \"warning\", \"client\": \"A\", \"title\": \"T\", \"message\": \"M\"}]\n```",
			validate: func(t *testing.T, insights []domain.Insight, err error) {
				require.NoError(t, err)
				assert.Len(t, insights, 1)
			},
		},
		{
			name: "Array vazio é válido",
			raw:  `[]`,
			validate: func(t *testing.T, insights []domain.Insight, err error) {
				assert.NoError(t, err)
				assert.Empty(t, insights)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insights, err := parseInsights(tt.raw)
			tt.validate(t, insights, err)
		})
	}
}
