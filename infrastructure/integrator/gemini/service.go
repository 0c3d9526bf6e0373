package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/pventures/revops-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SupplementalInsighter é a capacidade estreita que o núcleo de insights
// enxerga: dado o portfólio, retorna zero ou mais insights suplementares ou
// falha. A coerção de falha para lista vazia é responsabilidade do chamador.
type SupplementalInsighter interface {
	FetchSupplementalInsights(ctx context.Context, clients []domain.ClientMetrics) ([]domain.Insight, error)
}

type Service struct {
	cfg    *config.Config
	client geminiclient.Client
}

func New(cfg *config.Config, client geminiclient.Client) SupplementalInsighter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// clientSummary é o resumo compacto de cada cliente enviado ao modelo
type clientSummary struct {
	Name           string  `json:"name"`
	Industry       string  `json:"industry"`
	MRR            float64 `json:"mrr"`
	GrowthRate     float64 `json:"growth_rate"`
	PipelineValue  float64 `json:"pipeline_value"`
	ConversionRate float64 `json:"conversion_rate"`
	Status         string  `json:"status"`
}

// insightPayload é a forma esperada de cada item do array JSON retornado
type insightPayload struct {
	Severity       string `json:"severity"`
	Client         string `json:"client"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

const promptTemplate = `You are a RevOps analyst for Perfect Ventures. Analyze this portfolio data and provide insights:

Portfolio Data:
%s

Generate 2-3 strategic insights that:
1. Identify patterns across the portfolio
2. Provide actionable recommendations
3. Focus on growth opportunities or risk mitigation

Format as a JSON array with this structure:
[
  {
    "severity": "critical" | "warning" | "success",
    "client": "client name or 'Portfolio'",
    "title": "Brief title",
    "message": "Detailed message",
    "recommendation": "Specific action item"
  }
]

Return ONLY valid JSON, no markdown or additional text.`

// FetchSupplementalInsights consulta o Gemini com o resumo do portfólio.
// Sem API key configurada a integração está desabilitada e o retorno é
// vazio, sem erro.
func (s *Service) FetchSupplementalInsights(ctx context.Context, clients []domain.ClientMetrics) ([]domain.Insight, error) {
	if s.cfg.Gemini.APIKey == "" {
		log.ForContext(ctx).Debug("gemini: API key não configurada, usando apenas insights baseados em regras")
		return nil, nil
	}

	if len(clients) == 0 {
		return nil, nil
	}

	summaries := make([]clientSummary, 0, len(clients))
	for _, client := range clients {
		summaries = append(summaries, clientSummary{
			Name:           client.ClientName,
			Industry:       client.Industry,
			MRR:            client.MRR,
			GrowthRate:     client.GrowthRate,
			PipelineValue:  client.PipelineValue,
			ConversionRate: client.ConversionRate,
			Status:         string(client.Status),
		})
	}

	prompt := fmt.Sprintf(promptTemplate, utils.PrettyJson(summaries))

	raw, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("portfolio_insights", len(insights)).
		Info("gemini: insights suplementares gerados")

	return insights, nil
}

// fenceRe captura o conteúdo de blocos de código markdown, já que o modelo
// às vezes envolve o JSON em cercas apesar da instrução
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// parseInsights decodifica e valida a resposta do modelo. Entradas com
// severidade fora do enum, título ou mensagem vazios são descartadas em
// silêncio: a fonte é não confiável e nunca derruba o caminho das regras.
func parseInsights(raw string) ([]domain.Insight, error) {
	content := strings.TrimSpace(raw)
	if match := fenceRe.FindStringSubmatch(content); match != nil {
		content = strings.TrimSpace(match[1])
	}

	var payload []insightPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, errors.Wrap(err, "resposta do modelo não é um array JSON de insights")
	}

	insights := make([]domain.Insight, 0, len(payload))
	for _, item := range payload {
		severity, ok := domain.ParseSeverity(item.Severity)
		if !ok || strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Message) == "" {
			log.L.WithField("severity", item.Severity).
				Warn("gemini: insight suplementar fora do contrato descartado")
			continue
		}

		client := strings.TrimSpace(item.Client)
		if client == "" {
			client = domain.PortfolioClient
		}

		insights = append(insights, domain.Insight{
			Severity:       severity,
			Client:         client,
			Title:          strings.TrimSpace(item.Title),
			Message:        strings.TrimSpace(item.Message),
			Recommendation: strings.TrimSpace(item.Recommendation),
		})
	}

	return insights, nil
}
