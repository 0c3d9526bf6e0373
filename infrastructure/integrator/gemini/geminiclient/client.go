package geminiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client encapsula a chamada generateContent da API do Gemini.
// Uma tentativa por requisição, sem retry: falhas são tratadas pelo
// chamador como "sem insights suplementares".
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	// Limita as chamadas à cota configurada por minuto
	rps := float64(cfg.Gemini.RequestsPerMin) / 60.0

	return &GeminiClient{
		httpClient: &http.Client{
			Timeout: cfg.Gemini.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		config:  cfg,
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent envia o prompt e retorna o texto do primeiro candidato
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(err, "limite de requisições ao Gemini excedido")
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.config.Gemini.Temperature,
			MaxOutputTokens: c.config.Gemini.MaxTokens,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "erro ao montar a requisição para o Gemini")
	}

	url := fmt.Sprintf(
		"%s/models/%s:generateContent?key=%s",
		c.config.Gemini.BaseURL,
		c.config.Gemini.Model,
		c.config.Gemini.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição para o Gemini")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar a API do Gemini")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta do Gemini")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("API do Gemini retornou status %d: %s", resp.StatusCode, string(body))
	}

	decoded := generateContentResponse{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", errors.Wrap(err, "resposta do Gemini em formato inesperado")
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("resposta do Gemini sem candidatos")
	}

	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
