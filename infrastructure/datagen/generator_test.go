package datagen

import (
	"testing"
	"time"

	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestGenerator_GeneratePortfolio(t *testing.T) {
	generator := NewSeededGenerator(42, fixedNow)
	data := generator.GeneratePortfolio()

	t.Run("Oito clientes de demonstração na ordem dos perfis", func(t *testing.T) {
		require.Len(t, data.Clients, 8)

		assert.Equal(t, "client_a", data.Clients[0].ClientID)
		assert.Equal(t, "RocketGrowth AI", data.Clients[0].ClientName)
		assert.Equal(t, float64(85000), data.Clients[0].MRR)
		assert.Equal(t, float64(382500), data.Clients[0].PipelineValue)
		assert.Equal(t, 24.7, data.Clients[0].GrowthRate)
		assert.Equal(t, domain.StatusHealthy, data.Clients[0].Status)

		assert.Equal(t, "LegacyTech Corp", data.Clients[1].ClientName)
		assert.Equal(t, -18.9, data.Clients[1].GrowthRate)
		assert.Equal(t, domain.StatusCritical, data.Clients[1].Status)

		assert.Equal(t, "StartupStruggle Inc", data.Clients[7].ClientName)
	})

	t.Run("Doze semanas de histórico por cliente em ordem cronológica", func(t *testing.T) {
		byClient := make(map[string][]domain.HistoricalDataPoint)
		for _, point := range data.Historical {
			byClient[point.ClientID] = append(byClient[point.ClientID], point)
		}

		require.Len(t, byClient, 8)
		for clientID, points := range byClient {
			require.Lenf(t, points, 12, "cliente %s", clientID)

			for i := 1; i < len(points); i++ {
				assert.True(t, points[i].Date.After(points[i-1].Date))
				assert.Equal(t, 7*24*time.Hour, points[i].Date.Sub(points[i-1].Date))
			}

			// O último ponto é a semana atual
			assert.Equal(t, fixedNow(), points[len(points)-1].Date)
		}
	})

	t.Run("Tendência do histórico acompanha o sinal do crescimento", func(t *testing.T) {
		var rocket, legacy []domain.HistoricalDataPoint
		for _, point := range data.Historical {
			switch point.ClientID {
			case "client_a":
				rocket = append(rocket, point)
			case "client_b":
				legacy = append(legacy, point)
			}
		}

		// Cliente em hipercrescimento: passado bem abaixo do MRR atual.
		// O ruído é de ±3%, a tendência de 12 semanas é muito maior que isso.
		require.Len(t, rocket, 12)
		assert.Less(t, rocket[0].MRR, rocket[11].MRR*0.75)

		// Cliente em declínio: passado bem acima do MRR atual
		require.Len(t, legacy, 12)
		assert.Greater(t, legacy[0].MRR, legacy[11].MRR*1.25)
	})

	t.Run("Negócios em aberto com probabilidade por estágio", func(t *testing.T) {
		require.NotEmpty(t, data.Deals)

		perClient := make(map[string]int)
		for _, deal := range data.Deals {
			perClient[deal.ClientID]++

			assert.Contains(t, openDealStages, deal.Stage)
			switch deal.Stage {
			case domain.StageLead:
				assert.GreaterOrEqual(t, deal.Probability, 20)
				assert.Less(t, deal.Probability, 40)
			case domain.StageQualified:
				assert.GreaterOrEqual(t, deal.Probability, 40)
				assert.Less(t, deal.Probability, 60)
			case domain.StageProposal:
				assert.GreaterOrEqual(t, deal.Probability, 60)
				assert.Less(t, deal.Probability, 80)
			case domain.StageNegotiation:
				assert.GreaterOrEqual(t, deal.Probability, 75)
				assert.Less(t, deal.Probability, 95)
			}
		}

		for clientID, count := range perClient {
			assert.GreaterOrEqualf(t, count, 5, "cliente %s", clientID)
			assert.LessOrEqualf(t, count, 12, "cliente %s", clientID)
		}
	})
}

func TestGenerator_SeededReproducibility(t *testing.T) {
	first := NewSeededGenerator(7, fixedNow).GeneratePortfolio()
	second := NewSeededGenerator(7, fixedNow).GeneratePortfolio()

	assert.Equal(t, first, second)
}
