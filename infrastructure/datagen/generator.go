package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/pventures/revops-dashboard-api/internal/domain"
)

// clientProfile descreve um cenário de demonstração. Os perfis cobrem
// situações diversas (hipercrescimento, declínio crítico, estagnação) para
// que o motor de insights tenha o que apontar.
type clientProfile struct {
	clientID           string
	clientName         string
	industry           string
	baseMRR            float64
	monthlyGrowthRate  float64 // Fração mensal (0.247 = 24.7%)
	status             domain.ClientStatus
	pipelineMultiplier float64
}

var demoProfiles = []clientProfile{
	{
		clientID:           "client_a",
		clientName:         "RocketGrowth AI",
		industry:           "AI/ML SaaS",
		baseMRR:            85000,
		monthlyGrowthRate:  0.247,
		status:             domain.StatusHealthy,
		pipelineMultiplier: 4.5,
	},
	{
		clientID:           "client_b",
		clientName:         "LegacyTech Corp",
		industry:           "Legacy CRM",
		baseMRR:            125000,
		monthlyGrowthRate:  -0.189,
		status:             domain.StatusCritical,
		pipelineMultiplier: 1.2,
	},
	{
		clientID:           "client_c",
		clientName:         "SlowBurn Analytics",
		industry:           "Data Analytics",
		baseMRR:            42000,
		monthlyGrowthRate:  -0.067,
		status:             domain.StatusAtRisk,
		pipelineMultiplier: 1.8,
	},
	{
		clientID:           "client_d",
		clientName:         "SteadyScale SaaS",
		industry:           "Project Management",
		baseMRR:            68000,
		monthlyGrowthRate:  0.034,
		status:             domain.StatusHealthy,
		pipelineMultiplier: 2.6,
	},
	{
		clientID:           "client_e",
		clientName:         "LeadFlood Pro",
		industry:           "Marketing Automation",
		baseMRR:            55000,
		monthlyGrowthRate:  0.156,
		status:             domain.StatusHealthy,
		pipelineMultiplier: 5.2,
	},
	{
		clientID:           "client_f",
		clientName:         "MegaCorp Solutions",
		industry:           "Enterprise ERP",
		baseMRR:            210000,
		monthlyGrowthRate:  0.008,
		status:             domain.StatusHealthy,
		pipelineMultiplier: 1.9,
	},
	{
		clientID:           "client_g",
		clientName:         "PhoenixRising Tech",
		industry:           "Cybersecurity",
		baseMRR:            38000,
		monthlyGrowthRate:  0.092,
		status:             domain.StatusHealthy,
		pipelineMultiplier: 3.1,
	},
	{
		clientID:           "client_h",
		clientName:         "StartupStruggle Inc",
		industry:           "Fintech",
		baseMRR:            18000,
		monthlyGrowthRate:  -0.134,
		status:             domain.StatusCritical,
		pipelineMultiplier: 2.2,
	},
}

var dealCompanyNames = []string{
	"Enterprise Co", "Startup Inc", "Tech Solutions", "Digital Ventures",
	"Innovation Labs", "Future Systems", "Growth Partners", "Scale Corp",
	"Nexus Group", "Quantum Enterprises", "Velocity Inc", "Apex Solutions",
}

var openDealStages = []domain.DealStage{
	domain.StageLead,
	domain.StageQualified,
	domain.StageProposal,
	domain.StageNegotiation,
}

// Generator produz snapshots de portfólio sintéticos para demonstração
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewSeededGenerator cria um gerador com semente fixa e relógio injetável,
// usado nos testes para obter snapshots reproduzíveis
func NewSeededGenerator(seed int64, now func() time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// GeneratePortfolio monta um snapshot completo: métricas atuais, 12 semanas
// de histórico e negócios em aberto para cada perfil de demonstração
func (g *Generator) GeneratePortfolio() domain.PortfolioData {
	data := domain.PortfolioData{}

	for _, profile := range demoProfiles {
		data.Clients = append(data.Clients, g.clientMetrics(profile))
		data.Historical = append(data.Historical, g.historical(profile)...)
		data.Deals = append(data.Deals, g.deals(profile)...)
	}

	return data
}

func (g *Generator) clientMetrics(profile clientProfile) domain.ClientMetrics {
	leads := g.rng.Intn(150) + 80
	conversions := int(float64(leads) * (0.03 + g.rng.Float64()*0.07))
	conversionRate := float64(int(float64(conversions)/float64(leads)*1000)) / 10

	return domain.ClientMetrics{
		ClientID:         profile.clientID,
		ClientName:       profile.clientName,
		Industry:         profile.industry,
		MRR:              profile.baseMRR,
		PipelineValue:    float64(int(profile.baseMRR * profile.pipelineMultiplier)),
		LeadsCount:       leads,
		ConversionsCount: conversions,
		ConversionRate:   conversionRate,
		CAC:              float64(g.rng.Intn(500) + 600),
		GrowthRate:       float64(int(profile.monthlyGrowthRate*1000)) / 10,
		Status:           profile.status,
		LastUpdated:      g.now(),
	}
}

// historical produz 12 pontos semanais retrocedendo a tendência atual, com
// ruído de ±3% para o gráfico não parecer uma reta
func (g *Generator) historical(profile clientProfile) []domain.HistoricalDataPoint {
	points := make([]domain.HistoricalDataPoint, 0, 12)
	weeklyGrowth := profile.monthlyGrowthRate / 4

	for week := 11; week >= 0; week-- {
		date := g.now().AddDate(0, 0, -week*7)
		weeksAgo := float64(week)

		// Clientes em crescimento tinham MRR menor no passado; em declínio,
		// maior. O ponto mais recente converge para o MRR base.
		var trend float64
		if profile.monthlyGrowthRate >= 0 {
			trend = 1 - weeksAgo*weeklyGrowth
		} else {
			trend = 1 + weeksAgo*(-weeklyGrowth)
		}

		noise := 1 + (g.rng.Float64()-0.5)*0.06

		mrr := float64(int(profile.baseMRR * trend * noise))
		pipeline := float64(int(mrr * (profile.pipelineMultiplier + (g.rng.Float64()-0.5)*0.5)))
		leads := g.rng.Intn(150) + 50
		conversions := int(float64(leads) * (0.03 + g.rng.Float64()*0.07))

		points = append(points, domain.HistoricalDataPoint{
			ClientID:      profile.clientID,
			Date:          date,
			MRR:           mrr,
			PipelineValue: pipeline,
			Leads:         leads,
			Conversions:   conversions,
			Activities:    g.rng.Intn(200) + 100,
		})
	}

	return points
}

func (g *Generator) deals(profile clientProfile) []domain.Deal {
	dealCount := g.rng.Intn(8) + 5

	deals := make([]domain.Deal, 0, dealCount)
	for i := 0; i < dealCount; i++ {
		stage := openDealStages[g.rng.Intn(len(openDealStages))]

		probability := 50
		switch stage {
		case domain.StageLead:
			probability = g.rng.Intn(20) + 20
		case domain.StageQualified:
			probability = g.rng.Intn(20) + 40
		case domain.StageProposal:
			probability = g.rng.Intn(20) + 60
		case domain.StageNegotiation:
			probability = g.rng.Intn(20) + 75
		}

		deals = append(deals, domain.Deal{
			DealID:            fmt.Sprintf("%s_deal_%d", profile.clientID, i+1),
			ClientID:          profile.clientID,
			DealName:          dealCompanyNames[i%len(dealCompanyNames)],
			Value:             float64(g.rng.Intn(20000) + 5000),
			Stage:             stage,
			Probability:       probability,
			DaysInStage:       g.rng.Intn(30) + 1,
			ExpectedCloseDate: g.now().AddDate(0, 0, g.rng.Intn(60)+15),
		})
	}

	return deals
}
