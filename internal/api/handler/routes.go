package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/api/handler/router"
	"github.com/pventures/revops-dashboard-api/internal/usecases/insighting"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/internal/usecases/ranking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Portfolio(service portfolio.PortfolioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/portfolio",
			Method:  http.MethodGet,
			Handler: GetPortfolio(service),
		},
		{
			Path:    "/v1/portfolio",
			Method:  http.MethodPost,
			Handler: ReplacePortfolio(service),
		},
		{
			Path:    "/v1/portfolio/import",
			Method:  http.MethodPost,
			Handler: ImportPortfolio(service),
		},
		{
			Path:    "/v1/portfolio/demo",
			Method:  http.MethodPost,
			Handler: LoadDemoPortfolio(service),
		},
		{
			Path:    "/v1/portfolio/trend",
			Method:  http.MethodGet,
			Handler: GetTrendSeries(service),
		},
		{
			Path:    "/v1/portfolio/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(service),
		},
	}
}

func Insights(portfolioService portfolio.PortfolioService, insightService insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/portfolio/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(portfolioService, insightService),
		},
	}
}

func Ranking(portfolioService portfolio.PortfolioService, ranker ranking.PortfolioRanker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/portfolio/summary",
			Method:  http.MethodGet,
			Handler: GetPortfolioSummary(portfolioService, ranker),
		},
		{
			Path:    "/v1/portfolio/clients",
			Method:  http.MethodGet,
			Handler: ListClients(portfolioService, ranker),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/demo-refresh",
			Method:  http.MethodGet,
			Handler: DemoRefreshStatus(services),
		},
		{
			Path:    "/v1/cron/demo-refresh/run",
			Method:  http.MethodPost,
			Handler: TriggerDemoRefresh(services),
		},
	}
}
