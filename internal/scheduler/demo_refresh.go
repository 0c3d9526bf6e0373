package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/sirupsen/logrus"
)

// DemoRefreshConfig representa a configuração do agendador de regeneração
// do snapshot de demonstração
type DemoRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DemoRefreshService regenera periodicamente o portfólio de demonstração
// para que instalações de demo não fiquem com dados congelados. Desligado
// por padrão; em produção o snapshot vem de importações.
type DemoRefreshService struct {
	scheduler         *gocron.Scheduler
	config            DemoRefreshConfig
	portfolioService  portfolio.PortfolioService
	refreshRunning    bool
	refreshMutex      sync.Mutex
	lastRefreshedAt   time.Time
	refreshExecutions int
}

// NewDemoRefreshService cria uma nova instância do agendador de demonstração
func NewDemoRefreshService(portfolioService portfolio.PortfolioService, appConfig *config.Config) *DemoRefreshService {
	refreshConfig := DemoRefreshConfig{
		CronSchedule: appConfig.DemoRefresh.CronSchedule,
		Enabled:      appConfig.DemoRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de regeneração de demonstração carregada")

	return &DemoRefreshService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           refreshConfig,
		portfolioService: portfolioService,
	}
}

// Start inicia o agendador
func (s *DemoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Regeneração periódica do snapshot de demonstração desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de regeneração de demonstração")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDemoSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração do snapshot de demonstração: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de regeneração de demonstração")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDemoSnapshot regenera o portfólio de demonstração, ignorando
// execuções sobrepostas
func (s *DemoRefreshService) refreshDemoSnapshot() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Regeneração de demonstração já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	snapshot := s.portfolioService.LoadDemo()

	s.refreshMutex.Lock()
	s.lastRefreshedAt = time.Now()
	s.refreshExecutions++
	s.refreshMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"clients": len(snapshot.Clients),
		"deals":   len(snapshot.Deals),
	}).Info("Snapshot de demonstração regenerado")
}

// Status retorna informações da última execução, exposto no endpoint de cron
func (s *DemoRefreshService) Status() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"enabled":         s.config.Enabled,
		"cron_schedule":   s.config.CronSchedule,
		"running":         s.refreshRunning,
		"last_refresh_at": s.lastRefreshedAt,
		"executions":      s.refreshExecutions,
	}
}

// RunNow dispara uma regeneração fora do agendamento (usado pelo endpoint
// administrativo de cron)
func (s *DemoRefreshService) RunNow() {
	go s.refreshDemoSnapshot()
}
