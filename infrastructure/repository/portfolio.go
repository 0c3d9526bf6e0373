package repository

import (
	"sync"
	"time"

	"github.com/pventures/revops-dashboard-api/internal/domain"
)

// PortfolioRepository guarda o snapshot de portfólio da sessão.
// Não há persistência: o snapshot vive em memória e é substituído por
// inteiro a cada carga de dados (demo ou importação de planilha).
type PortfolioRepository interface {
	Get() domain.PortfolioData
	Replace(snapshot domain.PortfolioData)
	LastReplacedAt() time.Time
}

type memoryPortfolioRepository struct {
	mu         sync.RWMutex
	snapshot   domain.PortfolioData
	replacedAt time.Time
}

func NewPortfolioRepository() PortfolioRepository {
	return &memoryPortfolioRepository{}
}

// Get retorna o snapshot atual. Os slices retornados pertencem ao snapshot:
// os casos de uso nunca os modificam, apenas produzem cópias derivadas.
func (r *memoryPortfolioRepository) Get() domain.PortfolioData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot
}

// Replace substitui o snapshot por inteiro
func (r *memoryPortfolioRepository) Replace(snapshot domain.PortfolioData) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = snapshot
	r.replacedAt = time.Now()
}

// LastReplacedAt informa quando o snapshot foi carregado pela última vez
func (r *memoryPortfolioRepository) LastReplacedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.replacedAt
}
