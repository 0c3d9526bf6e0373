package domain

import "strings"

// Severity classifica a urgência de um insight. A ordem de exibição é
// critical < warning < success ("success" é uma observação positiva,
// não um resultado operacional).
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeveritySuccess  Severity = "success"
)

// severityRank define a ordem total usada na ordenação de exibição
var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeveritySuccess:  2,
}

// Rank retorna a posição da severidade na ordem de exibição.
// Severidades desconhecidas ficam depois de todas as conhecidas.
func (s Severity) Rank() int {
	if rank, ok := severityRank[s]; ok {
		return rank
	}
	return len(severityRank)
}

// ParseSeverity valida uma severidade vinda de fora (ex.: resposta do modelo
// de linguagem). Retorna false para valores fora do enum.
func ParseSeverity(raw string) (Severity, bool) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := severityRank[s]
	return s, ok
}

// PortfolioClient é o valor sentinela do campo Client para insights que se
// referem ao portfólio como um todo, e não a um cliente específico.
const PortfolioClient = "Portfolio"

// Insight representa um alerta ou recomendação legível exibido no dashboard
type Insight struct {
	Severity       Severity `json:"severity"`
	Client         string   `json:"client"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}
