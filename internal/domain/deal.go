package domain

import "time"

// DealStage representa o estágio de um negócio no funil de vendas
type DealStage string

const (
	StageLead        DealStage = "lead"
	StageQualified   DealStage = "qualified"
	StageProposal    DealStage = "proposal"
	StageNegotiation DealStage = "negotiation"
	StageClosedWon   DealStage = "closed-won"
	StageClosedLost  DealStage = "closed-lost"
)

// Deal representa um negócio em andamento de um cliente.
// Os deals são apenas informativos para o dashboard: nenhuma regra de
// insight os consome.
type Deal struct {
	DealID            string    `json:"deal_id"`
	ClientID          string    `json:"client_id"`
	DealName          string    `json:"deal_name"`
	Value             float64   `json:"value"`
	Stage             DealStage `json:"stage"`
	Probability       int       `json:"probability"`
	DaysInStage       int       `json:"days_in_stage"`
	ExpectedCloseDate time.Time `json:"expected_close_date"`
}
