package importer

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// Colunas esperadas no modelo de planilha. A primeira linha deve ser o
// cabeçalho; colunas desconhecidas são ignoradas e colunas ausentes assumem
// o valor zero.
var knownColumns = map[string]struct{}{
	"client_id":         {},
	"client_name":       {},
	"industry":          {},
	"mrr":               {},
	"pipeline_value":    {},
	"leads_count":       {},
	"conversions_count": {},
	"conversion_rate":   {},
	"cac":               {},
	"growth_rate":       {},
	"status":            {},
}

// ParseCSV lê uma planilha exportada em CSV e monta o snapshot de portfólio
func ParseCSV(r io.Reader) (domain.PortfolioData, error) {
	return parseCSVAt(r, time.Now())
}

func parseCSVAt(r io.Reader, now time.Time) (domain.PortfolioData, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return domain.PortfolioData{}, errors.Wrap(err, "erro ao ler o cabeçalho do CSV")
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(name))

		if _, ok := knownColumns[columns[i]]; !ok {
			log.L.WithField("column", columns[i]).
				Warn("importer: coluna desconhecida no cabeçalho ignorada")
		}
	}

	if _, ok := indexOf(columns, "client_id"); !ok {
		return domain.PortfolioData{}, errors.New("cabeçalho do CSV não contém a coluna client_id")
	}

	var clients []domain.ClientMetrics

	for rowIndex := 0; ; rowIndex++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.PortfolioData{}, errors.Wrapf(err, "erro ao ler a linha %d do CSV", rowIndex+2)
		}

		row := clientRow{}
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			assignColumn(&row, columns[i], strings.TrimSpace(value))
		}

		if client, ok := coerceRow(row, rowIndex, now); ok {
			clients = append(clients, client)
		}
	}

	return buildPortfolio(clients, now)
}

func indexOf(columns []string, name string) (int, bool) {
	for i, column := range columns {
		if column == name {
			return i, true
		}
	}
	return 0, false
}

// assignColumn preenche o campo correspondente da linha. Valores numéricos
// inválidos viram zero: a planilha é material de exibição, não um contrato.
func assignColumn(row *clientRow, column, value string) {
	switch column {
	case "client_id":
		row.ClientID = value
	case "client_name":
		row.ClientName = value
	case "industry":
		row.Industry = value
	case "mrr":
		row.MRR = parseFloat(value)
	case "pipeline_value":
		row.PipelineValue = parseFloat(value)
	case "leads_count":
		row.LeadsCount = parseInt(value)
	case "conversions_count":
		row.ConversionsCount = parseInt(value)
	case "conversion_rate":
		row.ConversionRate = parseFloat(value)
	case "cac":
		row.CAC = parseFloat(value)
	case "growth_rate":
		row.GrowthRate = parseFloat(value)
	case "status":
		row.Status = value
	}
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(value string) int {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return i
}
