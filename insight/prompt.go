package insight

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"connectfit-backend/ledger"
	"connectfit-backend/models"
)

// FinancialPrompt summarizes the ledger for the model.
func FinancialPrompt(sales []models.Sale, expenses []models.Expense) string {
	totals := ledger.Totals(sales, expenses)

	amounts := make(stats.Float64Data, 0, len(sales))
	for _, s := range sales {
		amounts = append(amounts, s.Amount.InexactFloat64())
	}
	// Both report NaN with an error on empty input.
	mean, err := amounts.Mean()
	if err != nil {
		mean = 0
	}
	median, err := amounts.Median()
	if err != nil {
		median = 0
	}

	return fmt.Sprintf(`Analise os seguintes dados financeiros da loja de roupas fitness Connect Fit:
  - Vendas Totais: R$ %s
  - Despesas Totais: R$ %s
  - Lucro: R$ %s
  - Número de vendas: %d
  - Número de registros de despesas: %d
  - Ticket médio: R$ %.2f
  - Venda mediana: R$ %.2f

  Forneça 3 insights curtos e práticos sobre a saúde financeira do negócio e uma sugestão para aumentar a margem de lucro.`,
		totals.TotalSales.StringFixed(2),
		totals.TotalExpenses.StringFixed(2),
		totals.Profit.StringFixed(2),
		len(sales),
		len(expenses),
		mean,
		median,
	)
}

func DescriptionPrompt(name, category string) string {
	return fmt.Sprintf(`Gere uma descrição curta e vendedora para um produto de moda fitness chamado "%s" da categoria "%s". Destaque conforto e tecnologia do tecido.`, name, category)
}
