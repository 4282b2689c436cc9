package insight

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connectfit-backend/models"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

// blockingSummarizer parks each call until released or cancelled.
type blockingSummarizer struct {
	mu      sync.Mutex
	calls   int
	started chan int
	release map[int]chan string
}

func newBlockingSummarizer() *blockingSummarizer {
	return &blockingSummarizer{started: make(chan int, 4), release: map[int]chan string{}}
}

func (b *blockingSummarizer) gate(n int) chan string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.release[n]
	if !ok {
		ch = make(chan string, 1)
		b.release[n] = ch
	}
	return ch
}

func (b *blockingSummarizer) Summarize(ctx context.Context, _ []models.Sale, _ []models.Expense) (string, error) {
	b.mu.Lock()
	b.calls++
	n := b.calls
	b.mu.Unlock()
	b.started <- n

	select {
	case text := <-b.gate(n):
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func sampleLedger() ([]models.Sale, []models.Expense) {
	sales := []models.Sale{
		{ID: "s1", Amount: decimal.RequireFromString("259.80"), Date: "2023-10-01"},
		{ID: "s2", Amount: decimal.RequireFromString("100.00"), Date: "2023-10-02"},
		{ID: "s3", Amount: decimal.RequireFromString("40.20"), Date: "2023-10-03"},
	}
	expenses := []models.Expense{{ID: "e1", Amount: decimal.RequireFromString("1200.00"), Date: "2023-09-25"}}
	return sales, expenses
}

func TestFinancialPrompt(t *testing.T) {
	sales, expenses := sampleLedger()
	prompt := FinancialPrompt(sales, expenses)

	assert.Contains(t, prompt, "Vendas Totais: R$ 400.00")
	assert.Contains(t, prompt, "Despesas Totais: R$ 1200.00")
	assert.Contains(t, prompt, "Lucro: R$ -800.00")
	assert.Contains(t, prompt, "Número de vendas: 3")
	assert.Contains(t, prompt, "Número de registros de despesas: 1")
	assert.Contains(t, prompt, "Ticket médio: R$ 133.33")
	assert.Contains(t, prompt, "Venda mediana: R$ 100.00")
}

func TestFinancialPrompt_Empty(t *testing.T) {
	prompt := FinancialPrompt(nil, nil)
	assert.Contains(t, prompt, "Vendas Totais: R$ 0.00")
	assert.Contains(t, prompt, "Ticket médio: R$ 0.00")
}

func TestService_DescribeProduct(t *testing.T) {
	gen := &fakeGenerator{text: "  Conforto total.  "}
	svc := NewService(gen)
	assert.Equal(t, "Conforto total.", svc.DescribeProduct(context.Background(), "Top Power Fit", "Top"))
	assert.Contains(t, gen.prompt, `chamado "Top Power Fit" da categoria "Top"`)

	svc = NewService(&fakeGenerator{err: errors.New("boom")})
	assert.Equal(t, "Incrível Top Power Fit para o seu treino!", svc.DescribeProduct(context.Background(), "Top Power Fit", "Top"))
}

func TestCoordinator_FallbackAndEmpty(t *testing.T) {
	sales, expenses := sampleLedger()

	c := NewCoordinator(NewService(&fakeGenerator{err: errors.New("quota")}), time.Second)
	st, err := c.Request(context.Background(), sales, expenses)
	require.NoError(t, err)
	assert.Equal(t, FallbackInsight, st.Text)
	assert.False(t, st.Loading)

	c = NewCoordinator(NewService(&fakeGenerator{text: "   "}), time.Second)
	st, err = c.Request(context.Background(), sales, expenses)
	require.NoError(t, err)
	assert.Equal(t, EmptyInsight, st.Text)

	c = NewCoordinator(NewService(&fakeGenerator{text: "Margem boa."}), time.Second)
	st, err = c.Request(context.Background(), sales, expenses)
	require.NoError(t, err)
	assert.Equal(t, "Margem boa.", st.Text)
	assert.Equal(t, st, c.State())
}

func TestCoordinator_LatestRequestWins(t *testing.T) {
	b := newBlockingSummarizer()
	c := NewCoordinator(b, 5*time.Second)

	type result struct {
		st  State
		err error
	}
	first := make(chan result, 1)
	go func() {
		st, err := c.Request(context.Background(), nil, nil)
		first <- result{st, err}
	}()
	require.Equal(t, 1, <-b.started)
	assert.True(t, c.State().Loading)

	second := make(chan result, 1)
	go func() {
		st, err := c.Request(context.Background(), nil, nil)
		second <- result{st, err}
	}()
	require.Equal(t, 2, <-b.started)

	// The first call was cancelled by the second and its outcome dropped.
	r1 := <-first
	assert.ErrorIs(t, r1.err, ErrSuperseded)
	assert.True(t, c.State().Loading)

	b.gate(2) <- "Resultado novo"
	r2 := <-second
	require.NoError(t, r2.err)
	assert.Equal(t, "Resultado novo", r2.st.Text)
	assert.Equal(t, "Resultado novo", c.State().Text)
	assert.False(t, c.State().Loading)
}
