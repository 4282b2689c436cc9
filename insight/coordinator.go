package insight

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"connectfit-backend/models"
)

// ErrSuperseded is returned to a caller whose request was overtaken by a
// newer one. Its result is discarded.
var ErrSuperseded = errors.New("insight request superseded")

// State is what the finance view shows.
type State struct {
	Loading   bool      `json:"loading"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Coordinator serializes insight requests. The latest request wins: starting
// a new one cancels the one in flight.
type Coordinator struct {
	summarizer Summarizer
	timeout    time.Duration
	now        func() time.Time

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  State
}

func NewCoordinator(s Summarizer, timeout time.Duration) *Coordinator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Coordinator{summarizer: s, timeout: timeout, now: time.Now}
}

func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Request runs a summary over the given snapshot and blocks until it
// completes. The call outlives cancellation of ctx so that a dropped client
// does not overwrite the state with the fallback text.
func (c *Coordinator) Request(ctx context.Context, sales []models.Sale, expenses []models.Expense) (State, error) {
	runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	c.cancel = cancel
	c.state.Loading = true
	c.mu.Unlock()

	text, err := c.summarizer.Summarize(runCtx, sales, expenses)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return c.state, ErrSuperseded
	}
	if err != nil {
		zap.L().Warn("financial insight generation failed", zap.Error(err))
		text = FallbackInsight
	} else if strings.TrimSpace(text) == "" {
		text = EmptyInsight
	}
	c.cancel = nil
	c.state = State{Text: strings.TrimSpace(text), UpdatedAt: c.now().UTC()}
	return c.state, nil
}
