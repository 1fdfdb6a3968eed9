package usecase

import (
	"fmt"
	"time"

	"github.com/TheBellman/timeutility/pkg/tickrange"
	"github.com/TheBellman/timeutility/pkg/util"
)

// TicksUseCase provides the business logic for enumerating the ticks of a
// range from raw CLI input.
type TicksUseCase struct{}

func NewTicksUseCase() *TicksUseCase {
	return &TicksUseCase{}
}

type GetTicksParams struct {
	From  string // RFC3339, RFC3339Nano, or unix seconds; empty means one unit ago
	To    string // same formats; empty means now
	Unit  string
	Limit int
}

type GetTicksResult struct {
	From  time.Time   `json:"from"`
	To    time.Time   `json:"to"`
	Unit  string      `json:"unit"`
	Count int         `json:"count"`
	Ticks []time.Time `json:"ticks"`
}

func (uc *TicksUseCase) GetTicks(p GetTicksParams) (*GetTicksResult, error) {
	var from, to time.Time
	if p.From != "" {
		t, ok := util.ParseTime(p.From)
		if !ok {
			return nil, fmt.Errorf("invalid from time %q", p.From)
		}
		from = t
	}
	if p.To != "" {
		t, ok := util.ParseTime(p.To)
		if !ok {
			return nil, fmt.Errorf("invalid to time %q", p.To)
		}
		to = t
	}
	if p.Limit <= 0 {
		p.Limit = 10000
	}
	if p.Limit > 50000 {
		p.Limit = 50000
	}

	r := tickrange.New(from, to, tickrange.NormalizeUnit(p.Unit))

	ticks := r.Ticks()
	if len(ticks) > p.Limit {
		ticks = ticks[:p.Limit]
	}

	return &GetTicksResult{
		From:  r.From(),
		To:    r.To(),
		Unit:  string(r.Unit()),
		Count: len(ticks),
		Ticks: ticks,
	}, nil
}
