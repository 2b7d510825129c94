package strategy

import (
	"errors"
	"fmt"
	"log"

	"github.com/mcq-strategy/backend/internal/models"
)

// Recorder receives per-evaluation telemetry.
type Recorder interface {
	ObserveEvaluation(regime string)
	ObserveRejected(reason string)
}

type Service struct {
	memo     *Memo
	limits   Limits
	recorder Recorder
}

func NewService(memo *Memo, limits Limits, recorder Recorder) *Service {
	log.Printf("[strategy] limits: k=[%d,%d] p=[%g,%g] q=[%g,%g] memo=%d",
		limits.MinK, limits.MaxK, limits.MinP, limits.MaxP, limits.MinQ, limits.MaxQ, memoCapacity(memo))
	return &Service{memo: memo, limits: limits, recorder: recorder}
}

func (s *Service) Limits() Limits {
	return s.limits
}

// Evaluate validates params, computes the expected-value table and
// assembles everything a client needs to present the strategy.
func (s *Service) Evaluate(params Parameters) (*models.StrategyResponse, error) {
	if err := ValidateParameters(params); err != nil {
		s.reject("invalid")
		return nil, err
	}
	if err := s.limits.Check(params); err != nil {
		s.reject("out_of_range")
		return nil, err
	}

	var res Result
	if s.memo != nil {
		res = s.memo.Evaluate(params)
	} else {
		res = Evaluate(params)
	}

	regime := Classify(res.Table)
	if s.recorder != nil {
		s.recorder.ObserveEvaluation(string(regime))
	}

	resp := BuildResponse(res)
	log.Printf("[strategy] k=%d p=%g q=%g regime=%s j_min=%d", params.K, params.P, params.Q, regime, res.Threshold)
	return resp, nil
}

func (s *Service) reject(reason string) {
	if s.recorder != nil {
		s.recorder.ObserveRejected(reason)
	}
}

// IsClientError reports whether err was caused by bad parameters.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) || errors.Is(err, ErrOutOfRange)
}

// BuildResponse turns an engine result into the decision table, regime
// messages and chart series.
func BuildResponse(res Result) *models.StrategyResponse {
	p := res.Params
	regime := Classify(res.Table)
	message, detail := regimeMessages(regime, res.Threshold, p.K)

	rows := make([]models.DecisionRow, len(res.Table))
	bars := make([]models.ChartBar, len(res.Table))
	for j, ev := range res.Table {
		decision := models.DecisionLeaveBlank
		color := "red"
		if ev > 0 {
			decision = models.DecisionAnswer
			color = "green"
		}
		rows[j] = models.DecisionRow{
			Excluded:      j,
			Remaining:     p.K - j,
			ExpectedValue: ev,
			Display:       fmt.Sprintf("%.3f", ev),
			Decision:      decision,
		}
		bars[j] = models.ChartBar{
			Label: fmt.Sprintf("j=%d", j),
			Value: ev,
			Color: color,
		}
	}

	resp := &models.StrategyResponse{
		Parameters:     models.StrategyParameters{K: p.K, P: p.P, Q: p.Q},
		ExpectedValues: res.Table,
		MinEliminated:  res.Threshold,
		Regime:         regime,
		Message:        message,
		Detail:         detail,
		Rows:           rows,
		Chart: models.Chart{
			Title:    "Expected score by number of excluded options (j)",
			XLabel:   "Wrong options excluded (j)",
			YLabel:   "Expected score E_j",
			Baseline: 0,
			Bars:     bars,
		},
	}

	if PenaltyTooSmall(p.K, p.P, p.Q) {
		w := fmt.Sprintf("With q >= p/(k-1) (q >= %.3f) the risk disappears: always answering is optimal.",
			PenaltyCutoff(p.K, p.P))
		resp.Warning = &w
	}

	return resp
}

func regimeMessages(regime models.Regime, threshold, k int) (string, string) {
	switch regime {
	case models.RegimeAlwaysGuess:
		return "Always answer, never leave a question blank!",
			"The penalty is low enough that the expected value is positive: even with no knowledge a random answer pays off."
	case models.RegimeRisk:
		return "The expected value is negative. If you know nothing, leave it blank!",
			fmt.Sprintf("To make a random answer worthwhile you must be able to exclude with certainty at least %d of %d options.", threshold, k)
	default:
		return "The expected value is 0: a random answer and a blank are statistically equivalent.",
			"If you need to minimise the chance of a negative score, leaving it blank is the cautious choice because it removes the variance."
	}
}

func memoCapacity(m *Memo) int {
	if m == nil {
		return 0
	}
	return m.capacity
}
