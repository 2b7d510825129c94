package models

type Decision string

const (
	DecisionAnswer     Decision = "answer"
	DecisionLeaveBlank Decision = "leave_blank"
)

type Regime string

const (
	RegimeIndifferent Regime = "indifferent"
	RegimeAlwaysGuess Regime = "always_guess"
	RegimeRisk        Regime = "risk"
)

// ── Request Types ─────────────────────────────────────

type StrategyRequest struct {
	K *int     `json:"k"`
	P *float64 `json:"p"`
	Q *float64 `json:"q"`
}

// ── Response Types ────────────────────────────────────

type StrategyParameters struct {
	K int     `json:"k"`
	P float64 `json:"p"`
	Q float64 `json:"q"`
}

type StrategyResponse struct {
	Parameters     StrategyParameters `json:"parameters"`
	ExpectedValues []float64          `json:"expected_values"`
	MinEliminated  int                `json:"min_eliminated"`
	Regime         Regime             `json:"regime"`
	Message        string             `json:"message"`
	Detail         string             `json:"detail"`
	Warning        *string            `json:"warning,omitempty"`
	Rows           []DecisionRow      `json:"rows"`
	Chart          Chart              `json:"chart"`
}

// DecisionRow is one line of the decision table: how many options were
// excluded, how many remain, and whether a guess pays off.
type DecisionRow struct {
	Excluded      int      `json:"excluded"`
	Remaining     int      `json:"remaining"`
	ExpectedValue float64  `json:"expected_value"`
	Display       string   `json:"expected_value_display"`
	Decision      Decision `json:"decision"`
}

type Chart struct {
	Title    string     `json:"title"`
	XLabel   string     `json:"x_label"`
	YLabel   string     `json:"y_label"`
	Baseline float64    `json:"baseline"`
	Bars     []ChartBar `json:"bars"`
}

type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type LimitsResponse struct {
	MinK     int                `json:"min_k"`
	MaxK     int                `json:"max_k"`
	MinP     float64            `json:"min_p"`
	MaxP     float64            `json:"max_p"`
	MinQ     float64            `json:"min_q"`
	MaxQ     float64            `json:"max_q"`
	Defaults StrategyParameters `json:"defaults"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
