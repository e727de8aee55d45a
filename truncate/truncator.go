package truncate

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/truncyate/sentence"
	"github.com/randalmurphal/truncyate/tokens"
)

// Strategy defines which portion of the text is kept.
type Strategy int

const (
	// Smart keeps the highest-scoring sentences that fit (default).
	Smart Strategy = iota

	// Start keeps the beginning of the text.
	Start

	// End keeps the end of the text.
	End

	// Middle keeps the beginning and the end, dropping the middle.
	Middle
)

// String returns the strategy name as used in flags and config files.
func (s Strategy) String() string {
	switch s {
	case Start:
		return "start"
	case End:
		return "end"
	case Middle:
		return "middle"
	default:
		return "smart"
	}
}

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "smart":
		return Smart, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	case "middle":
		return Middle, nil
	default:
		return Smart, fmt.Errorf("unknown truncation strategy %q", name)
	}
}

// DefaultEllipsis marks content removed from one end.
const DefaultEllipsis = "..."

// DefaultMiddleEllipsis marks content removed between two kept pieces.
const DefaultMiddleEllipsis = " [...] "

// DefaultMiddleRatio is the share of the budget the Middle strategy gives
// to the prefix.
const DefaultMiddleRatio = 0.5

// Config configures a Truncator. The zero value is invalid: at least one
// budget must be set.
type Config struct {
	// --- Budget ---

	// Budget sets the limit directly and takes precedence over
	// MaxTokens/MaxChars when bounded. tokens.Chars(0) and tokens.Tokens(0)
	// are valid budgets that produce empty output.
	Budget tokens.Budget

	// MaxTokens is the token budget. 0 means unset.
	MaxTokens int

	// MaxChars is the character budget. 0 means unset.
	// When both MaxChars and MaxTokens are set, characters win.
	MaxChars int

	// --- Behavior ---

	// Strategy is the default strategy for Truncate. Default: Smart.
	Strategy Strategy

	// Counter measures token budgets. Default: tokens.NewWordCounter().
	Counter tokens.Counter

	// --- Markers ---

	// Ellipsis marks a cut at the start or end. Default: "...".
	Ellipsis string

	// MiddleEllipsis marks the gap in middle and smart output.
	// Default: " [...] ".
	MiddleEllipsis string

	// --- Tuning ---

	// MiddleRatio is the share of the budget given to the prefix by the
	// Middle strategy, in (0, 1). Default: 0.5.
	MiddleRatio float64

	// Scorer ranks sentences for the Smart strategy.
	// Default: sentence.DefaultScorer().
	Scorer *sentence.Scorer

	// AlignWindow caps how far (in bytes) boundary alignment may move a cut.
	// 0 searches the whole text.
	AlignWindow int

	// explicit markers distinguish "" from unset
	ellipsisSet       bool
	middleEllipsisSet bool
}

// WithEllipsis sets the end-cut marker. An empty string disables it.
func (c Config) WithEllipsis(marker string) Config {
	c.Ellipsis = marker
	c.ellipsisSet = true
	return c
}

// WithMiddleEllipsis sets the gap marker. An empty string disables it.
func (c Config) WithMiddleEllipsis(marker string) Config {
	c.MiddleEllipsis = marker
	c.middleEllipsisSet = true
	return c
}

// Truncator truncates text to fit a budget. It is stateless per call and
// safe for concurrent use.
type Truncator struct {
	budget         tokens.Budget
	counter        tokens.Counter
	strategy       Strategy
	ellipsis       string
	middleEllipsis string
	middleRatio    float64
	alignWindow    int
	scorer         sentence.Scorer
}

// New creates a truncator from the config. It fails fast on nonsensical
// configuration; a constructed Truncator never errors at truncate time.
func New(cfg Config) (*Truncator, error) {
	budget, err := resolveBudget(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.MiddleRatio < 0 || cfg.MiddleRatio >= 1 {
		return nil, &ConfigError{Field: "MiddleRatio", Err: ErrBadRatio}
	}
	ratio := cfg.MiddleRatio
	if ratio == 0 {
		ratio = DefaultMiddleRatio
	}

	counter := cfg.Counter
	if counter == nil {
		counter = tokens.NewWordCounter()
	}

	ellipsis := cfg.Ellipsis
	if ellipsis == "" && !cfg.ellipsisSet {
		ellipsis = DefaultEllipsis
	}
	middleEllipsis := cfg.MiddleEllipsis
	if middleEllipsis == "" && !cfg.middleEllipsisSet {
		middleEllipsis = DefaultMiddleEllipsis
	}

	scorer := sentence.DefaultScorer()
	if cfg.Scorer != nil {
		scorer = *cfg.Scorer
	}

	return &Truncator{
		budget:         budget,
		counter:        counter,
		strategy:       cfg.Strategy,
		ellipsis:       ellipsis,
		middleEllipsis: middleEllipsis,
		middleRatio:    ratio,
		alignWindow:    cfg.AlignWindow,
		scorer:         scorer,
	}, nil
}

// resolveBudget applies the documented precedence: an explicit Budget wins,
// then characters over tokens.
func resolveBudget(cfg Config) (tokens.Budget, error) {
	if cfg.Budget.Bounded() {
		if cfg.Budget.Max < 0 {
			return tokens.Budget{}, &ConfigError{Field: "Budget", Err: ErrNegativeBudget}
		}
		return cfg.Budget, nil
	}
	if cfg.MaxChars < 0 {
		return tokens.Budget{}, &ConfigError{Field: "MaxChars", Err: ErrNegativeBudget}
	}
	if cfg.MaxTokens < 0 {
		return tokens.Budget{}, &ConfigError{Field: "MaxTokens", Err: ErrNegativeBudget}
	}
	if cfg.MaxChars > 0 {
		return tokens.Chars(cfg.MaxChars), nil
	}
	if cfg.MaxTokens > 0 {
		return tokens.Tokens(cfg.MaxTokens), nil
	}
	return tokens.Budget{}, &ConfigError{Field: "Budget", Err: ErrNoBudget}
}

// NewWithTokens creates a smart-strategy truncator with a token budget.
func NewWithTokens(maxTokens int) (*Truncator, error) {
	return New(Config{Budget: tokens.Tokens(maxTokens)})
}

// NewWithChars creates a smart-strategy truncator with a character budget.
func NewWithChars(maxChars int) (*Truncator, error) {
	return New(Config{Budget: tokens.Chars(maxChars)})
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithStrategy sets the default strategy used by Truncate.
func (t *Truncator) WithStrategy(strategy Strategy) *Truncator {
	t.strategy = strategy
	return t
}

// WithEllipsis sets the end-cut marker. Empty disables it.
func (t *Truncator) WithEllipsis(marker string) *Truncator {
	t.ellipsis = marker
	return t
}

// WithMiddleEllipsis sets the gap marker. Empty disables it.
func (t *Truncator) WithMiddleEllipsis(marker string) *Truncator {
	t.middleEllipsis = marker
	return t
}

// Ellipsis returns the end-cut marker.
func (t *Truncator) Ellipsis() string {
	return t.ellipsis
}

// MiddleEllipsis returns the gap marker.
func (t *Truncator) MiddleEllipsis() string {
	return t.middleEllipsis
}

// Budget returns the truncator's budget.
func (t *Truncator) Budget() tokens.Budget {
	return t.budget
}

// Strategy returns the truncator's default strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Truncate reduces the text to fit the budget using the default strategy,
// keeping whole sentences. Returns the result and whether truncation occurred.
func (t *Truncator) Truncate(text string) (string, bool) {
	return t.TruncateWith(text, t.strategy, true)
}

// TruncateWith reduces the text to fit the budget using the given strategy.
// keepSentences aligns cut points to sentence boundaries; Smart is sentence
// based regardless. Returns the result and whether truncation occurred.
func (t *Truncator) TruncateWith(text string, strategy Strategy, keepSentences bool) (string, bool) {
	if !t.budget.Bounded() {
		return text, false
	}
	if t.budget.Max == 0 {
		return "", text != ""
	}
	if t.budget.Fits(t.counter, text) {
		return text, false
	}

	switch strategy {
	case Start:
		return t.truncateStart(text, keepSentences), true
	case End:
		return t.truncateEnd(text, keepSentences), true
	case Middle:
		return t.truncateMiddle(text, keepSentences), true
	default:
		return t.truncateSmart(text), true
	}
}
