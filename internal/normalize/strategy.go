package normalize

// Strategy is a named edge-case rewrite applied to text before scanning.
// Each strategy targets one known awkward input shape; the extractor's
// multiple-logic driver falls back to the unmodified text when a strategy
// path yields nothing.
type Strategy interface {
	Name() string
	Transform(text string) string
}

type strategy struct {
	name string
	fn   func(string) string
}

func (s strategy) Name() string { return s.name }

func (s strategy) Transform(text string) string { return s.fn(text) }

// Func wraps a plain rewrite function as a named Strategy.
func Func(name string, fn func(string) string) Strategy {
	return strategy{name: name, fn: fn}
}

// AllStrategies lists the built-in edge-case strategies in canonical order.
var AllStrategies = []Strategy{
	Func("checkin", CheckInColon),
	Func("compact", CompactTimeToColon),
	Func("range", CanonicalRange),
	Func("none", func(s string) string { return s }),
}

// StrategyByName returns the built-in strategy for the given name, or ok=false.
func StrategyByName(name string) (Strategy, bool) {
	for _, s := range AllStrategies {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// StrategyNames returns the names of all built-in strategies.
func StrategyNames() []string {
	names := make([]string, len(AllStrategies))
	for i, s := range AllStrategies {
		names[i] = s.Name()
	}
	return names
}
