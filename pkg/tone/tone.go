package tone

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Level string

const (
	HighValue Level = "high_value"
	LowValue  Level = "low_value"
)

// HighValueThreshold is the largest amount still answered in the low_value register.
const HighValueThreshold = 4000

const (
	PacingDeliberate = "deliberate"
	PacingEfficient  = "efficient"
)

type Config struct {
	Level             Level  `json:"level"`
	EmpathyLevel      string `json:"empathy_level"`
	Pacing            string `json:"pacing"`
	SentenceStyle     string `json:"sentence_style"`
	ReassuranceNeeded bool   `json:"reassurance_needed"`
}

func LevelFor(amount int) Level {
	if amount > HighValueThreshold {
		return HighValue
	}
	return LowValue
}

func ConfigFor(level Level) Config {
	if level == HighValue {
		return Config{
			Level:             HighValue,
			EmpathyLevel:      "high",
			Pacing:            PacingDeliberate,
			SentenceStyle:     "complete",
			ReassuranceNeeded: true,
		}
	}
	return Config{
		Level:         LowValue,
		EmpathyLevel:  "moderate",
		Pacing:        PacingEfficient,
		SentenceStyle: "concise",
	}
}

// Render builds the templated text for context/subContext in the register
// chosen by amount. It returns "" when no template is registered.
func Render(context, subContext string, amount int) string {
	return RenderWith(context, subContext, amount, nil)
}

// RenderWith is Render with extra placeholder values. {amount} is always
// bound to the formatted amount unless vars overrides it.
func RenderWith(context, subContext string, amount int, vars map[string]string) string {
	level := LevelFor(amount)
	tpl, ok := lookup(context, subContext, level)
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(tpl.Fields)+2)
	if tpl.Opening != "" {
		parts = append(parts, tpl.Opening)
	}
	for _, f := range tpl.Fields {
		parts = append(parts, f.Text)
	}
	if tpl.Closing != "" {
		parts = append(parts, tpl.Closing)
	}

	separator := "\n"
	if ConfigFor(level).Pacing == PacingDeliberate {
		separator = "\n\n"
	}

	return substitute(strings.Join(parts, separator), amount, vars)
}

// FormatAmount renders a rupee amount with thousands separators.
func FormatAmount(amount int) string {
	return "₹" + message.NewPrinter(language.English).Sprintf("%d", amount)
}

func substitute(text string, amount int, vars map[string]string) string {
	pairs := []string{"{amount}", FormatAmount(amount)}
	for k, v := range vars {
		if k == "amount" {
			pairs[1] = v
			continue
		}
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Phrases picks cushioning phrases for a register. The picker is swappable so
// tests can make the choice deterministic.
type Phrases struct {
	pick func(n int) int
}

func NewPhrasesWithPicker(pick func(n int) int) *Phrases {
	return &Phrases{pick: pick}
}

func (p *Phrases) Empathy(amount int) string {
	return p.choose(empathyPhrases[LevelFor(amount)])
}

func (p *Phrases) Acknowledgment(amount int) string {
	return p.choose(acknowledgmentPhrases[LevelFor(amount)])
}

func (p *Phrases) Closing(amount int) string {
	return p.choose(closingPhrases[LevelFor(amount)])
}

func (p *Phrases) choose(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i := p.pick(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

// TravelCredit is the goodwill credit offered once a refund request is
// submitted: five percent of the refund, never below ₹50.
func TravelCredit(refund int) int {
	credit := refund * 5 / 100
	if credit < 50 {
		return 50
	}
	return credit
}
