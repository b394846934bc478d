package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

const contextLookback = 10

var (
	pnrPattern       = regexp.MustCompile(`\b(\d{10})\b`)
	trainPattern     = regexp.MustCompile(`\b(\d{5})\b`)
	bareAmountRegexp = regexp.MustCompile(`\b(\d{3,5})\b`)

	currencyPrefixPattern = regexp.MustCompile(`(?:₹|\brs\.?|\binr)\s*(\d{1,3}(?:,\d{2,3})+|\d+)`)
	currencySuffixPattern = regexp.MustCompile(`\b(\d{1,3}(?:,\d{2,3})+|\d+)\s*(?:rupees?\b|rs\b|inr\b)`)

	referentialCue = regexp.MustCompile(`\b(it|this|that|my|the same|above|mentioned)\b`)

	stationPatterns = []struct {
		re       *regexp.Regexp
		reversed bool
	}{
		{re: regexp.MustCompile(`\bfrom\s+([a-z][a-z\s]*?)\s+to\s+([a-z][a-z\s]*?)(?:\s|$|[.,?!])`)},
		{re: regexp.MustCompile(`\bto\s+([a-z][a-z\s]*?)\s+from\s+([a-z][a-z\s]*?)(?:\s|$|[.,?!])`), reversed: true},
		{re: regexp.MustCompile(`\b([a-z]+)\s+to\s+([a-z]+)\b`)},
		{re: regexp.MustCompile(`\b([a-z]+)\s+se\s+([a-z]+)(?:\s+tak)?\b`)},
	}

	// Words that precede "to" in ordinary phrasing and are never station names.
	stationStopWords = map[string]bool{
		"want": true, "need": true, "like": true, "have": true, "going": true,
		"how": true, "way": true, "wish": true, "plan": true, "planning": true,
		"ticket": true, "tickets": true, "train": true, "trains": true,
		"book": true, "go": true, "travel": true, "me": true, "i": true,
		"refund": true, "back": true, "due": true, "able": true, "used": true,
		"mujhe": true, "hai": true, "kya": true,
	}
)

type span struct{ start, end int }

func (s span) overlaps(o span) bool {
	return s.start < o.end && o.start < s.end
}

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract pulls identifiers out of a single message. history holds prior user
// messages oldest first and is only read when the message refers back to an
// earlier one without naming a PNR.
func (e *Extractor) Extract(text string, history []string) Entities {
	normalized := Normalize(text)
	var ents Entities

	if m := pnrPattern.FindStringSubmatch(normalized); m != nil {
		ents.PNR = m[1]
	}

	currencySpans, amount, hasAmount := extractCurrencyAmount(normalized)
	if hasAmount {
		ents.Amount = amount
		ents.HasAmount = true
	}

	if ents.PNR == "" {
		for _, loc := range trainPattern.FindAllStringSubmatchIndex(normalized, -1) {
			candidate := span{loc[2], loc[3]}
			if overlapsAny(candidate, currencySpans) {
				continue
			}
			ents.TrainNumber = normalized[loc[2]:loc[3]]
			break
		}
	}

	if !ents.HasAmount && ents.PNR == "" && ents.TrainNumber == "" {
		if m := bareAmountRegexp.FindStringSubmatch(normalized); m != nil {
			if v, err := strconv.Atoi(m[1]); err == nil {
				ents.Amount = v
				ents.HasAmount = true
			}
		}
	}

	ents.Stations = ExtractStations(normalized)

	if ents.PNR == "" && referentialCue.MatchString(normalized) {
		if pnr := ResolvePNRFromHistory(history); pnr != "" {
			ents.PNR = pnr
			ents.PNRFromContext = true
		}
	}

	return ents
}

// ResolvePNRFromHistory returns the newest PNR among the last ten messages.
func ResolvePNRFromHistory(history []string) string {
	stop := len(history) - contextLookback
	if stop < 0 {
		stop = 0
	}
	for i := len(history) - 1; i >= stop; i-- {
		if m := pnrPattern.FindStringSubmatch(history[i]); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractStations returns the first origin/destination pair found. Patterns
// are tried in a fixed order and never merged.
func ExtractStations(text string) *StationPair {
	normalized := Normalize(text)

	for _, p := range stationPatterns {
		for _, m := range p.re.FindAllStringSubmatch(normalized, -1) {
			from, to := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if p.reversed {
				from, to = to, from
			}
			if from == "" || to == "" || stationStopWords[lastWord(from)] || stationStopWords[lastWord(to)] {
				continue
			}
			return &StationPair{From: titleCase(from), To: titleCase(to)}
		}
	}

	return nil
}

func extractCurrencyAmount(text string) ([]span, int, bool) {
	var spans []span
	amount, found := 0, false

	for _, re := range []*regexp.Regexp{currencyPrefixPattern, currencySuffixPattern} {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			spans = append(spans, span{loc[2], loc[3]})
			if found {
				continue
			}
			digits := strings.ReplaceAll(text[loc[2]:loc[3]], ",", "")
			if v, err := strconv.Atoi(digits); err == nil {
				amount, found = v, true
			}
		}
	}

	return spans, amount, found
}

func overlapsAny(s span, spans []span) bool {
	for _, o := range spans {
		if s.overlaps(o) {
			return true
		}
	}
	return false
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
