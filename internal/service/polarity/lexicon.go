// Package polarity scores short texts on [-1, 1].
package polarity

import (
	"context"
	"strings"
	"unicode"
)

// LexiconScorer averages word polarities from a finance-flavoured lexicon.
// An intensifier scales the next scored word; a negator flips it at half strength.
type LexiconScorer struct {
	words        map[string]float64
	intensifiers map[string]float64
	negators     map[string]bool
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		words:        defaultLexicon,
		intensifiers: defaultIntensifiers,
		negators:     defaultNegators,
	}
}

func (s *LexiconScorer) Polarity(_ context.Context, text string) (float64, error) {
	return s.Score(text), nil
}

// Score is Polarity without the context.
func (s *LexiconScorer) Score(text string) float64 {
	sum, n := 0.0, 0
	mult, negate := 1.0, false

	for _, tok := range tokenize(text) {
		if f, ok := s.intensifiers[tok]; ok {
			mult *= f
			continue
		}
		if s.negators[tok] || strings.HasSuffix(tok, "n't") {
			negate = true
			continue
		}
		p, ok := s.lookup(tok)
		if !ok {
			mult, negate = 1.0, false
			continue
		}
		p *= mult
		if negate {
			p *= -0.5
		}
		sum += p
		n++
		mult, negate = 1.0, false
	}

	if n == 0 {
		return 0
	}
	return clamp(sum / float64(n))
}

// lookup tries the token, then simple plural and tense stems.
func (s *LexiconScorer) lookup(tok string) (float64, bool) {
	if p, ok := s.words[tok]; ok {
		return p, true
	}
	for _, sfx := range []string{"s", "es", "ed", "d", "ing"} {
		if stem, ok := strings.CutSuffix(tok, sfx); ok && len(stem) > 2 {
			if p, ok := s.words[stem]; ok {
				return p, true
			}
		}
	}
	return 0, false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

var defaultIntensifiers = map[string]float64{
	"very":          1.3,
	"extremely":     1.5,
	"highly":        1.3,
	"sharply":       1.4,
	"strongly":      1.3,
	"significantly": 1.3,
	"hugely":        1.5,
	"slightly":      0.5,
	"marginally":    0.5,
}

var defaultNegators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"nor":     true,
}

var defaultLexicon = map[string]float64{
	// positive
	"good":        0.7,
	"great":       0.8,
	"best":        1.0,
	"excellent":   1.0,
	"strong":      0.43,
	"stronger":    0.5,
	"positive":    0.23,
	"surge":       0.6,
	"soar":        0.7,
	"rally":       0.5,
	"gain":        0.4,
	"rise":        0.3,
	"jump":        0.5,
	"climb":       0.35,
	"beat":        0.4,
	"record":      0.3,
	"growth":      0.3,
	"profit":      0.3,
	"profitable":  0.5,
	"upgrade":     0.5,
	"bullish":     0.6,
	"outperform":  0.5,
	"buy":         0.2,
	"win":         0.5,
	"boost":       0.4,
	"optimistic":  0.5,
	"recover":     0.3,
	"recovery":    0.3,
	"expand":      0.2,
	"higher":      0.25,
	"high":        0.16,
	"success":     0.6,
	"successful":  0.75,
	"robust":      0.5,
	"upbeat":      0.5,
	"approval":    0.4,
	"dividend":    0.1,
	"innovative":  0.5,
	"momentum":    0.2,
	"rebound":     0.4,
	"improve":     0.4,
	"improvement": 0.4,
	// negative
	"bad":          -0.7,
	"worst":        -1.0,
	"terrible":     -1.0,
	"weak":         -0.38,
	"weaker":       -0.45,
	"negative":     -0.3,
	"fall":         -0.4,
	"drop":         -0.4,
	"plunge":       -0.7,
	"slump":        -0.6,
	"crash":        -0.8,
	"tumble":       -0.6,
	"sink":         -0.5,
	"slip":         -0.3,
	"loss":         -0.4,
	"decline":      -0.4,
	"miss":         -0.4,
	"downgrade":    -0.5,
	"bearish":      -0.6,
	"sell":         -0.2,
	"cut":          -0.3,
	"fear":         -0.5,
	"risk":         -0.2,
	"lawsuit":      -0.5,
	"probe":        -0.3,
	"fraud":        -0.8,
	"scandal":      -0.7,
	"lower":        -0.2,
	"low":          -0.1,
	"concern":      -0.3,
	"warning":      -0.4,
	"warn":         -0.4,
	"debt":         -0.2,
	"layoff":       -0.5,
	"underperform": -0.5,
	"volatile":     -0.3,
	"default":      -0.6,
	"bankrupt":     -0.9,
	"bankruptcy":   -0.9,
	"penalty":      -0.4,
	"slowdown":     -0.4,
}
