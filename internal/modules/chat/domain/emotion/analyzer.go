package emotion

import (
	"errors"
	"strings"
)

// ModelVersion tags every result with the rule table that produced it,
// so stored rows stay distinguishable after a future model swap.
const ModelVersion = "rule-based-v1"

// Emotion labels (closed set).
const (
	LabelJoy        = "joy"
	LabelSadness    = "sadness"
	LabelAnger      = "anger"
	LabelFear       = "fear"
	LabelSurprise   = "surprise"
	LabelNeutral    = "neutral"
	LabelAnxiety    = "anxiety"
	LabelStress     = "stress"
	LabelDepression = "depression"
)

// Risk levels (closed set).
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ErrEmptyContent is an analysis failure; the caller must abort the
// enclosing persistence unit.
var ErrEmptyContent = errors.New("emotion analysis requires non-empty content")

type Result struct {
	Label        string
	Confidence   float64
	RiskLevel    string
	RiskScore    float64
	ModelVersion string
}

type emotionRule struct {
	label      string
	confidence float64
	keywords   []string
}

// The table is ordered; the first matching group wins. A learned model
// can replace Analyze behind the same signature without touching callers.
var emotionRules = []emotionRule{
	{LabelJoy, 0.75, []string{"happy", "great", "good", "love", "thanks", "relieved", "better", "glad", "excited"}},
	{LabelSadness, 0.75, []string{"sad", "down", "unhappy", "crying", "miss", "lost", "hopeless", "lonely"}},
	{LabelAnger, 0.75, []string{"angry", "mad", "furious", "hate", "annoyed", "frustrated", "irritated"}},
	{LabelFear, 0.75, []string{"scared", "afraid", "worried", "fear", "panic", "terrified", "nervous"}},
	{LabelSurprise, 0.75, []string{"surprised", "shocked", "unexpected", "wow", "really"}},
	{LabelAnxiety, 0.75, []string{"anxious", "anxiety", "worried", "overwhelmed", "panic", "stressed"}},
	{LabelStress, 0.75, []string{"stress", "stressed", "pressure", "overwhelmed", "burnout", "exhausted"}},
	{LabelDepression, 0.75, []string{"depressed", "depression", "hopeless", "empty", "nothing matters", "can't go on"}},
}

// Risk escalation phrases. These take precedence over whatever risk the
// emotion label would imply.
var (
	highRiskPhrases   = []string{"kill myself", "end it", "don't want to live", "hurt myself", "suicide"}
	mediumRiskPhrases = []string{"can't go on", "give up", "no point", "hopeless", "nothing matters"}
)

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// Analyze classifies content into an emotion label plus a risk rating.
// It is pure and deterministic; the full tuple is returned or the call
// fails, never a partial result.
func Analyze(content string) (*Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	text := strings.TrimSpace(strings.ToLower(content))

	result := &Result{
		Label:        LabelNeutral,
		Confidence:   0.7,
		RiskLevel:    RiskLow,
		RiskScore:    0.0,
		ModelVersion: ModelVersion,
	}

	for _, rule := range emotionRules {
		if containsAny(text, rule.keywords) {
			result.Label = rule.label
			result.Confidence = rule.confidence
			break
		}
	}

	switch {
	case containsAny(text, highRiskPhrases):
		result.RiskLevel = RiskHigh
		result.RiskScore = 0.85
		result.Confidence = max(result.Confidence, 0.8)
	case containsAny(text, mediumRiskPhrases), result.Label == LabelDepression, result.Label == LabelAnxiety:
		result.RiskLevel = RiskMedium
		result.RiskScore = 0.5
		result.Confidence = max(result.Confidence, 0.72)
	}

	return result, nil
}
