package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeRejectsEmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		result, err := Analyze(content)
		assert.ErrorIs(t, err, ErrEmptyContent)
		assert.Nil(t, result)
	}
}

func TestAnalyzeEmotionLabels(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		label      string
		confidence float64
		riskLevel  string
	}{
		{"joy", "I feel happy today", LabelJoy, 0.75, RiskLow},
		{"sadness", "I've been crying all night", LabelSadness, 0.75, RiskLow},
		{"anger", "I'm so furious at everything", LabelAnger, 0.75, RiskLow},
		{"fear", "I'm terrified of going outside", LabelFear, 0.75, RiskLow},
		{"surprise", "wow, that was unexpected", LabelSurprise, 0.75, RiskLow},
		{"anxiety escalates to medium", "I feel anxious about tomorrow", LabelAnxiety, 0.75, RiskMedium},
		{"stress", "the pressure at work is constant", LabelStress, 0.75, RiskLow},
		{"depression escalates to medium", "I've been depressed for weeks", LabelDepression, 0.75, RiskMedium},
		{"neutral", "the meeting is at noon", LabelNeutral, 0.7, RiskLow},
		{"case insensitive", "I Feel HAPPY Today", LabelJoy, 0.75, RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Analyze(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.label, result.Label)
			assert.InDelta(t, tt.confidence, result.Confidence, 1e-9)
			assert.Equal(t, tt.riskLevel, result.RiskLevel)
			assert.Equal(t, ModelVersion, result.ModelVersion)
		})
	}
}

func TestAnalyzeOrderedTableFirstMatchWins(t *testing.T) {
	// "sad" (sadness) appears before the stress group in the table.
	result, err := Analyze("I'm sad and stressed")
	require.NoError(t, err)
	assert.Equal(t, LabelSadness, result.Label)
}

func TestAnalyzeHighRiskEscalation(t *testing.T) {
	result, err := Analyze("I want to kill myself")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, result.RiskLevel)
	assert.InDelta(t, 0.85, result.RiskScore, 1e-9)
	assert.GreaterOrEqual(t, result.Confidence, 0.8)
}

func TestAnalyzeHighRiskOverridesEmotionRisk(t *testing.T) {
	// A joyful phrasing must not mask a high-risk phrase.
	result, err := Analyze("I would be glad to end it all")
	require.NoError(t, err)
	assert.Equal(t, LabelJoy, result.Label)
	assert.Equal(t, RiskHigh, result.RiskLevel)
	assert.InDelta(t, 0.85, result.RiskScore, 1e-9)
}

func TestAnalyzeMediumRiskPhrases(t *testing.T) {
	result, err := Analyze("there is just no point anymore")
	require.NoError(t, err)
	assert.Equal(t, RiskMedium, result.RiskLevel)
	assert.InDelta(t, 0.5, result.RiskScore, 1e-9)
	assert.GreaterOrEqual(t, result.Confidence, 0.72)
}

func TestAnalyzeLowRiskDefaults(t *testing.T) {
	result, err := Analyze("I feel happy today")
	require.NoError(t, err)
	assert.Equal(t, LabelJoy, result.Label)
	assert.Equal(t, RiskLow, result.RiskLevel)
	assert.Zero(t, result.RiskScore)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	first, err := Analyze("I'm worried about everything")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Analyze("I'm worried about everything")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
