package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-ranker/internal/ranking"
)

const (
	// FieldCandidate is the structured log field key for a candidate identifier.
	FieldCandidate = "candidate"
	// FieldFinalScore is the structured log field key for the weighted final score.
	FieldFinalScore = "final_score"
	// FieldClassification is the structured log field key for the classification label.
	FieldClassification = "classification"
	// FieldRequestID is the structured log field key for HTTP request identifiers.
	FieldRequestID = "request_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ResultFields describes a ranking result: the candidate, the final score, the
// label and every factor score under its result key.
func ResultFields(candidate string, result ranking.Result) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldCandidate, Value: candidate},
		StringField{Key: FieldClassification, Value: result.Classification},
	)
	fields = append(fields, zap.Float64(FieldFinalScore, result.FinalScore))

	for _, f := range ranking.Factors() {
		fields = append(fields, zap.Float64(f.Key(), result.FactorScores.Get(f)))
	}

	return fields
}

// WithCandidate attaches the candidate identifier to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithCandidate(logger *zap.Logger, candidate string) *zap.Logger {
	return WithFields(logger, StringFields(StringField{Key: FieldCandidate, Value: candidate})...)
}
