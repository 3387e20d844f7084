package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-ranker/internal/ranking"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  candidate  ", Value: "  sarah.txt  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "candidate" || fields[0].String != "sarah.txt" {
		t.Fatalf("unexpected candidate field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestResultFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	result := ranking.Result{
		FinalScore:     79.15,
		Classification: ranking.LabelOutstanding,
		FactorScores: ranking.FactorScores{
			SkillsMatch:                80,
			ExperienceRelevance:        78,
			EducationBackground:        100,
			AchievementsCertifications: 75,
			CommunicationQuality:       44,
		},
	}

	logger.Info("ranked", ResultFields("sarah_johnson.txt", result)...)

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldCandidate] != "sarah_johnson.txt" {
		t.Fatalf("unexpected candidate: %v", ctx[FieldCandidate])
	}
	if ctx[FieldClassification] != ranking.LabelOutstanding {
		t.Fatalf("unexpected classification: %v", ctx[FieldClassification])
	}
	if ctx[FieldFinalScore] != 79.15 {
		t.Fatalf("unexpected final score: %v", ctx[FieldFinalScore])
	}
	if ctx["education_background"] != 100.0 {
		t.Fatalf("unexpected education score: %v", ctx["education_background"])
	}
	if ctx["communication_quality"] != 44.0 {
		t.Fatalf("unexpected communication score: %v", ctx["communication_quality"])
	}
}

func TestWithCandidate(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	WithCandidate(logger, " mike_chen.txt ").Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if got := entries[0].ContextMap()[FieldCandidate]; got != "mike_chen.txt" {
		t.Fatalf("expected candidate field, got %q", got)
	}

	enriched := WithCandidate(nil, "x")
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}
