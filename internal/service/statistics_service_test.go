package service

import (
	"context"
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"
)

func TestStatisticsOverview(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	empty, err := s.stats.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if empty.BankTotal != 0 || empty.QuestionTotal != 0 || len(empty.ByType) != len(model.QuestionTypes) {
		t.Fatalf("unexpected empty overview %+v", empty)
	}

	a := s.mustImport(t, "A", samplePayload)
	s.mustImport(t, "B", secondPayload)
	qs := s.questionsOf(t, a.BankID)

	multi := questionByType(t, qs, model.QuestionTypeMultiple)
	fill := questionByType(t, qs, model.QuestionTypeFillBlank)
	if _, err := s.answer.Verify(ctx, multi.ID, util.StringPtr("A,C")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.answer.Verify(ctx, fill.ID, util.StringPtr("paris")); err != nil {
		t.Fatal(err)
	}

	overview, err := s.stats.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if overview.BankTotal != 2 || overview.QuestionTotal != 7 {
		t.Fatalf("totals = %d banks %d questions", overview.BankTotal, overview.QuestionTotal)
	}

	want := map[model.QuestionType]model.TypeStatistics{
		model.QuestionTypeSingle:      {Count: 1},
		model.QuestionTypeMultiple:    {Count: 2, CompletedCount: 1, CorrectCount: 1},
		model.QuestionTypeTrueFalse:   {Count: 1},
		model.QuestionTypeFillBlank:   {Count: 2, CompletedCount: 1, CorrectCount: 0},
		model.QuestionTypeShortAnswer: {Count: 1},
	}
	for qt, w := range want {
		if got := overview.ByType[qt.String()]; got != w {
			t.Errorf("%s stats = %+v, want %+v", qt, got, w)
		}
	}
}
