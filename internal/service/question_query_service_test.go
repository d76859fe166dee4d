package service

import (
	"context"
	"errors"
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"
)

func TestQueryQuestions(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", `{"type":"single","content":"pick","correct_answer":"A","options":[{"label":"C","text":"c"},{"label":"A","text":"a"},{"label":"B","text":"b"}]}
{"type":"fill_blank","content":"fill","correct_answer":"x"}`)

	all, err := s.query.QueryQuestions(ctx, res.BankID, util.QueryScopeAll)
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d questions, want 2", len(all))
	}
	labels := ""
	for _, o := range all[0].Options {
		labels += o.Label
	}
	if labels != "ABC" {
		t.Fatalf("options not sorted by label: %q", labels)
	}

	wrong, err := s.query.QueryQuestions(ctx, res.BankID, util.QueryScopeWrong)
	if err != nil || len(wrong) != 0 {
		t.Fatalf("expected no wrong questions yet, got %d (%v)", len(wrong), err)
	}

	if _, err := s.answer.Verify(ctx, all[1].ID, util.StringPtr("y")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.answer.Verify(ctx, all[0].ID, util.StringPtr("A")); err != nil {
		t.Fatal(err)
	}
	wrong, err = s.query.QueryQuestions(ctx, res.BankID, "WRONG")
	if err != nil {
		t.Fatal(err)
	}
	if len(wrong) != 1 || wrong[0].Content != "fill" {
		t.Fatalf("wrong questions = %+v", wrong)
	}

	if _, err := s.query.QueryQuestions(ctx, 0, ""); !errors.Is(err, util.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestQueryQuestionsByType(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)

	multi, err := s.query.QueryQuestionsByType(ctx, res.BankID, "multiple")
	if err != nil {
		t.Fatal(err)
	}
	if len(multi) != 1 || multi[0].Type != model.QuestionTypeMultiple || len(multi[0].Options) != 3 {
		t.Fatalf("unexpected result %+v", multi)
	}

	unknown, err := s.query.QueryQuestionsByType(ctx, res.BankID, "essay")
	if err != nil || unknown == nil || len(unknown) != 0 {
		t.Fatalf("unknown type should yield an empty list, got %v, %v", unknown, err)
	}
}
