package service

import (
	"context"
	"errors"
	"testing"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"
)

func questionByType(t *testing.T, qs []model.Question, qt model.QuestionType) model.Question {
	t.Helper()
	for _, q := range qs {
		if q.Type == qt {
			return q
		}
	}
	t.Fatalf("no %s question", qt)
	return model.Question{}
}

func TestVerifyMultipleChoiceOrderInsensitive(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)
	multi := questionByType(t, s.questionsOf(t, res.BankID), model.QuestionTypeMultiple)

	for _, answer := range []string{"C, A", "A,C", `["C","A"]`} {
		resp, err := s.answer.Verify(ctx, multi.ID, util.StringPtr(answer))
		if err != nil {
			t.Fatalf("verify %q: %v", answer, err)
		}
		if !resp.IsCorrect || resp.UserAnswer != `["A","C"]` {
			t.Fatalf("verify %q = %+v", answer, resp)
		}
		if resp.CorrectAnswer != "A, C" {
			t.Fatalf("display answer = %q, want %q", resp.CorrectAnswer, "A, C")
		}
	}
}

func TestVerifyLastWriteWins(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)
	single := questionByType(t, s.questionsOf(t, res.BankID), model.QuestionTypeSingle)

	if resp, err := s.answer.Verify(ctx, single.ID, util.StringPtr("B")); err != nil || !resp.IsCorrect {
		t.Fatalf("first verify = %+v, %v", resp, err)
	}
	resp, err := s.answer.Verify(ctx, single.ID, util.StringPtr(" C "))
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if resp.IsCorrect || resp.Message != messageWrong || resp.UserAnswer != "C" {
		t.Fatalf("unexpected second result %+v", resp)
	}

	stored, err := s.question.FindByID(ctx, single.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if util.Deref(stored.UserAnswer) != "C" || !stored.IsCompleted || stored.IsCorrect == nil || *stored.IsCorrect {
		t.Fatalf("stored state %+v does not reflect latest submission", stored)
	}
}

func TestVerifyMalformedMultipleAnswer(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)
	multi := questionByType(t, s.questionsOf(t, res.BankID), model.QuestionTypeMultiple)

	resp, err := s.answer.Verify(ctx, multi.ID, util.StringPtr("[A,B"))
	if err != nil {
		t.Fatalf("malformed answer must not error: %v", err)
	}
	if resp.IsCorrect || resp.UserAnswer != "[A,B" {
		t.Fatalf("unexpected result %+v", resp)
	}
}

func TestVerifyNilAnswerAndMissingQuestion(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)
	fill := questionByType(t, s.questionsOf(t, res.BankID), model.QuestionTypeFillBlank)

	resp, err := s.answer.Verify(ctx, fill.ID, nil)
	if err != nil {
		t.Fatalf("verify nil answer: %v", err)
	}
	if resp.IsCorrect || resp.UserAnswer != "" || resp.CorrectAnswer != "Paris" || resp.Analysis != nil {
		t.Fatalf("unexpected result %+v", resp)
	}

	if _, err := s.answer.Verify(ctx, 4242, util.StringPtr("x")); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if _, err := s.answer.Verify(ctx, 0, util.StringPtr("x")); !errors.Is(err, util.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

func TestVerifyRefreshesBankCounters(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	res := s.mustImport(t, "A", samplePayload)
	qs := s.questionsOf(t, res.BankID)

	single := questionByType(t, qs, model.QuestionTypeSingle)
	tf := questionByType(t, qs, model.QuestionTypeTrueFalse)
	if _, err := s.answer.Verify(ctx, single.ID, util.StringPtr("A")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.answer.Verify(ctx, tf.ID, util.StringPtr("1")); err != nil {
		t.Fatal(err)
	}

	bank, err := s.banks.FindByID(ctx, res.BankID)
	if err != nil {
		t.Fatal(err)
	}
	if bank.CompletedCount != 2 || bank.WrongCount != 1 {
		t.Fatalf("counters = completed %d wrong %d, want 2 and 1", bank.CompletedCount, bank.WrongCount)
	}

	// 改正错题后错题数归零
	if _, err := s.answer.Verify(ctx, single.ID, util.StringPtr("B")); err != nil {
		t.Fatal(err)
	}
	bank, _ = s.banks.FindByID(ctx, res.BankID)
	if bank.CompletedCount != 2 || bank.WrongCount != 0 {
		t.Fatalf("counters after fix = completed %d wrong %d", bank.CompletedCount, bank.WrongCount)
	}
}
