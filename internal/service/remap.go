package service

import (
	"context"
	"fmt"

	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
)

// 题目和选项分两阶段写入：先批量插入题目拿到自增 ID，再把 ID 回填到选项上。
// 导入按位置对应（第 i 道题的 ID 对应第 i 条记录的选项），
// 合并按旧题目 ID 对应，两个源题库的题目交错在一起时不能依赖位置。

type pendingQuestion struct {
	question model.Question
	options  []model.QuestionOption
}

// questionGraph 导入时待写入的题目与选项，顺序与源记录一致
type questionGraph struct {
	items []pendingQuestion
}

func newQuestionGraph(bankID uint, records []QuestionRecord) *questionGraph {
	g := &questionGraph{items: make([]pendingQuestion, 0, len(records))}
	for _, rec := range records {
		q := model.Question{
			BankID:        bankID,
			Content:       rec.Content,
			Type:          rec.Type,
			CorrectAnswer: &rec.CorrectAnswer,
			Analysis:      rec.Analysis,
		}
		q.ResetProgress()

		var opts []model.QuestionOption
		if rec.Type.HasOptions() {
			opts = make([]model.QuestionOption, 0, len(rec.Options))
			for _, o := range rec.Options {
				opts = append(opts, model.QuestionOption{Label: o.Label, Content: o.Text})
			}
		}
		g.items = append(g.items, pendingQuestion{question: q, options: opts})
	}
	return g
}

// persist 返回写入的题目数和选项数
func (g *questionGraph) persist(ctx context.Context, repo *repository.QuestionRepository, batchSize int) (int, int, error) {
	questions := make([]model.Question, len(g.items))
	for i := range g.items {
		questions[i] = g.items[i].question
	}
	if err := repo.CreateInBatches(ctx, questions, batchSize); err != nil {
		return 0, 0, fmt.Errorf("insert questions: %w", err)
	}

	var options []model.QuestionOption
	for i, item := range g.items {
		id := questions[i].ID
		if id == 0 {
			return 0, 0, fmt.Errorf("question %d has no generated id", i+1)
		}
		for _, opt := range item.options {
			opt.QuestionID = id
			options = append(options, opt)
		}
	}
	if err := repo.CreateOptionsInBatches(ctx, options, batchSize); err != nil {
		return 0, 0, fmt.Errorf("insert options: %w", err)
	}
	return len(questions), len(options), nil
}

// idRemap 旧题目 ID -> 新题目 ID
type idRemap map[uint]uint

// copyQuestions 复制题目到目标题库并清空学习进度，插入后记录新旧 ID 对应关系
func copyQuestions(ctx context.Context, repo *repository.QuestionRepository, sources []model.Question, destBankID uint, batchSize int) (idRemap, error) {
	copies := make([]model.Question, len(sources))
	for i, src := range sources {
		copies[i] = model.Question{
			BankID:        destBankID,
			Content:       src.Content,
			Type:          src.Type,
			CorrectAnswer: src.CorrectAnswer,
			Analysis:      src.Analysis,
		}
		copies[i].ResetProgress()
	}
	if err := repo.CreateInBatches(ctx, copies, batchSize); err != nil {
		return nil, fmt.Errorf("insert questions: %w", err)
	}

	remap := make(idRemap, len(sources))
	for i, src := range sources {
		if copies[i].ID == 0 {
			return nil, fmt.Errorf("copy of question %d has no generated id", src.ID)
		}
		remap[src.ID] = copies[i].ID
	}
	return remap, nil
}

// stamp 按旧题目 ID 生成新选项
func (m idRemap) stamp(options []model.QuestionOption) ([]model.QuestionOption, error) {
	out := make([]model.QuestionOption, 0, len(options))
	for _, opt := range options {
		newID, ok := m[opt.QuestionID]
		if !ok {
			return nil, fmt.Errorf("option %d references unknown question %d", opt.ID, opt.QuestionID)
		}
		out = append(out, model.QuestionOption{
			QuestionID: newID,
			Label:      opt.Label,
			Content:    opt.Content,
		})
	}
	return out, nil
}
