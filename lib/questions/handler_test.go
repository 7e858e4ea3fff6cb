package questions

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-screening-bot/lib/questions/kb"
	"hr-screening-bot/models"
)

type stubKB struct {
	data map[string][]string
}

func (s stubKB) Get(technology string) []string {
	stored := s.data[kb.Normalize(technology)]
	result := make([]string, len(stored))
	copy(result, stored)
	return result
}

func (s stubKB) Len() int {
	return len(s.data)
}

type stubGen struct {
	batches  [][]string
	errs     []error
	calls    int
	counts   []int
	excludes [][]string
}

func (s *stubGen) GenerateTechQuestions(ctx context.Context, sessionID, technology string, count int, exclude []string) ([]string, error) {
	idx := s.calls
	s.calls++
	s.counts = append(s.counts, count)
	s.excludes = append(s.excludes, exclude)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	if idx < len(s.batches) {
		return s.batches[idx], nil
	}
	return nil, nil
}

func texts(set QuestionSet) []string {
	result := make([]string, 0, len(set.Questions))
	for _, q := range set.Questions {
		result = append(result, q.Text)
	}
	return result
}

func TestGetQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run(`kb full hit check`, func(t *testing.T) {
		gen := &stubGen{}
		source := NewInstance(stubKB{data: map[string][]string{
			"python": {"Вопрос про списки?", "Вопрос про декораторы?", "Вопрос про GIL?", "Вопрос про генераторы?"},
		}}, gen)

		set := source.GetQuestions(ctx, "s1", "python", 3)
		require.False(t, set.Degraded)
		require.Equal(t, []string{"Вопрос про списки?", "Вопрос про декораторы?", "Вопрос про GIL?"}, texts(set))
		for _, q := range set.Questions {
			require.Equal(t, models.OriginRetrieved, q.Origin)
		}
		require.Equal(t, 0, gen.calls)
	})

	t.Run(`technology normalization check`, func(t *testing.T) {
		gen := &stubGen{}
		source := NewInstance(stubKB{data: map[string][]string{
			"python": {"Вопрос про списки?", "Вопрос про декораторы?", "Вопрос про GIL?"},
		}}, gen)

		plain := source.GetQuestions(ctx, "s1", "python", 3)
		shouted := source.GetQuestions(ctx, "s1", "  PYTHON ", 3)
		require.Equal(t, texts(plain), texts(shouted))
		require.Equal(t, 0, gen.calls)
	})

	t.Run(`kb partial hit check`, func(t *testing.T) {
		gen := &stubGen{batches: [][]string{{"Сгенерированный вопрос один?", "Сгенерированный вопрос два?"}}}
		source := NewInstance(stubKB{data: map[string][]string{
			"elixir": {"Вопрос из базы?"},
		}}, gen)

		set := source.GetQuestions(ctx, "s1", "elixir", 3)
		require.False(t, set.Degraded)
		require.Len(t, set.Questions, 3)
		// вопросы из базы идут раньше сгенерированных
		require.Equal(t, models.OriginRetrieved, set.Questions[0].Origin)
		require.Equal(t, models.OriginGenerated, set.Questions[1].Origin)
		require.Equal(t, models.OriginGenerated, set.Questions[2].Origin)
		require.Equal(t, 1, gen.calls)
		require.Equal(t, 2, gen.counts[0])
	})

	t.Run(`kb miss check`, func(t *testing.T) {
		gen := &stubGen{batches: [][]string{{"Первый вопрос по теме?", "Второй вопрос по теме?", "Третий вопрос по теме?"}}}
		source := NewInstance(stubKB{data: map[string][]string{}}, gen)

		set := source.GetQuestions(ctx, "s1", "cobol", 3)
		require.False(t, set.Degraded)
		require.Len(t, set.Questions, 3)
		for _, q := range set.Questions {
			require.Equal(t, models.OriginGenerated, q.Origin)
		}
	})

	t.Run(`generation failure on miss check`, func(t *testing.T) {
		gen := &stubGen{errs: []error{errors.New("нет соединения")}}
		source := NewInstance(stubKB{data: map[string][]string{}}, gen)

		set := source.GetQuestions(ctx, "s1", "cobol", 3)
		require.True(t, set.Degraded)
		require.Empty(t, set.Questions)
		require.Equal(t, 1, gen.calls)
	})

	t.Run(`generation failure keeps retrieved prefix check`, func(t *testing.T) {
		gen := &stubGen{errs: []error{errors.New("нет соединения")}}
		source := NewInstance(stubKB{data: map[string][]string{
			"elixir": {"Вопрос из базы?"},
		}}, gen)

		set := source.GetQuestions(ctx, "s1", "elixir", 3)
		require.True(t, set.Degraded)
		require.Equal(t, []string{"Вопрос из базы?"}, texts(set))
	})

	t.Run(`dedupe and single supplemental batch check`, func(t *testing.T) {
		gen := &stubGen{batches: [][]string{
			// дубль вопроса из базы в другом регистре
			{"вопрос  из базы?", "Новый вопрос?"},
			{"Добивочный вопрос?"},
		}}
		source := NewInstance(stubKB{data: map[string][]string{
			"elixir": {"Вопрос из базы?"},
		}}, gen)

		set := source.GetQuestions(ctx, "s1", "elixir", 3)
		require.False(t, set.Degraded)
		require.Equal(t, []string{"Вопрос из базы?", "Новый вопрос?", "Добивочный вопрос?"}, texts(set))
		require.Equal(t, 2, gen.calls)
		// в добивочном запросе передаются уже использованные вопросы
		require.Equal(t, []string{"Вопрос из базы?", "Новый вопрос?"}, gen.excludes[1])
	})

	t.Run(`supplemental batch still short check`, func(t *testing.T) {
		gen := &stubGen{batches: [][]string{
			{"Новый вопрос?", "Новый вопрос?", "новый  вопрос?"},
			{},
		}}
		source := NewInstance(stubKB{data: map[string][]string{}}, gen)

		set := source.GetQuestions(ctx, "s1", "cobol", 3)
		require.True(t, set.Degraded)
		require.Equal(t, []string{"Новый вопрос?"}, texts(set))
		// строго одна добивочная генерация
		require.Equal(t, 2, gen.calls)
	})

	t.Run(`zero count check`, func(t *testing.T) {
		gen := &stubGen{}
		source := NewInstance(stubKB{data: map[string][]string{}}, gen)
		set := source.GetQuestions(ctx, "s1", "python", 0)
		require.Empty(t, set.Questions)
		require.False(t, set.Degraded)
		require.Equal(t, 0, gen.calls)
	})
}
