package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.drv.DB().Ping())
}

func TestMemoryDSN_Unique(t *testing.T) {
	assert.NotEqual(t, MemoryDSN(), MemoryDSN())
}

func TestStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	a := openTestStore(t).EventRepo()
	b := openTestStore(t).EventRepo()

	require.NoError(t, a.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s", A: 2, B: 2, Chosen: 5, Product: 4}))

	got, err := b.QueryAnswerEvents(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var got string
	require.NoError(t, s.drv.DB().QueryRow("PRAGMA foreign_keys").Scan(&got))
	assert.Equal(t, "1", got)
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", A: 4, B: 7, Chosen: 28, Product: 28, Correct: true, ScoreAfter: 10, Transition: "mastered",
	}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", A: 3, B: 3, Chosen: 12, Product: 9, Correct: false, ScoreAfter: -1,
	}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "other", A: 1, B: 1, Chosen: 1, Product: 1, Correct: true, ScoreAfter: 1,
	}))

	records, err := repo.QueryAnswerEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 4, records[0].A)
	assert.Equal(t, 7, records[0].B)
	assert.True(t, records[0].Correct)
	assert.Equal(t, "mastered", records[0].Transition)
	assert.False(t, records[0].Timestamp.IsZero())

	assert.Equal(t, -1, records[1].ScoreAfter)
	assert.False(t, records[1].Correct)
	assert.Greater(t, records[1].Sequence, records[0].Sequence)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s1", A: 2, B: 5, Chosen: 10, Product: 10, Correct: true}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionEnd, QuestionsPlayed: 1, SessionScore: 1}))

	answers, err := repo.QueryAnswerEvents(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, int64(2), answers[0].Sequence)

	sums, err := repo.QuerySessionSummaries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	assert.Equal(t, int64(3), sums[0].Sequence)
}

func TestTrickiestFacts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	miss := func(a, b int) {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", A: a, B: b, Chosen: 1, Product: a * b, Correct: false,
		}))
	}
	miss(7, 8)
	miss(7, 8)
	miss(7, 8)
	miss(6, 9)
	miss(6, 9)
	miss(3, 4)
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", A: 2, B: 2, Chosen: 4, Product: 4, Correct: true,
	}))

	got, err := repo.TrickiestFacts(ctx, "s1", 2)
	require.NoError(t, err)
	assert.Equal(t, []FactMiss{
		{A: 7, B: 8, Misses: 3},
		{A: 6, B: 9, Misses: 2},
	}, got)

	none, err := repo.TrickiestFacts(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSessionAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answered, correct, err := repo.SessionAccuracy(ctx, "empty")
	require.NoError(t, err)
	assert.Zero(t, answered)
	assert.Zero(t, correct)

	for i, ok := range []bool{true, false, true, true} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", A: 2, B: i + 1, Product: 2 * (i + 1), Correct: ok,
		}))
	}

	answered, correct, err = repo.SessionAccuracy(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, answered)
	assert.Equal(t, 3, correct)
}

func TestQuerySessionSummaries_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: ActionStart, Mode: "classic"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: ActionEnd, Mode: "classic", QuestionsPlayed: 20, SessionScore: 17}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "b", Action: ActionResetMastery}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "b", Action: ActionEnd, Mode: "classic", QuestionsPlayed: 20, SessionScore: 20}))

	sums, err := repo.QuerySessionSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, "b", sums[0].SessionID)
	assert.Equal(t, 20, sums[0].SessionScore)
	assert.Equal(t, "a", sums[1].SessionID)
	assert.Equal(t, 17, sums[1].SessionScore)

	limited, err := repo.QuerySessionSummaries(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
