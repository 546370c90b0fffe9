package simulation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsim-engine/internal/catalog"
	"medsim-engine/internal/content"
	"medsim-engine/internal/memory"
	"medsim-engine/internal/platform/analytics"
	"medsim-engine/internal/platform/logger"
	"medsim-engine/internal/platform/narrator"
	"medsim-engine/internal/simerr"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	memSvc := memory.NewService(memory.NewMemoryRepository(), logger.NewNop())
	return NewService(
		NewMemoryStore(),
		catalog.New(),
		content.NewBundle(),
		memSvc,
		analytics.NewNoop(),
		narrator.NewDisabled(),
		rand.New(rand.NewSource(1)),
		logger.NewNop(),
	)
}

func TestStartSimulationProducesOpeningPresentation(t *testing.T) {
	svc := newTestService(t)

	opening, sess, err := svc.StartSimulation(context.Background(), "u1", "dengue fever", "en", nil)
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.NotEmpty(t, opening)
	assert.Contains(t, opening, sess.Profile.Name)
	assert.Equal(t, StageActive, sess.Stage)
	assert.Equal(t, "dengue fever", sess.Condition)
	assert.Equal(t, 0, sess.SymptomStageIndex)
	require.Len(t, sess.History, 1)
	assert.Equal(t, EntryResponse, sess.History[0].Type)
}

func TestStartSimulationUnknownCondition(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.StartSimulation(context.Background(), "u1", "common cold", "en", nil)
	require.Error(t, err)
	assert.True(t, simerr.IsNotFound(err))
}

func TestStartSimulationReplacesActiveSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, first, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)
	_, second, err := svc.StartSimulation(ctx, "u1", "malaria", "en", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	status := svc.GetStatus("u1")
	require.NotNil(t, status)
	assert.Equal(t, "malaria", status.Condition)
}

func TestHandleQuestionWithoutSession(t *testing.T) {
	svc := newTestService(t)

	res := svc.HandleQuestion(context.Background(), "nobody", "what happened to you?", "en")
	assert.False(t, res.Active)
	assert.Equal(t, content.NewBundle().Text("no_active_session", "en"), res.Response)
}

func TestDisclosureIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)

	first := svc.HandleQuestion(ctx, "u1", "what happened to you?", "en")
	require.True(t, first.Active)
	second := svc.HandleQuestion(ctx, "u1", "what happened to you?", "en")
	require.True(t, second.Active)

	assert.NotEqual(t, first.Response, second.Response)
	assert.Equal(t, content.NewBundle().Text("already_told", "en"), second.Response)
}

func TestHandleQuestionAppendsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)

	svc.HandleQuestion(ctx, "u1", "do you have pain?", "en")
	status := svc.GetStatus("u1")
	require.NotNil(t, status)

	// Opening plus question/response pair.
	require.Len(t, status.History, 3)
	assert.Equal(t, EntryQuestion, status.History[1].Type)
	require.NotNil(t, status.History[1].Analysis)
	assert.Equal(t, "symptom_assessment", status.History[1].Analysis.Intent)
	assert.Equal(t, EntryResponse, status.History[2].Type)
}

func TestStageAdvancesWithElapsedTime(t *testing.T) {
	svc := newTestService(t)
	svc.SetStageAdvance(10 * time.Minute)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)

	// Backdate the start so one full interval has elapsed.
	unlock := svc.store.Lock("u1")
	sess := svc.store.Get("u1")
	sess.StartTime = time.Now().Add(-11 * time.Minute)
	painBefore := sess.PainLevel
	unlock()

	svc.HandleQuestion(ctx, "u1", "any fever?", "en")

	status := svc.GetStatus("u1")
	assert.Equal(t, 1, status.SymptomStageIndex)
	assert.Equal(t, painBefore+1, status.PainLevel)
}

func TestStageIndexStaysInBounds(t *testing.T) {
	svc := newTestService(t)
	svc.SetStageAdvance(time.Nanosecond)
	ctx := context.Background()

	_, sess, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)
	stages := len(sess.Progression)
	require.Greater(t, stages, 1)

	questions := []string{"any pain?", "any fever?", "where is it?", "how long?", "what do you do for work?", "any allergies?"}
	for _, q := range questions {
		svc.HandleQuestion(ctx, "u1", q, "en")
		status := svc.GetStatus("u1")
		assert.GreaterOrEqual(t, status.SymptomStageIndex, 0)
		assert.Less(t, status.SymptomStageIndex, stages)
	}
}

func TestHighUrgencyShiftsMood(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "malaria", "en", nil)
	require.NoError(t, err)

	svc.HandleQuestion(ctx, "u1", "this is an emergency, are you with me?", "en")

	status := svc.GetStatus("u1")
	assert.Equal(t, MoodAnxious, status.Mood)
	assert.Equal(t, EmotionScared, status.Emotion)
}

func TestEndSimulationWithoutSession(t *testing.T) {
	svc := newTestService(t)

	farewell, rep, err := svc.EndSimulation(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, simerr.IsNotFound(err))
	assert.Nil(t, rep)
	assert.Empty(t, farewell)
}

func TestEndSimulationProducesReportAndClearsSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)
	svc.HandleQuestion(ctx, "u1", "what happened to you?", "en")
	svc.HandleQuestion(ctx, "u1", "do you have pain?", "en")

	farewell, rep, err := svc.EndSimulation(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, content.NewBundle().Text("session_ended", "en"), farewell)

	assert.Equal(t, "dengue fever", rep.Condition)
	assert.Equal(t, 2, rep.QuestionCount)
	assert.NotEmpty(t, rep.Grade)
	assert.Nil(t, svc.GetStatus("u1"))
	assert.Equal(t, rep, svc.LastReport("u1"))

	// Ending again is the recoverable no-session case.
	_, _, err = svc.EndSimulation(ctx, "u1")
	assert.True(t, simerr.IsNotFound(err))
}

func TestSwahiliLocalization(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "sw", nil)
	require.NoError(t, err)

	res := svc.HandleQuestion(ctx, "u1", "what happened to you?", "sw")
	assert.Contains(t, res.Response, "daktari")

	// The farewell follows the session language too.
	farewell, _, err := svc.EndSimulation(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, content.NewBundle().Text("session_ended", "sw"), farewell)
}

func TestProfileOverride(t *testing.T) {
	svc := newTestService(t)

	override := &PatientProfile{Name: "Zuhura", Age: 41, Gender: "female", Occupation: "nurse", Location: "Dodoma"}
	opening, sess, err := svc.StartSimulation(context.Background(), "u1", "diabetes", "en", override)
	require.NoError(t, err)
	assert.Equal(t, "Zuhura", sess.Profile.Name)
	assert.Contains(t, opening, "Zuhura")
	assert.Contains(t, opening, "41")
}

func TestConcurrentUsersDoNotInterleave(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	users := []string{"alice", "bob"}
	for _, u := range users {
		_, _, err := svc.StartSimulation(ctx, u, "dengue fever", "en", nil)
		require.NoError(t, err)
	}

	const perUser = 20
	questions := []string{"any pain?", "any fever?", "how long?", "where is it?"}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for i := 0; i < perUser; i++ {
				svc.HandleQuestion(ctx, user, questions[i%len(questions)], "en")
			}
		}(u)
	}
	wg.Wait()

	for _, u := range users {
		status := svc.GetStatus(u)
		require.NotNil(t, status)
		// Opening plus one question/response pair per call.
		assert.Len(t, status.History, 1+2*perUser)
		assert.Equal(t, u, status.UserID)
	}
}

func TestEvictIdleRemovesOnlyStaleSessions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "stale", "malaria", "en", nil)
	require.NoError(t, err)
	_, _, err = svc.StartSimulation(ctx, "fresh", "malaria", "en", nil)
	require.NoError(t, err)

	unlock := svc.store.Lock("stale")
	svc.store.Get("stale").LastActivity = time.Now().Add(-2 * time.Hour)
	unlock()

	n := svc.EvictIdle(time.Hour)
	assert.Equal(t, 1, n)
	assert.Nil(t, svc.GetStatus("stale"))
	assert.NotNil(t, svc.GetStatus("fresh"))
}

func TestDiscardDropsWithoutReport(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.StartSimulation(ctx, "u1", "dengue fever", "en", nil)
	require.NoError(t, err)

	svc.Discard("u1")
	assert.Nil(t, svc.GetStatus("u1"))
	assert.Nil(t, svc.LastReport("u1"))
}
