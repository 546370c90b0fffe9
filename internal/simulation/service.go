package simulation

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"medsim-engine/internal/catalog"
	"medsim-engine/internal/content"
	"medsim-engine/internal/intent"
	"medsim-engine/internal/platform/analytics"
	"medsim-engine/internal/platform/logger"
	"medsim-engine/internal/platform/narrator"
	"medsim-engine/internal/report"
	"medsim-engine/internal/simerr"
)

// MemoryRecorder is what the service needs from the durable trainee
// memory; implemented by memory.Service.
type MemoryRecorder interface {
	RecordCompletion(ctx context.Context, userID string, rep *report.Report, questionTypes map[string]int) error
	HintsFor(ctx context.Context, userID string, asked map[string]int) []string
}

// Rival is the other session mode for the same user pool. Starting a
// session here discards the user's session there, keeping one active
// session per user across both modes.
type Rival interface {
	Discard(userID string)
}

// DefaultStageAdvance is how much wall-clock time moves the simulated
// disease one progression stage forward.
const DefaultStageAdvance = 10 * time.Minute

type Service struct {
	store     Store
	catalog   *catalog.Catalog
	bundle    *content.Bundle
	responder *Responder
	memories  MemoryRecorder
	events    analytics.Publisher
	narrator  narrator.Narrator
	log       *logger.Logger

	stageEvery time.Duration

	rngMu sync.Mutex
	rng   *rand.Rand

	rival Rival

	reportsMu   sync.Mutex
	lastReports map[string]*report.Report
}

func NewService(
	store Store,
	cat *catalog.Catalog,
	bundle *content.Bundle,
	memories MemoryRecorder,
	events analytics.Publisher,
	narr narrator.Narrator,
	rng *rand.Rand,
	log *logger.Logger,
) *Service {
	return &Service{
		store:       store,
		catalog:     cat,
		bundle:      bundle,
		responder:   NewResponder(bundle),
		memories:    memories,
		events:      events,
		narrator:    narr,
		log:         log.With("service", "simulation"),
		stageEvery:  DefaultStageAdvance,
		rng:         rng,
		lastReports: map[string]*report.Report{},
	}
}

// SetStageAdvance overrides the progression interval; tests shorten it.
func (s *Service) SetStageAdvance(d time.Duration) {
	if d > 0 {
		s.stageEvery = d
	}
}

// SetRival wires the structured-mode engine; called once at startup.
func (s *Service) SetRival(r Rival) {
	s.rival = r
}

// StartSimulation creates a fresh session for the user, replacing any
// session already running in either mode, and returns the patient's
// opening presentation.
func (s *Service) StartSimulation(ctx context.Context, userID, condition, language string, override *PatientProfile) (string, *Session, error) {
	def, ok := s.catalog.Get(condition)
	if !ok {
		return "", nil, simerr.NotFound("condition", condition)
	}
	if language == "" {
		language = content.DefaultLanguage
	}

	unlock := s.store.Lock(userID)
	defer unlock()

	if old := s.store.Get(userID); old != nil {
		s.log.Info("replacing active session", "user_id", userID, "old_condition", old.Condition)
	}
	if s.rival != nil {
		s.rival.Discard(userID)
	}

	profile := s.randomProfile()
	if override != nil {
		profile = *override
	}

	now := time.Now()
	sess := &Session{
		ID:              uuid.New(),
		UserID:          userID,
		Condition:       def.Condition,
		Language:        language,
		Profile:         profile,
		Stage:           StageInitial,
		Progression:     append([]string(nil), def.Progression...),
		Vitals:          cloneMap(def.Vitals),
		Labs:            cloneMap(def.Labs),
		ExamFindings:    cloneMap(def.ExamFindings),
		CulturalContext: cloneMap(def.CulturalContext),
		PainLevel:       4,
		Consciousness:   ConsciousnessAlert,
		Mood:            MoodCooperative,
		Emotion:         EmotionCalm,
		Revealed:        map[string]bool{},
		StartTime:       now,
		LastActivity:    now,
	}

	opening := s.responder.Opening(sess, mainComplaint(def))
	sess.History = append(sess.History, HistoryEntry{
		Type:      EntryResponse,
		Content:   opening,
		Timestamp: now,
	})
	sess.Stage = StageActive

	s.store.Put(userID, sess)
	s.events.Publish(ctx, analytics.Event{
		Name:      "simulation_started",
		UserID:    userID,
		SessionID: sess.ID.String(),
		Fields:    map[string]interface{}{"condition": sess.Condition, "language": language},
	})
	s.log.Info("simulation started", "user_id", userID, "condition", sess.Condition)

	return opening, sess.snapshot(), nil
}

// QuestionResult is the outcome of one trainee question.
type QuestionResult struct {
	Response string   `json:"response"`
	Active   bool     `json:"is_simulation_active"`
	Hints    []string `json:"hints"`
}

// HandleQuestion runs one interview turn. A user with no active session
// gets a localized notice, never an error.
func (s *Service) HandleQuestion(ctx context.Context, userID, utterance, language string) QuestionResult {
	unlock := s.store.Lock(userID)
	defer unlock()

	sess := s.store.Get(userID)
	if sess == nil {
		if language == "" {
			language = content.DefaultLanguage
		}
		return QuestionResult{
			Response: s.bundle.Text("no_active_session", language),
			Active:   false,
		}
	}

	now := time.Now()
	a := intent.Classify(utterance)

	s.advanceStage(sess, now)
	if a.Urgency == intent.UrgencyHigh {
		sess.Mood = MoodAnxious
		sess.Emotion = EmotionScared
	}

	response := s.responder.Respond(sess, a)

	analysis := a
	sess.History = append(sess.History,
		HistoryEntry{Type: EntryQuestion, Content: utterance, Timestamp: now, Analysis: &analysis},
		HistoryEntry{Type: EntryResponse, Content: response, Timestamp: now},
	)
	sess.LastActivity = now

	hints := s.memories.HintsFor(ctx, userID, sess.AskedIntents())

	return QuestionResult{Response: response, Active: true, Hints: hints}
}

// advanceStage moves the disease one progression stage when enough
// wall-clock time has passed, clamping pain at 10. The index never
// reaches len(Progression).
func (s *Service) advanceStage(sess *Session, now time.Time) {
	if sess.SymptomStageIndex+1 >= len(sess.Progression) {
		return
	}
	elapsed := now.Sub(sess.StartTime)
	if elapsed >= s.stageEvery*time.Duration(sess.SymptomStageIndex+1) {
		sess.SymptomStageIndex++
		if sess.PainLevel < 10 {
			sess.PainLevel++
		}
		sess.ExamFindings["course"] = sess.Progression[sess.SymptomStageIndex]
		s.log.Debug("symptom stage advanced",
			"user_id", sess.UserID, "stage_index", sess.SymptomStageIndex, "pain", sess.PainLevel)
	}
}

// EndSimulation finalizes the user's session: computes the report,
// merges the trainee memory, emits analytics and removes the session.
// The returned string is the localized farewell shown to the trainee.
func (s *Service) EndSimulation(ctx context.Context, userID string) (string, *report.Report, error) {
	unlock := s.store.Lock(userID)
	defer unlock()

	sess := s.store.Get(userID)
	if sess == nil {
		return "", nil, simerr.NotFound("simulation", userID)
	}
	farewell := s.bundle.Text("session_ended", sess.Language)

	now := time.Now()
	sess.Stage = StageCompleted
	sess.EndTime = &now

	intents := sess.AskedIntents()
	def, _ := s.catalog.Get(sess.Condition)
	rep := report.FromEncounter(report.Encounter{
		SessionID:  sess.ID.String(),
		UserID:     userID,
		Condition:  sess.Condition,
		Start:      sess.StartTime,
		End:        now,
		Intents:    intents,
		Questions:  sess.QuestionCount(),
		Objectives: def.LearningObjectives,
	})

	// Best effort: a narrated summary is nicer, the computed one is
	// always available.
	nctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if text, err := s.narrator.Narrate(nctx, rep); err == nil && text != "" {
		rep.Summary = text
	}
	cancel()

	if err := s.memories.RecordCompletion(ctx, userID, rep, intents); err != nil {
		s.log.Error("failed to record completion", "user_id", userID, "error", err)
	}
	s.events.Publish(ctx, analytics.Event{
		Name:      "simulation_completed",
		UserID:    userID,
		SessionID: sess.ID.String(),
		Fields:    map[string]interface{}{"condition": sess.Condition, "grade": rep.Grade, "percentage": rep.Percentage},
	})

	s.store.Delete(userID)

	s.reportsMu.Lock()
	s.lastReports[userID] = rep
	s.reportsMu.Unlock()

	s.log.Info("simulation ended", "user_id", userID, "grade", rep.Grade, "questions", rep.QuestionCount)
	return farewell, rep, nil
}

// GetStatus returns a copy of the user's live session, or nil.
func (s *Service) GetStatus(userID string) *Session {
	unlock := s.store.Lock(userID)
	defer unlock()
	sess := s.store.Get(userID)
	if sess == nil {
		return nil
	}
	return sess.snapshot()
}

// LastReport returns the most recent finalized report for the user.
func (s *Service) LastReport(userID string) *report.Report {
	s.reportsMu.Lock()
	defer s.reportsMu.Unlock()
	return s.lastReports[userID]
}

// Discard drops the user's session without finalizing it. Used when the
// user switches to the structured mode.
func (s *Service) Discard(userID string) {
	unlock := s.store.Lock(userID)
	defer unlock()
	if s.store.Get(userID) != nil {
		s.log.Info("discarding session for mode switch", "user_id", userID)
		s.store.Delete(userID)
	}
}

// EvictIdle removes sessions idle beyond ttl. Runs between requests
// only; a session whose lock is held is skipped until the next sweep.
func (s *Service) EvictIdle(ttl time.Duration) int {
	evicted := s.store.Evict(ttl)
	for _, sess := range evicted {
		s.log.Info("evicted idle session", "user_id", sess.UserID, "condition", sess.Condition)
		s.events.Publish(context.Background(), analytics.Event{
			Name:      "session_evicted",
			UserID:    sess.UserID,
			SessionID: sess.ID.String(),
		})
	}
	return len(evicted)
}

func (s *Service) randomProfile() PatientProfile {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return RandomProfile(s.rng)
}

// snapshot copies the session so callers can read it after the lock is
// released.
func (sess *Session) snapshot() *Session {
	cp := *sess
	cp.History = append([]HistoryEntry(nil), sess.History...)
	cp.Progression = append([]string(nil), sess.Progression...)
	cp.Vitals = cloneMap(sess.Vitals)
	cp.Labs = cloneMap(sess.Labs)
	cp.ExamFindings = cloneMap(sess.ExamFindings)
	cp.CulturalContext = cloneMap(sess.CulturalContext)
	cp.Revealed = make(map[string]bool, len(sess.Revealed))
	for k, v := range sess.Revealed {
		cp.Revealed[k] = v
	}
	return &cp
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func mainComplaint(def catalog.CaseDefinition) string {
	if len(def.Symptoms) == 0 {
		return "feeling unwell"
	}
	if len(def.Symptoms) == 1 {
		return def.Symptoms[0]
	}
	return strings.Join(def.Symptoms[:2], " and ")
}
