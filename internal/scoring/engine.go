package scoring

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"medsim-engine/internal/catalog"
	"medsim-engine/internal/platform/analytics"
	"medsim-engine/internal/platform/logger"
	"medsim-engine/internal/report"
	"medsim-engine/internal/simerr"
)

// MemoryRecorder mirrors the simulation package's dependency on the
// durable trainee memory.
type MemoryRecorder interface {
	RecordCompletion(ctx context.Context, userID string, rep *report.Report, questionTypes map[string]int) error
}

// Rival is the conversational engine; starting a scenario discards the
// user's conversational session so one active session per user holds
// across both modes.
type Rival interface {
	Discard(userID string)
}

type outcomeTemplate struct {
	base     int
	outcome  string
	feedback string
	next     []string
}

// Fixed outcome templates per action type. The executed score is the
// base plus the injected jitter of -1, 0 or +1, floored at zero.
var outcomeTemplates = map[string]outcomeTemplate{
	"assess_patient": {
		base:     10,
		outcome:  "You complete a focused assessment of the patient.",
		feedback: "Good systematic start; assessment anchors everything that follows.",
		next:     []string{"order_tests", "ask_question", "initiate_treatment"},
	},
	"order_tests": {
		base:     10,
		outcome:  "The requested investigations are sent and results return.",
		feedback: "Targeted investigations; avoid ordering what won't change management.",
		next:     []string{"make_decision", "initiate_treatment", "consult_specialist"},
	},
	"initiate_treatment": {
		base:     15,
		outcome:  "Treatment is started and the patient is monitored for response.",
		feedback: "Timely treatment; keep reassessing for response and side effects.",
		next:     []string{"assess_patient", "make_decision"},
	},
	"make_decision": {
		base:     15,
		outcome:  "Your management decision is enacted by the team.",
		feedback: "Clear decision making; document your reasoning.",
		next:     []string{"assess_patient", "consult_specialist"},
	},
	"ask_question": {
		base:     5,
		outcome:  "The patient answers your question.",
		feedback: "History refines the picture; tie each question to a hypothesis.",
		next:     []string{"assess_patient", "order_tests"},
	},
	"consult_specialist": {
		base:     8,
		outcome:  "The specialist reviews the case and advises.",
		feedback: "Appropriate escalation; summarize the case clearly when referring.",
		next:     []string{"make_decision", "initiate_treatment"},
	},
}

// Engine runs structured, action-scored scenario sessions.
type Engine struct {
	mu       sync.Mutex
	sessions map[string]*ActionSession // by session id
	byUser   map[string]string         // user id -> session id

	catalog  *catalog.Catalog
	memories MemoryRecorder
	events   analytics.Publisher
	log      *logger.Logger
	rng      *rand.Rand
	rival    Rival
}

func NewEngine(cat *catalog.Catalog, memories MemoryRecorder, events analytics.Publisher, rng *rand.Rand, log *logger.Logger) *Engine {
	return &Engine{
		sessions: map[string]*ActionSession{},
		byUser:   map[string]string{},
		catalog:  cat,
		memories: memories,
		events:   events,
		log:      log.With("service", "scoring"),
		rng:      rng,
	}
}

// SetRival wires the conversational engine; called once at startup.
func (e *Engine) SetRival(r Rival) {
	e.rival = r
}

// AvailableScenarios lists scenarios matching the optional filters.
func (e *Engine) AvailableScenarios(difficulty, specialty string) []catalog.ScenarioDefinition {
	return e.catalog.Scenarios(difficulty, specialty)
}

// StartScenario opens a structured session for the user, replacing any
// session already running in either mode.
func (e *Engine) StartScenario(ctx context.Context, userID, scenarioID string) (*ActionSession, error) {
	sc, ok := e.catalog.Scenario(scenarioID)
	if !ok {
		return nil, simerr.NotFound("scenario", scenarioID)
	}
	if userID == "" {
		return nil, simerr.Validation("user_id is required")
	}

	if e.rival != nil {
		e.rival.Discard(userID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if oldID, ok := e.byUser[userID]; ok {
		e.log.Info("replacing active scenario session", "user_id", userID, "old_session", oldID)
		delete(e.sessions, oldID)
	}

	sess := newActionSession(userID, sc, time.Now())
	e.sessions[sess.ID.String()] = sess
	e.byUser[userID] = sess.ID.String()

	e.events.Publish(ctx, analytics.Event{
		Name:      "scenario_started",
		UserID:    userID,
		SessionID: sess.ID.String(),
		Fields:    map[string]interface{}{"scenario": sc.ID},
	})
	e.log.Info("scenario started", "user_id", userID, "scenario", sc.ID)

	return sess.clone(time.Now()), nil
}

// ActionResult reports one executed action.
type ActionResult struct {
	Score                int      `json:"score"`
	Outcome              string   `json:"outcome"`
	Feedback             string   `json:"feedback"`
	NextActions          []string `json:"next_actions"`
	NextStep             int      `json:"next_step"`
	TotalSteps           int      `json:"total_steps"`
	TimeRemainingSeconds int      `json:"time_remaining_seconds"`
	Completed            bool     `json:"completed"`
}

// ProcessAction validates and executes one action. Validation happens
// strictly before any mutation, so a rejected action leaves the session
// untouched.
func (e *Engine) ProcessAction(ctx context.Context, sessionID string, action Action) (*ActionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if action.Type == "" {
		return nil, simerr.Validation("action type is required")
	}
	if action.Data == nil {
		return nil, simerr.Validation("action data is required")
	}
	sess, ok := e.sessions[sessionID]
	if !ok {
		return nil, simerr.NotFound("action session", sessionID)
	}
	if sess.Status != StatusActive {
		return nil, simerr.StateTransition(string(sess.Status), "act on")
	}
	tmpl, ok := outcomeTemplates[action.Type]
	if !ok {
		return nil, simerr.Validation("unknown action type: " + action.Type)
	}

	score := tmpl.base + e.rng.Intn(3) - 1
	if score < 0 {
		score = 0
	}

	now := time.Now()
	sess.Actions = append(sess.Actions, ActionRecord{
		Type:      action.Type,
		Data:      action.Data,
		Outcome:   tmpl.outcome,
		Score:     score,
		Timestamp: now,
	})
	sess.CurrentStep++
	sess.Score += score
	// The +1 jitter on a best-base action could push the total past
	// the rubric ceiling; the session score stays within [0, MaxScore].
	if sess.Score > sess.MaxScore {
		sess.Score = sess.MaxScore
	}

	completed := sess.CurrentStep >= sess.TotalSteps
	if completed {
		sess.Status = StatusCompleted
		sess.EndTime = &now
		e.log.Info("scenario completed", "user_id", sess.UserID, "session_id", sessionID, "score", sess.Score)
	}

	e.events.Publish(ctx, analytics.Event{
		Name:      "action_processed",
		UserID:    sess.UserID,
		SessionID: sessionID,
		Fields:    map[string]interface{}{"type": action.Type, "score": score, "step": sess.CurrentStep},
	})

	return &ActionResult{
		Score:                score,
		Outcome:              tmpl.outcome,
		Feedback:             tmpl.feedback,
		NextActions:          append([]string(nil), tmpl.next...),
		NextStep:             sess.CurrentStep,
		TotalSteps:           sess.TotalSteps,
		TimeRemainingSeconds: int(sess.TimeRemaining(now).Seconds()),
		Completed:            completed,
	}, nil
}

// CompleteSimulation finalizes a scenario session: report, memory
// merge, analytics, removal. A session can only be finalized once; a
// second call gets a not-found error.
func (e *Engine) CompleteSimulation(ctx context.Context, sessionID string) (*report.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[sessionID]
	if !ok {
		return nil, simerr.NotFound("action session", sessionID)
	}

	now := time.Now()
	end := now
	if sess.EndTime != nil {
		end = *sess.EndTime
	} else {
		sess.Status = StatusCompleted
		sess.EndTime = &now
	}

	decisions := 0
	for _, a := range sess.Actions {
		if a.Type == "make_decision" {
			decisions++
		}
	}

	rep := report.FromActions(report.ActionOutcome{
		SessionID:  sessionID,
		UserID:     sess.UserID,
		Condition:  sess.Scenario.Condition,
		Title:      sess.Scenario.Title,
		Start:      sess.StartTime,
		End:        end,
		Score:      sess.Score,
		MaxScore:   sess.MaxScore,
		Actions:    len(sess.Actions),
		Decisions:  decisions,
		Objectives: sess.Scenario.Objectives,
		Steps:      sess.CurrentStep,
		TotalSteps: sess.TotalSteps,
	})

	if err := e.memories.RecordCompletion(ctx, sess.UserID, rep, nil); err != nil {
		e.log.Error("failed to record completion", "user_id", sess.UserID, "error", err)
	}
	e.events.Publish(ctx, analytics.Event{
		Name:      "scenario_finalized",
		UserID:    sess.UserID,
		SessionID: sessionID,
		Fields:    map[string]interface{}{"grade": rep.Grade, "percentage": rep.Percentage},
	})

	delete(e.sessions, sessionID)
	if e.byUser[sess.UserID] == sessionID {
		delete(e.byUser, sess.UserID)
	}

	return rep, nil
}

// Discard drops the user's scenario session without finalizing it.
// Satisfies the conversational engine's Rival.
func (e *Engine) Discard(userID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id, ok := e.byUser[userID]; ok {
		e.log.Info("discarding scenario session for mode switch", "user_id", userID)
		delete(e.sessions, id)
		delete(e.byUser, userID)
	}
}

// Get returns a copy of an action session by id, or nil.
func (e *Engine) Get(sessionID string) *ActionSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions[sessionID]
	if !ok {
		return nil
	}
	return sess.clone(time.Now())
}

func (s *ActionSession) clone(now time.Time) *ActionSession {
	cp := *s
	cp.Actions = append([]ActionRecord(nil), s.Actions...)
	cp.TimeRemainingSeconds = int(s.TimeRemaining(now).Seconds())
	return &cp
}
