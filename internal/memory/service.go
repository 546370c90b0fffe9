package memory

import (
	"context"
	"fmt"
	"time"

	"medsim-engine/internal/platform/logger"
	"medsim-engine/internal/report"
)

// Service merges finished sessions into the durable trainee record and
// answers personalization queries.
type Service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log.With("service", "memory")}
}

// RecordCompletion merges one finished session. It is idempotent per
// session id: replaying the same completion is a no-op. Everything else
// is append-only.
func (s *Service) RecordCompletion(ctx context.Context, userID string, rep *report.Report, questionTypes map[string]int) error {
	m, err := s.repo.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load user memory: %w", err)
	}
	if m.HasSession(rep.SessionID) {
		s.log.Debug("session already recorded", "user_id", userID, "session_id", rep.SessionID)
		return nil
	}

	m.TotalSimulations++
	m.CompletedCases = append(m.CompletedCases, CompletedCase{
		SessionID:       rep.SessionID,
		Condition:       rep.Condition,
		Mode:            rep.Mode,
		Date:            time.Now(),
		Feedback:        rep.Summary,
		DurationMinutes: rep.DurationMinutes,
		Percentage:      rep.Percentage,
		Grade:           rep.Grade,
	})
	for intentName, n := range questionTypes {
		m.QuestionTypes[intentName] += n
	}

	prog, ok := m.Conditions[rep.Condition]
	if !ok {
		prog = &ConditionProgress{}
		m.Conditions[rep.Condition] = prog
	}
	prog.Attempts++
	prog.Strengths = appendNew(prog.Strengths, rep.Strengths)
	prog.Gaps = appendNew(prog.Gaps, rep.AreasForImprovement)

	m.Strengths = appendNew(m.Strengths, rep.Strengths)
	m.AreasForGrowth = appendNew(m.AreasForGrowth, rep.AreasForImprovement)

	if err := s.repo.Save(ctx, m); err != nil {
		return fmt.Errorf("save user memory: %w", err)
	}
	s.log.Info("recorded completion", "user_id", userID, "session_id", rep.SessionID, "grade", rep.Grade)
	return nil
}

// Get returns the trainee's memory for status and feedback surfaces.
func (s *Service) Get(ctx context.Context, userID string) (*UserMemory, error) {
	return s.repo.Get(ctx, userID)
}

// HintsFor personalizes mid-session hints: recurring gaps from past
// sessions come first, then question types the trainee rarely uses.
func (s *Service) HintsFor(ctx context.Context, userID string, asked map[string]int) []string {
	m, err := s.repo.Get(ctx, userID)
	if err != nil {
		s.log.Warn("hints lookup failed", "user_id", userID, "error", err)
		return nil
	}

	var hints []string
	for _, gap := range m.AreasForGrowth {
		if len(hints) >= 2 {
			break
		}
		hints = append(hints, "Last time you needed to "+gap+".")
	}
	for intentName, label := range map[string]string{
		"family_history":     "Consider asking about the family history.",
		"medication_history": "Consider asking about medications and allergies.",
		"social_history":     "Consider asking what the patient does for a living.",
	} {
		if asked[intentName] == 0 && m.QuestionTypes[intentName] == 0 {
			hints = append(hints, label)
		}
	}
	if len(hints) > 3 {
		hints = hints[:3]
	}
	return hints
}

func appendNew(dst []string, add []string) []string {
	seen := map[string]bool{}
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range add {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	return dst
}
