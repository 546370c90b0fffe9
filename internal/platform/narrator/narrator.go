package narrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"medsim-engine/internal/report"
)

// Narrator rephrases a computed report as encouraging prose. The
// deterministic report is always the source of truth; a narrator
// failure just means the trainee sees the plain summary.
type Narrator interface {
	Narrate(ctx context.Context, rep *report.Report) (string, error)
}

type disabled struct{}

func (disabled) Narrate(context.Context, *report.Report) (string, error) {
	return "", errors.New("narrator disabled")
}

// NewDisabled returns a narrator that always declines.
func NewDisabled() Narrator {
	return disabled{}
}

type openAINarrator struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds a narrator over the OpenAI chat API.
func NewOpenAI(apiKey, model string) Narrator {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &openAINarrator{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (n *openAINarrator) Narrate(ctx context.Context, rep *report.Report) (string, error) {
	prompt := fmt.Sprintf(
		"A medical trainee completed a %s simulation for %s, scoring %d%% (grade %s). Strengths: %s. Areas for improvement: %s.",
		rep.Mode, rep.Condition, rep.Percentage, rep.Grade,
		joinOr(rep.Strengths, "none noted"),
		joinOr(rep.AreasForImprovement, "none noted"),
	)

	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: n.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a supportive clinical tutor. In two or three sentences, give the trainee warm, specific feedback based only on the facts provided."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty narrator response")
	}
	return resp.Choices[0].Message.Content, nil
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, "; ")
}
