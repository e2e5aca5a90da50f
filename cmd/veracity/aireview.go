// cmd/veracity/aireview.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const reviewModel = openai.GPT4

const reviewSystemPrompt = `You are a fact-checking assistant. Assess the article below and respond with JSON only, using this shape:
{"rating": "True|False|Misleading|Unverifiable", "explanation": "<one or two sentences>", "trustScore": <0-100>}`

// Reviewer asks OpenAI for a second opinion on an analyzed item. The review
// is attached to the result as supplementary context and never feeds back
// into the heuristic scores. A nil Reviewer means the feature is disabled.
type Reviewer struct {
	client *openai.Client
}

// NewReviewer builds the OpenAI reviewer.
func NewReviewer(config *Config) (*Reviewer, error) {
	if config.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("AI review enabled but OPENAI_API_KEY is empty")
	}
	return &Reviewer{client: openai.NewClient(config.OpenAIAPIKey)}, nil
}

// Review submits the item and parses the structured verdict.
func (r *Reviewer) Review(ctx context.Context, title, content string) (*AIReview, error) {
	if len(content) > 6000 {
		content = content[:6000]
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: reviewModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: reviewSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Title: %s\n\n%s", title, content)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("review request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("review returned no choices")
	}

	review, err := parseReview(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	review.Model = reviewModel
	return review, nil
}

// parseReview decodes the model response, tolerating surrounding prose by
// cutting out the first JSON object.
func parseReview(raw string) (*AIReview, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("review response contained no JSON object")
	}

	var review AIReview
	if err := json.Unmarshal([]byte(raw[start:end+1]), &review); err != nil {
		return nil, fmt.Errorf("failed to parse review response: %v", err)
	}
	if review.Rating == "" {
		return nil, fmt.Errorf("review response missing rating")
	}
	review.TrustScore = clamp(review.TrustScore, 0, 100)
	return &review, nil
}
