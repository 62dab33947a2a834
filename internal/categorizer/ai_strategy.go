package categorizer

import (
	"context"
	"fmt"
	"strings"

	"cofrim/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// AIStrategy asks the Gemini model to place a message into one of the
// configured account groups. It only ever answers with a group that
// exists in the catalog; anything else is treated as no match so the
// caller's fallback applies. Disabled by default, see config ai.enabled.
type AIStrategy struct {
	client *genai.Client
	model  *genai.GenerativeModel
	groups []models.AccountGroup
	log    *logrus.Logger
}

// NewAIStrategy creates an AIStrategy backed by the Gemini API.
func NewAIStrategy(ctx context.Context, apiKey, modelName string, groups []models.AccountGroup, logger *logrus.Logger) (*AIStrategy, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if logger == nil {
		logger = logrus.New()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &AIStrategy{
		client: client,
		model:  client.GenerativeModel(modelName),
		groups: groups,
		log:    logger,
	}, nil
}

// Name returns the name of this strategy.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Close releases the underlying API client.
func (s *AIStrategy) Close() error {
	return s.client.Close()
}

// Classify sends the message to Gemini and maps the answer back onto the
// catalog. Any API failure or unknown group is reported as no match, never
// as a user-visible error.
func (s *AIStrategy) Classify(ctx context.Context, normalized string) (models.Classification, bool, error) {
	if len(s.groups) == 0 {
		return models.Classification{}, false, nil
	}

	prompt := fmt.Sprintf(`Classifique a seguinte transação financeira em exatamente um dos grupos abaixo.

Transação: %s

Grupos: %s

Responda neste formato:
Grupo: [nome do grupo escolhido]`,
		normalized,
		strings.Join(s.groupNames(), ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.log.WithError(err).WithField("strategy", s.Name()).Warn("Gemini classification failed")
		return models.Classification{}, false, nil
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return models.Classification{}, false, nil
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	group := s.extractGroupFromResponse(responseText)
	if group == "" {
		s.log.WithFields(logrus.Fields{
			"strategy": s.Name(),
			"response": responseText,
		}).Debug("Gemini answered with no known group")
		return models.Classification{}, false, nil
	}

	s.log.WithFields(logrus.Fields{
		"strategy": s.Name(),
		"group":    group,
	}).Debug("Message classified by Gemini")

	// The model only names a group; there is no subgroup evidence.
	return models.Classification{Group: group, Subgroup: models.FallbackGroup}, true, nil
}

// extractGroupFromResponse parses the model answer and returns the named
// group, or "" when the answer names no catalog group.
func (s *AIStrategy) extractGroupFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Grupo:") {
			candidate := strings.TrimSpace(strings.TrimPrefix(line, "Grupo:"))
			for _, name := range s.groupNames() {
				if strings.EqualFold(candidate, name) {
					return name
				}
			}
		}
	}

	// Unstructured answer: accept a group name appearing anywhere in it.
	for _, name := range s.groupNames() {
		if strings.Contains(response, name) {
			return name
		}
	}

	return ""
}

func (s *AIStrategy) groupNames() []string {
	names := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		names = append(names, g.Name)
	}
	return names
}
