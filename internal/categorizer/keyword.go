package categorizer

import (
	"context"
	"strings"

	"cofrim/internal/models"
	"cofrim/internal/textutils"

	"github.com/sirupsen/logrus"
)

// KeywordStrategy classifies messages by substring matching against the
// account group catalog. Within a group, subgroup names are tried before
// the generic keywords; across groups, catalog order decides and the
// first match wins.
type KeywordStrategy struct {
	groups []models.AccountGroup
	log    *logrus.Logger
}

// NewKeywordStrategy creates a KeywordStrategy over the given catalog.
func NewKeywordStrategy(groups []models.AccountGroup, logger *logrus.Logger) *KeywordStrategy {
	if logger == nil {
		logger = logrus.New()
	}
	return &KeywordStrategy{groups: groups, log: logger}
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Classify matches the normalized text against the group catalog. A
// matching subgroup name yields (group, subgroup); a matching generic
// keyword yields the keyword itself as the subgroup.
func (s *KeywordStrategy) Classify(_ context.Context, normalized string) (models.Classification, bool, error) {
	for _, g := range s.groups {
		for _, sg := range g.Subgroups {
			if strings.Contains(normalized, textutils.Normalize(sg)) {
				s.log.WithFields(logrus.Fields{
					"strategy": s.Name(),
					"group":    g.Name,
					"subgroup": sg,
				}).Debug("Message classified by subgroup name")
				return models.Classification{Group: g.Name, Subgroup: sg}, true, nil
			}
		}

		for _, kw := range g.Keywords {
			if strings.Contains(normalized, textutils.Normalize(kw)) {
				s.log.WithFields(logrus.Fields{
					"strategy": s.Name(),
					"group":    g.Name,
					"keyword":  kw,
				}).Debug("Message classified by group keyword")
				return models.Classification{Group: g.Name, Subgroup: kw}, true, nil
			}
		}
	}

	return models.Classification{}, false, nil
}
