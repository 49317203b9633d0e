package memory

import (
	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// Repository is an alias for Memory to match the pattern
type Repository = Memory

type Memory struct {
	directory *directoryRepository
	cases     *caseRepository
	drafts    *draftRepository
	insight   *insightRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a repository seeded with seed. The seed is deep-copied so
// later changes by the caller are not observed.
func New(seed *model.Seed) *Memory {
	if seed == nil {
		seed = &model.Seed{}
	}

	return &Memory{
		directory: newDirectoryRepository(seed.Directory),
		cases:     newCaseRepository(seed.Cases),
		drafts:    newDraftRepository(),
		insight:   newInsightRepository(seed.Alerts, seed.KPIs),
	}
}

func (m *Memory) Directory() interfaces.DirectoryRepository {
	return m.directory
}

func (m *Memory) Case() interfaces.CaseRepository {
	return m.cases
}

func (m *Memory) Draft() interfaces.DraftRepository {
	return m.drafts
}

func (m *Memory) Insight() interfaces.InsightRepository {
	return m.insight
}

// Close is a no-op kept so callers can treat every backend alike
func (m *Memory) Close() error {
	return nil
}
