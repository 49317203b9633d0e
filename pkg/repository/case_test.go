package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/repository/memory"
)

func testSeed() *model.Seed {
	return &model.Seed{
		Directory: []*model.EmployeeRecord{
			{ID: "E1001", Name: "Jane Smith", Role: "Software Engineer", Department: "Engineering", Manager: "Laura Chen"},
			{ID: "E1002", Name: "John Doe", Role: "Product Manager", Department: "Product", Manager: "Akash Patel"},
		},
		Cases: []*model.EmployeeCase{
			{Name: "Jane Smith", Role: "Software Engineer", ExitDate: "2024-07-15", Status: types.CaseStatusInProgress, Progress: 70, Tasks: []string{"file-alt", "laptop", "key"}},
			{Name: "John Doe", Role: "Product Manager", ExitDate: "2024-06-30", Status: types.CaseStatusOverdue, Progress: 40, Tasks: []string{"file-alt", "check"}},
			{Name: "Alice Brown", Role: "HR Specialist", ExitDate: "2024-08-01", Status: types.CaseStatusUpcoming, Progress: 10, Tasks: []string{"file-alt", "key"}},
		},
		Alerts: []string{"Overdue Asset: Laptop Return for John Doe."},
		KPIs:   []model.KPI{{Number: 15, Label: "DAYS", Subtitle: "AVG COMPLETION TIME"}},
	}
}

func runCaseRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("List returns seed in order", func(t *testing.T) {
		repo := newRepo(t)
		cases, err := repo.Case().List(context.Background())
		gt.NoError(t, err).Required()

		gt.Array(t, cases).Length(3)
		gt.S(t, cases[0].Name).Equal("Jane Smith")
		gt.S(t, cases[1].Name).Equal("John Doe")
		gt.S(t, cases[2].Name).Equal("Alice Brown")
		gt.Value(t, cases[1].Status).Equal(types.CaseStatusOverdue)
	})

	t.Run("List returns copies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		cases, err := repo.Case().List(ctx)
		gt.NoError(t, err).Required()
		cases[0].Status = types.CaseStatusCompleted
		cases[0].Tasks[0] = "changed"

		again, err := repo.Case().List(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, again[0].Status).Equal(types.CaseStatusInProgress)
		gt.S(t, again[0].Tasks[0]).Equal("file-alt")
	})

	t.Run("GetByName returns nil on miss", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		c, err := repo.Case().GetByName(ctx, "John Doe")
		gt.NoError(t, err).Required()
		gt.Number(t, c.Progress).Equal(40)

		c, err = repo.Case().GetByName(ctx, "Nobody")
		gt.NoError(t, err)
		gt.Value(t, c).Nil()
	})

	t.Run("Reset restores the seed", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Case().Reset(ctx)).Required()
		cases, err := repo.Case().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, cases).Length(3)
	})
}

func runDirectoryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("FindByName ignores case", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		lower, err := repo.Directory().FindByName(ctx, "jane smith")
		gt.NoError(t, err).Required()
		upper, err := repo.Directory().FindByName(ctx, "Jane Smith")
		gt.NoError(t, err).Required()

		gt.Value(t, lower).NotNil()
		gt.Value(t, lower).Equal(upper)
		gt.S(t, lower.ID).Equal("E1001")
	})

	t.Run("FindByName is exact", func(t *testing.T) {
		repo := newRepo(t)
		rec, err := repo.Directory().FindByName(context.Background(), "Jane")
		gt.NoError(t, err)
		gt.Value(t, rec).Nil()
	})

	t.Run("List keeps directory order", func(t *testing.T) {
		repo := newRepo(t)
		records, err := repo.Directory().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)
		gt.S(t, records[1].Name).Equal("John Doe")
	})
}

func runDraftRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Put then Get returns a copy", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		d := model.NewOffboardingDraft()
		gt.NoError(t, d.SetField(model.FieldEmployeeName, "Jane Smith"))
		gt.NoError(t, repo.Draft().Put(ctx, d)).Required()

		d.AddTeam(types.TeamFacilities)

		got, err := repo.Draft().Get(ctx, d.ID)
		gt.NoError(t, err).Required()
		gt.S(t, got.EmployeeName).Equal("Jane Smith")
		gt.A(t, got.Teams).Length(4)
		gt.B(t, got.UpdatedAt.IsZero()).False()
	})

	t.Run("Get unknown draft", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Draft().Get(context.Background(), model.NewDraftID())
		gt.B(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("Delete removes draft", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		d := model.NewOffboardingDraft()
		gt.NoError(t, repo.Draft().Put(ctx, d)).Required()
		gt.NoError(t, repo.Draft().Delete(ctx, d.ID)).Required()

		_, err := repo.Draft().Get(ctx, d.ID)
		gt.Error(t, err).Is(memory.ErrNotFound)
		gt.Error(t, repo.Draft().Delete(ctx, d.ID)).Is(memory.ErrNotFound)
	})

	t.Run("Put rejects empty ID", func(t *testing.T) {
		repo := newRepo(t)
		gt.Error(t, repo.Draft().Put(context.Background(), &model.OffboardingDraft{}))
	})
}

func runInsightRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Alerts and KPIs come from seed", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		alerts, err := repo.Insight().Alerts(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, alerts).Length(1)

		kpis, err := repo.Insight().KPIs(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, kpis).Length(1)
		gt.Number(t, kpis[0].Number).Equal(15)
	})
}

func newMemoryRepository(t *testing.T) interfaces.Repository {
	return memory.New(testSeed())
}

func TestMemoryCaseRepository(t *testing.T) {
	runCaseRepositoryTest(t, newMemoryRepository)
}

func TestMemoryDirectoryRepository(t *testing.T) {
	runDirectoryRepositoryTest(t, newMemoryRepository)
}

func TestMemoryDraftRepository(t *testing.T) {
	runDraftRepositoryTest(t, newMemoryRepository)
}

func TestMemoryInsightRepository(t *testing.T) {
	runInsightRepositoryTest(t, newMemoryRepository)
}

func TestMemoryRepository_SeedIsolation(t *testing.T) {
	seed := testSeed()
	repo := memory.New(seed)

	seed.Cases[0].Status = types.CaseStatusCompleted
	seed.Directory[0].Name = "Changed"

	cases, err := repo.Case().List(context.Background())
	gt.NoError(t, err).Required()
	gt.Value(t, cases[0].Status).Equal(types.CaseStatusInProgress)

	rec, err := repo.Directory().FindByName(context.Background(), "Jane Smith")
	gt.NoError(t, err).Required()
	gt.Value(t, rec).NotNil()
}

func TestMemoryRepository_NilSeed(t *testing.T) {
	repo := memory.New(nil)
	cases, err := repo.Case().List(context.Background())
	gt.NoError(t, err)
	gt.Array(t, cases).Length(0)
}
