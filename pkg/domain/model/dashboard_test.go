package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

func TestVisibleRows(t *testing.T) {
	cases := []*model.EmployeeCase{
		{Name: "Jane Smith", Status: types.CaseStatusInProgress},
		{Name: "John Doe", Status: types.CaseStatusOverdue},
		{Name: "Alice Brown", Status: types.CaseStatusUpcoming},
		{Name: "Michael Green", Status: types.CaseStatusCompleted},
		{Name: "Sarah Connor", Status: types.CaseStatusInProgress},
		{Name: "Peter Parker", Status: types.CaseStatusUpcoming},
	}

	t.Run("all and empty are identity", func(t *testing.T) {
		for _, f := range []types.StatusFilter{types.FilterAll, ""} {
			rows := model.VisibleRows(cases, f)
			gt.A(t, rows).Length(len(cases))
			for i := range rows {
				gt.Value(t, rows[i]).Equal(cases[i])
			}
		}
	})

	t.Run("every filter yields an order preserving subset", func(t *testing.T) {
		for _, status := range types.AllCaseStatuses() {
			rows := model.VisibleRows(cases, types.FilterFor(status))

			pos := -1
			for _, row := range rows {
				gt.Value(t, row.Status).Equal(status)

				idx := indexOf(cases, row)
				gt.B(t, idx > pos).Describef("rows out of order for %s", status).True()
				pos = idx
			}
		}
	})

	t.Run("in-progress keeps source order", func(t *testing.T) {
		rows := model.VisibleRows(cases, types.FilterFor(types.CaseStatusInProgress))
		gt.A(t, rows).Length(2)
		gt.S(t, rows[0].Name).Equal("Jane Smith")
		gt.S(t, rows[1].Name).Equal("Sarah Connor")
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		rows := model.VisibleRows(cases[:1], types.FilterFor(types.CaseStatusCompleted))
		gt.A(t, rows).Length(0)
	})
}

func indexOf(cases []*model.EmployeeCase, target *model.EmployeeCase) int {
	for i, c := range cases {
		if c == target {
			return i
		}
	}
	return -1
}

func TestCopyCases(t *testing.T) {
	orig := []*model.EmployeeCase{
		{Name: "Jane Smith", Status: types.CaseStatusInProgress, Progress: 70, Tasks: []string{"file-alt", "laptop"}},
	}

	copied := model.CopyCases(orig)
	copied[0].Tasks[0] = "key"
	copied[0].Progress = 0

	gt.S(t, orig[0].Tasks[0]).Equal("file-alt")
	gt.Number(t, orig[0].Progress).Equal(70)
}
