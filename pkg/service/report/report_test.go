package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/service/report"
)

func TestRenderer_Render(t *testing.T) {
	clock := func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }
	r := report.New(report.WithClock(clock), report.WithTitle("Quarterly Offboarding"))

	t.Run("cases", func(t *testing.T) {
		cases := []*model.EmployeeCase{
			{Name: "Jane Smith", Role: "Software Engineer", ExitDate: "2024-07-15", Status: types.CaseStatusInProgress, Progress: 70, Tasks: []string{"file-alt", "laptop", "key"}},
			{Name: "A Person With An Exceptionally Long Name", Role: "Principal Staff Engineer, Platform Reliability", ExitDate: "2024-06-30", Status: types.CaseStatusOverdue, Progress: 40},
		}

		var buf bytes.Buffer
		gt.NoError(t, r.Render(&buf, cases)).Required()
		gt.B(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-"))).True()
		gt.N(t, buf.Len()).Greater(500)
	})

	t.Run("empty list", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, r.Render(&buf, nil)).Required()
		gt.B(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-"))).True()
	})
}
