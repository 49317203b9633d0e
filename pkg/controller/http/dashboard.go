package http

import (
	"bytes"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/service/report"
	"github.com/secmon-lab/offboarding/pkg/usecase"
	"github.com/secmon-lab/offboarding/pkg/utils/errutil"
	"github.com/secmon-lab/offboarding/pkg/utils/safe"
)

// dashboardHandler serves the case table. ?status= previews another
// filter without changing the current one.
func dashboardHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		filter := uc.Filter()
		if q := r.URL.Query(); q.Has("status") {
			f, err := types.ParseStatusFilter(q.Get("status"))
			if err != nil {
				handleError(ctx, w, goerr.Wrap(usecase.ErrInvalidFilter, "invalid status query", goerr.V("status", q.Get("status"))))
				return
			}
			filter = f
		}

		view, err := uc.ViewWith(ctx, filter)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDashboardResponse(view))
	}
}

func setFilterHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	type request struct {
		Status string `json:"status"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			handleError(ctx, w, err)
			return
		}
		if _, err := uc.SetFilter(ctx, req.Status); err != nil {
			handleError(ctx, w, err)
			return
		}

		view, err := uc.View(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDashboardResponse(view))
	}
}

func refreshHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		view, err := uc.Refresh(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDashboardResponse(view))
	}
}

func reminderHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	type request struct {
		Name string `json:"name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			handleError(ctx, w, err)
			return
		}

		n, err := uc.SendReminder(ctx, req.Name)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toNotificationResponse(n))
	}
}

func sidebarHandler(uc *usecase.DashboardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sidebar, err := uc.Sidebar(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toSidebarResponse(sidebar))
	}
}

// reportHandler renders every case, ignoring the current filter
func reportHandler(uc *usecase.DashboardUseCase, renderer *report.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cases, err := uc.Cases(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, cases); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", report.ContentType)
		w.Header().Set("Content-Disposition", `inline; filename="offboarding-cases.pdf"`)
		w.WriteHeader(http.StatusOK)
		safe.Write(ctx, w, buf.Bytes())
	}
}
