package http

import (
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/usecase"
)

// suggestHandler serves the name suggestion list. use_directory=false turns
// suggestions off and yields an empty list.
func suggestHandler(uc *usecase.DirectoryUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		enabled := true
		if v := q.Get("use_directory"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				handleError(ctx, w, goerr.Wrap(errBadRequest, "use_directory must be a boolean", goerr.V("use_directory", v)))
				return
			}
			enabled = b
		}

		var records []*model.EmployeeRecord
		if enabled {
			found, err := uc.Suggest(ctx, q.Get("q"))
			if err != nil {
				handleError(ctx, w, err)
				return
			}
			records = found
		}

		resp := make([]employeeResponse, len(records))
		for i, rec := range records {
			resp[i] = toEmployeeResponse(rec)
		}
		writeJSON(ctx, w, http.StatusOK, map[string]any{"employees": resp})
	}
}

func lookupHandler(uc *usecase.DirectoryUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rec, found, err := uc.Lookup(ctx, r.URL.Query().Get("name"))
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		resp := lookupResponse{Found: found}
		if found {
			emp := toEmployeeResponse(rec)
			resp.Employee = &emp
		}
		writeJSON(ctx, w, http.StatusOK, resp)
	}
}

func formOptionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, formOptionsResponse{
		OffboardingTypes: types.OffboardingTypes(),
		Reasons:          types.Reasons(),
		NotifyTeams:      teamNames(types.NotifyTeams()),
		Defaults: formDefaults{
			OffboardingType: types.OffboardingTypeResignation,
			Reason:          types.ReasonPersonal,
			NotifyTeams:     teamNames(types.DefaultNotifyTeams()),
			UseDirectory:    true,
		},
	})
}
