package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
	"github.com/secmon-lab/offboarding/pkg/usecase"
)

func draftIDParam(r *http.Request) model.DraftID {
	return model.DraftID(chi.URLParam(r, "draftID"))
}

func teamParam(r *http.Request) (types.Team, error) {
	raw := chi.URLParam(r, "team")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" {
		return "", goerr.Wrap(errBadRequest, "invalid team", goerr.V("team", raw))
	}
	return types.Team(name), nil
}

func createDraftHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		draft, err := uc.Create(ctx)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		w.Header().Set("Location", "/api/drafts/"+draft.ID.String())
		writeJSON(ctx, w, http.StatusCreated, toDraftResponse(draft))
	}
}

func getDraftHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		draft, err := uc.Get(ctx, draftIDParam(r))
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDraftResponse(draft))
	}
}

func discardDraftHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := uc.Discard(ctx, draftIDParam(r)); err != nil {
			handleError(ctx, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// patchDraftHandler applies the directory toggle and the fields as one
// edit, so auto-fill follows the toggle sent in the same request
func patchDraftHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	type request struct {
		UseDirectory *bool             `json:"useDirectory"`
		Fields       map[string]string `json:"fields"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			handleError(ctx, w, err)
			return
		}

		fields := make(map[model.DraftField]string, len(req.Fields))
		for k, v := range req.Fields {
			fields[model.DraftField(k)] = v
		}

		draft, err := uc.Patch(ctx, draftIDParam(r), req.UseDirectory, fields)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDraftResponse(draft))
	}
}

func addTeamHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return teamHandler(uc.AddTeam)
}

func removeTeamHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return teamHandler(uc.RemoveTeam)
}

func teamHandler(op func(context.Context, model.DraftID, types.Team) (*model.OffboardingDraft, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		team, err := teamParam(r)
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		draft, err := op(ctx, draftIDParam(r), team)
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDraftResponse(draft))
	}
}

func transitionHandler(op func(context.Context, model.DraftID) (*model.OffboardingDraft, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		draft, err := op(ctx, draftIDParam(r))
		if err != nil {
			handleError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, toDraftResponse(draft))
	}
}

// confirmHandler answers 200 for a missing endpoint since that is a
// user-visible condition, and 502 when the endpoint rejected the request
func confirmHandler(uc *usecase.DraftUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result, err := uc.Confirm(ctx, draftIDParam(r))
		if err != nil {
			handleError(ctx, w, err)
			return
		}

		status := http.StatusOK
		if result.Failure != nil && !result.Stale && !errors.Is(result.Failure, transport.ErrNotConfigured) {
			status = http.StatusBadGateway
		}
		writeJSON(ctx, w, status, toConfirmResponse(result))
	}
}
