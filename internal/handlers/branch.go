package handlers

import (
	"JewelryStore/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type BranchHandler struct {
	base
	BranchService *service.BranchService
	views         *viewComposer
}

func NewBranchHandler(branchService *service.BranchService, views *viewComposer, b base) *BranchHandler {
	return &BranchHandler{base: b, BranchService: branchService, views: views}
}

func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	branches, err := h.BranchService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	l := h.views.newLookup(r.Context(), actor)
	out := make([]branchView, 0, len(branches))
	for _, b := range branches {
		out = append(out, l.branchView(b))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.BranchService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).branchView(*b))
}

func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.BranchInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.BranchService.Create(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Infow("branch created", "branch_id", b.ID, "by", actor.AccountID)
	writeJSON(w, http.StatusCreated, h.views.newLookup(r.Context(), actor).branchView(*b))
}

func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p service.BranchPatch
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	b, err := h.BranchService.Update(r.Context(), actor, chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).branchView(*b))
}

// Delete удаляет филиал каскадно: позиции удаляются, сотрудники отвязываются.
func (h *BranchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.BranchService.Delete(r.Context(), actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Infow("branch deleted", "branch_id", id, "by", actor.AccountID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "branch deleted"})
}
