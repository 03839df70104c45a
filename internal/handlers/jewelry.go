package handlers

import (
	"JewelryStore/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type JewelryHandler struct {
	base
	JewelryService *service.JewelryService
	views          *viewComposer
}

func NewJewelryHandler(jewelryService *service.JewelryService, views *viewComposer, b base) *JewelryHandler {
	return &JewelryHandler{base: b, JewelryService: jewelryService, views: views}
}

// List поддерживает фильтры ?branchId=&category=&material=.
func (h *JewelryHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	items, err := h.JewelryService.List(r.Context(), actor, service.JewelryListFilter{
		BranchID: q.Get("branchId"),
		Category: q.Get("category"),
		Material: q.Get("material"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	l := h.views.newLookup(r.Context(), actor)
	out := make([]jewelryView, 0, len(items))
	for _, j := range items {
		out = append(out, l.jewelryView(j))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *JewelryHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	j, err := h.JewelryService.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).jewelryView(*j))
}

func (h *JewelryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in service.JewelryInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	j, err := h.JewelryService.Create(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Infow("jewelry created", "jewelry_id", j.ID, "branch_id", j.BranchID, "by", actor.AccountID)
	writeJSON(w, http.StatusCreated, h.views.newLookup(r.Context(), actor).jewelryView(*j))
}

func (h *JewelryHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var p service.JewelryPatch
	if err := decodeJSON(r, &p); err != nil {
		h.writeError(w, r, err)
		return
	}
	j, err := h.JewelryService.Update(r.Context(), actor, chi.URLParam(r, "id"), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views.newLookup(r.Context(), actor).jewelryView(*j))
}

func (h *JewelryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.JewelryService.Delete(r.Context(), actor, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.Logger.Infow("jewelry deleted", "jewelry_id", id, "by", actor.AccountID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "jewelry deleted"})
}
