package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/zone"
)

// ItemLookup is the read side of the item catalog
type ItemLookup interface {
	Items() []domain.ItemDefinition
	Get(id string) (domain.ItemDefinition, bool)
}

// HandleListItems lists every catalog item
func HandleListItems(items ItemLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: items.Items()})
	}
}

// HandleGetItem returns one catalog item by id
func HandleGetItem(items ItemLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, ok := items.Get(chi.URLParam(r, "id"))
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFound)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleGetZone previews the wheel configuration of a zone without entering it
func HandleGetZone(resolver zone.Resolver, maxZone int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		z, err := strconv.Atoi(chi.URLParam(r, "zone"))
		if err != nil || z < 1 || z > maxZone {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidZone, maxZone))
			return
		}
		respondJSON(w, http.StatusOK, resolver.Resolve(r.Context(), z))
	}
}
