package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/game"
	"github.com/osse101/WheelOfFortune_Go/internal/logger"
)

// GameHandler exposes one game session over HTTP
type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// SpinToRequest asks for a spin that stops on a specific slice
type SpinToRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// CompleteSpinRequest reports that the wheel animation for a spin has stopped
type CompleteSpinRequest struct {
	SpinID string `json:"spin_id" validate:"required,uuid"`
}

// ClosePopupRequest dismisses the result popup
type ClosePopupRequest struct {
	AutoContinue bool `json:"auto_continue"`
}

// SpinResponse is returned when a spin starts
type SpinResponse struct {
	Spin  domain.Spin      `json:"spin"`
	State domain.GameState `json:"state"`
}

// SummaryResponse groups the collected rewards of the current run
type SummaryResponse struct {
	Ledger  domain.LedgerState     `json:"ledger"`
	Summary []domain.RewardSummary `json:"summary"`
}

// HandleGetState returns the session snapshot
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Snapshot())
}

// HandleSpin starts a spin on a random slice
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	spin, err := h.service.RequestSpin(r.Context())
	if err != nil {
		respondServiceError(w, r, "spin", err)
		return
	}
	respondJSON(w, http.StatusAccepted, SpinResponse{Spin: spin, State: h.service.State()})
}

// HandleSpinTo starts a spin that stops on the requested slice
func (h *GameHandler) HandleSpinTo(w http.ResponseWriter, r *http.Request) {
	var req SpinToRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin to"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "index", *req.Index)

	spin, err := h.service.SpinTo(r.Context(), *req.Index)
	if err != nil {
		respondServiceError(w, r, "spin to", err)
		return
	}
	respondJSON(w, http.StatusAccepted, SpinResponse{Spin: spin, State: h.service.State()})
}

// HandleCompleteSpin resolves a spin whose animation is driven by the client
func (h *GameHandler) HandleCompleteSpin(w http.ResponseWriter, r *http.Request) {
	var req CompleteSpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete spin"); err != nil {
		return
	}
	spinID, err := uuid.Parse(req.SpinID)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	outcome, err := h.service.CompleteSpin(r.Context(), spinID)
	if err != nil {
		respondServiceError(w, r, "complete spin", err)
		return
	}
	respondJSON(w, http.StatusOK, outcome)
}

// HandleClosePopup dismisses the result popup, optionally queueing the next spin
func (h *GameHandler) HandleClosePopup(w http.ResponseWriter, r *http.Request) {
	var req ClosePopupRequest
	if err := DecodeOptionalRequest(r, w, &req, "Close popup"); err != nil {
		return
	}

	if err := h.service.ClosePopup(r.Context(), req.AutoContinue); err != nil {
		respondServiceError(w, r, "close popup", err)
		return
	}

	msg := MsgPopupClosed
	if req.AutoContinue {
		msg = MsgAutoSpinPending
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
}

// HandleRevive keeps rewards and zone after a bomb
func (h *GameHandler) HandleRevive(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Revive(r.Context()); err != nil {
		respondServiceError(w, r, "revive", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgRevived, Data: h.service.Snapshot()})
}

// HandleTrash forfeits the run after a bomb
func (h *GameHandler) HandleTrash(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Trash(r.Context()); err != nil {
		respondServiceError(w, r, "trash", err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgTrashed, Data: h.service.Snapshot()})
}

// HandleCashOut ends the run keeping the collected rewards
func (h *GameHandler) HandleCashOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CashOut(r.Context())
	if err != nil {
		respondServiceError(w, r, "cash out", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleResetProgress wipes the run and the best zone reached
func (h *GameHandler) HandleResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetProgress(r.Context()); err != nil {
		respondServiceError(w, r, "reset progress", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProgressReset})
}

// HandleGetSummary returns the ledger totals and per-reward summary
func (h *GameHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	snap := h.service.Snapshot()
	respondJSON(w, http.StatusOK, SummaryResponse{
		Ledger:  snap.Ledger,
		Summary: h.service.Summary(),
	})
}
