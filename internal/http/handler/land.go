package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"landledger/internal/core"
	"landledger/internal/http/payload"

	"go.uber.org/zap"
)

var (
	AddLand               = "POST /lands"
	GetAllLands           = "GET /lands"
	GetLand               = "GET /lands/{landId}"
	GetLandIdentity       = "GET /lands/id"
	GetLandsForSale       = "GET /lands/for-sale"
	GetMyLands            = "GET /lands/my"
	RequestLandVerify     = "POST /lands/{landId}/verification-request"
	PendingLandVerify     = "GET /lands/verification-requests"
	VerifyLand            = "POST /lands/{landId}/verify"
	ListForSale           = "POST /lands/{landId}/sale"
	GetLandPreviousOwners = "GET /lands/{landId}/previous-owners"
)

type LandHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	verifier         TokenVerifier
	lands            LandService
	opTimeout        time.Duration
}

func NewLandHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, verifier TokenVerifier, lands LandService, opTimeout time.Duration) *LandHandler {
	return &LandHandler{
		logs:             logger,
		requestValidator: requestValidator,
		verifier:         verifier,
		lands:            lands,
		opTimeout:        opTimeout,
	}
}

func (h *LandHandler) HandleAddLand(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", AddLand, "request_id", requestId)
		return
	}

	var landPayload payload.AddLandRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &landPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not add land record",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", AddLand,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	result, err := h.lands.AddLandRecord(ctx, caller, landPayload.ToMessage())
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not add land record", err, code), code, requestId)
		h.logs.Errorw("failed to add land record",
			"error", err,
			"handler", AddLand,
			"request_id", requestId)
		return
	}

	h.logs.Infow("land registration processed",
		"outcome", string(result.Outcome),
		"land_id", result.LandID,
		"owner", caller,
		"handler", AddLand,
		"request_id", requestId)

	httpCode := http.StatusCreated
	if result.Outcome == core.LandRecordExists {
		httpCode = http.StatusOK
	}

	respond(h.logs, w, Response{
		Message: string(result.Outcome),
		Data:    result,
	}, httpCode, requestId)
}

func (h *LandHandler) HandleGetAllLands(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	lands, err := h.lands.AllLands(ctx)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list lands", err, code), code, requestId)
		h.logs.Errorw("failed to list lands",
			"error", err,
			"handler", GetAllLands,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.LandDetails{
		"lands": lands,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *LandHandler) HandleGetLand(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", GetLand, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	land, err := h.lands.GetLandRecord(ctx, landID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get land record", err, code), code, requestId)
		h.logs.Errorw("failed to get land record",
			"error", err,
			"handler", GetLand,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Land record found",
		Data:    land,
	}, http.StatusOK, requestId)
}

func (h *LandHandler) HandleGetLandID(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not resolve land id",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetLandIdentity, "request_id", requestId)
		return
	}

	query := payload.LandIdentifierQuery{
		State:        values.Get("state"),
		Division:     values.Get("division"),
		District:     values.Get("district"),
		Taluka:       values.Get("taluka"),
		Village:      values.Get("village"),
		SurveyNumber: values.Get("surveyNumber"),
		Subdivision:  values.Get("subdivision"),
	}
	if err := query.Validate(); err != nil {
		respond(h.logs, w, Response{
			Message: "Could not resolve land id",
			Error:   fmt.Errorf("validate query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate query parameters",
			"error", err,
			"handler", GetLandIdentity,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	landID, err := h.lands.GetLandID(ctx, query.ToIdentifier())
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not resolve land id", err, code), code, requestId)
		h.logs.Errorw("failed to resolve land id",
			"error", err,
			"handler", GetLandIdentity,
			"request_id", requestId)
		return
	}

	resp := map[string]uint64{
		"landId": landID,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *LandHandler) HandleGetLandsForSale(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	lands, err := h.lands.GetLandsForSale(ctx)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list lands for sale", err, code), code, requestId)
		h.logs.Errorw("failed to list lands for sale",
			"error", err,
			"handler", GetLandsForSale,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.LandDetails{
		"lands": lands,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *LandHandler) HandleGetMyLands(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", GetMyLands, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	lands, err := h.lands.GetMyLands(ctx, caller)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list owned lands", err, code), code, requestId)
		h.logs.Errorw("failed to list owned lands",
			"error", err,
			"handler", GetMyLands,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.LandDetails{
		"lands": lands,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *LandHandler) HandleRequestLandVerification(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", RequestLandVerify, "request_id", requestId)
		return
	}

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", RequestLandVerify, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	outcome, err := h.lands.LandVerificationRequest(ctx, caller, landID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not request land verification", err, code), code, requestId)
		h.logs.Errorw("land verification request failed",
			"error", err,
			"handler", RequestLandVerify,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Verification request processed",
		Data:    map[string]string{"outcome": string(outcome)},
	}, http.StatusOK, requestId)
}

func (h *LandHandler) HandlePendingLandVerifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", PendingLandVerify, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	pending, err := h.lands.PendingLandVerifications(ctx, caller)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list verification requests", err, code), code, requestId)
		h.logs.Errorw("failed to list pending land verifications",
			"error", err,
			"handler", PendingLandVerify,
			"request_id", requestId)
		return
	}

	resp := map[string][]uint64{
		"pending": pending,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *LandHandler) HandleVerifyLand(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", VerifyLand, "request_id", requestId)
		return
	}

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", VerifyLand, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.lands.VerifyLand(ctx, caller, landID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not verify land", err, code), code, requestId)
		h.logs.Errorw("land verification failed",
			"error", err,
			"handler", VerifyLand,
			"request_id", requestId)
		return
	}

	h.logs.Infow("land verified",
		"land_id", landID,
		"verified_by", caller,
		"handler", VerifyLand,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Land verified"}, http.StatusOK, requestId)
}

func (h *LandHandler) HandleListForSale(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", ListForSale, "request_id", requestId)
		return
	}

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", ListForSale, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.lands.ListLandForSale(ctx, caller, landID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list land for sale", err, code), code, requestId)
		h.logs.Errorw("failed to list land for sale",
			"error", err,
			"handler", ListForSale,
			"request_id", requestId)
		return
	}

	h.logs.Infow("land listed for sale",
		"land_id", landID,
		"owner", caller,
		"handler", ListForSale,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Land listed for sale"}, http.StatusOK, requestId)
}

func (h *LandHandler) HandleGetPreviousOwners(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", GetLandPreviousOwners, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	owners, err := h.lands.GetPreviousOwners(ctx, landID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get previous owners", err, code), code, requestId)
		h.logs.Errorw("failed to get previous owners",
			"error", err,
			"handler", GetLandPreviousOwners,
			"request_id", requestId)
		return
	}

	resp := map[string][]string{
		"previousOwners": owners,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}
