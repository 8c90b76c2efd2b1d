package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"landledger/internal/core"
	"landledger/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	Authenticate         = "POST /auth/login"
	RegisterAccount      = "POST /registry/accounts"
	AddInspector         = "POST /registry/inspectors"
	AddAuthority         = "POST /registry/authorities"
	GrantInspector       = "POST /registry/inspectors/{address}/grant"
	RevokeInspector      = "POST /registry/inspectors/{address}/revoke"
	RemoveInspector      = "DELETE /registry/inspectors/{address}"
	GrantAuthority       = "POST /registry/authorities/{address}/grant"
	RevokeAuthority      = "POST /registry/authorities/{address}/revoke"
	RemoveAuthority      = "DELETE /registry/authorities/{address}"
	VerifyAccount        = "POST /registry/accounts/{nationalId}/verify"
	RequestVerification  = "POST /registry/verification-requests"
	PendingVerifications = "GET /registry/verification-requests"
	GetAccount           = "GET /registry/accounts/{address}"
)

type RegistryHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	verifier         TokenVerifier
	registry         RegistryService
	opTimeout        time.Duration
}

func NewRegistryHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, verifier TokenVerifier, registry RegistryService, opTimeout time.Duration) *RegistryHandler {
	return &RegistryHandler{
		logs:             logger,
		requestValidator: requestValidator,
		verifier:         verifier,
		registry:         registry,
		opTimeout:        opTimeout,
	}
}

func (h *RegistryHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	token, err := h.registry.Authenticate(ctx, authPayload.ToMessage())
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Login failed", err, code), code, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleRegisterAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var registerPayload payload.RegisterAccountRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &registerPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not register account",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RegisterAccount,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	account, err := h.registry.RegisterAccount(ctx, registerPayload.ToMessage())
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not register account", err, code), code, requestId)
		h.logs.Errorw("account registration failed",
			"error", err,
			"handler", RegisterAccount,
			"request_id", requestId)
		return
	}

	h.logs.Infow("account registered",
		"address", account.Address,
		"handler", RegisterAccount,
		"request_id", requestId)

	respond(h.logs, w, Response{
		Message: "Account registered",
		Data:    account,
	}, http.StatusCreated, requestId)
}

func (h *RegistryHandler) HandleAddInspector(w http.ResponseWriter, r *http.Request) {
	h.handleAddOfficial(w, r, AddInspector, "Could not add land inspector", h.registry.AddLandInspector)
}

func (h *RegistryHandler) HandleAddAuthority(w http.ResponseWriter, r *http.Request) {
	h.handleAddOfficial(w, r, AddAuthority, "Could not add second level authority", h.registry.AddSecondLevelAuthority)
}

func (h *RegistryHandler) HandleGrantInspector(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, GrantInspector, "land inspector status granted", h.registry.GrantLandInspectorStatus)
}

func (h *RegistryHandler) HandleRevokeInspector(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, RevokeInspector, "land inspector status revoked", h.registry.RevokeLandInspectorStatus)
}

func (h *RegistryHandler) HandleRemoveInspector(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, RemoveInspector, "land inspector removed", h.registry.RemoveLandInspector)
}

func (h *RegistryHandler) HandleGrantAuthority(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, GrantAuthority, "second level authority status granted", h.registry.GrantSecondLevelAuthorityStatus)
}

func (h *RegistryHandler) HandleRevokeAuthority(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, RevokeAuthority, "second level authority status revoked", h.registry.RevokeSecondLevelAuthorityStatus)
}

func (h *RegistryHandler) HandleRemoveAuthority(w http.ResponseWriter, r *http.Request) {
	h.handleOfficialStatus(w, r, RemoveAuthority, "second level authority removed", h.registry.RemoveSecondLevelAuthority)
}

func (h *RegistryHandler) HandleVerifyAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", VerifyAccount, "request_id", requestId)
		return
	}

	nationalID := r.PathValue("nationalId")
	if nationalID == "" {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   "nationalId path parameter is required",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("missing nationalId parameter", "handler", VerifyAccount, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.registry.VerifyAccount(ctx, caller, nationalID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not verify account", err, code), code, requestId)
		h.logs.Errorw("account verification failed",
			"error", err,
			"handler", VerifyAccount,
			"request_id", requestId)
		return
	}

	h.logs.Infow("account verified",
		"national_id", nationalID,
		"verified_by", caller,
		"handler", VerifyAccount,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Account verified"}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleRequestVerification(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", RequestVerification, "request_id", requestId)
		return
	}

	var verificationPayload payload.VerificationRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &verificationPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not request verification",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RequestVerification,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	outcome, err := h.registry.RequestAccountVerification(ctx, caller, verificationPayload.NationalID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not request verification", err, code), code, requestId)
		h.logs.Errorw("verification request failed",
			"error", err,
			"handler", RequestVerification,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Verification request processed",
		Data:    map[string]string{"outcome": string(outcome)},
	}, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandlePendingVerifications(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", PendingVerifications, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	pending, err := h.registry.PendingAccountVerifications(ctx, caller)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list verification requests", err, code), code, requestId)
		h.logs.Errorw("failed to list pending verifications",
			"error", err,
			"handler", PendingVerifications,
			"request_id", requestId)
		return
	}

	resp := map[string][]string{
		"pending": pending,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *RegistryHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	address := r.PathValue("address")
	if !common.IsHexAddress(address) {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   "address path parameter must be a valid hex address",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid address parameter", "handler", GetAccount, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	account, err := h.registry.GetUserDetailsByAddress(ctx, address)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get account", err, code), code, requestId)
		h.logs.Errorw("failed to get account",
			"error", err,
			"handler", GetAccount,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Account found",
		Data:    account,
	}, http.StatusOK, requestId)
}

type addOfficialFunc func(ctx context.Context, caller string, msg core.AddOfficialMessage) (core.AccountDetails, error)

func (h *RegistryHandler) handleAddOfficial(w http.ResponseWriter, r *http.Request, route, failMsg string, add addOfficialFunc) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", route, "request_id", requestId)
		return
	}

	var officialPayload payload.AddOfficialRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &officialPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: failMsg,
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	account, err := add(ctx, caller, officialPayload.ToMessage())
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse(failMsg, err, code), code, requestId)
		h.logs.Errorw("failed to add official",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow("official account created",
		"address", account.Address,
		"designation", account.Designation.String(),
		"created_by", caller,
		"handler", route,
		"request_id", requestId)

	respond(h.logs, w, Response{
		Message: "Official account created",
		Data:    account,
	}, http.StatusCreated, requestId)
}

type officialStatusFunc func(ctx context.Context, caller, target string) error

func (h *RegistryHandler) handleOfficialStatus(w http.ResponseWriter, r *http.Request, route, successMsg string, apply officialStatusFunc) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", route, "request_id", requestId)
		return
	}

	target := r.PathValue("address")
	if !common.IsHexAddress(target) {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   "address path parameter must be a valid hex address",
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid address parameter", "handler", route, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := apply(ctx, caller, target); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Request failed", err, code), code, requestId)
		h.logs.Errorw("failed to change official status",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	h.logs.Infow(successMsg,
		"target", target,
		"changed_by", caller,
		"handler", route,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: successMsg}, http.StatusOK, requestId)
}
