package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"landledger/internal/core"
	"landledger/internal/http/payload"

	"go.uber.org/zap"
)

var (
	CreateBuyRequest  = "POST /requests"
	CancelBuyRequest  = "DELETE /requests/land/{landId}"
	AcceptBuyRequest  = "POST /requests/{requestId}/accept"
	RejectBuyRequest  = "POST /requests/{requestId}/reject"
	MarkPaymentDone   = "POST /requests/{requestId}/payment"
	TransferOwnership = "POST /requests/{requestId}/transfer"
	GetBuyRequest     = "GET /requests/{requestId}"
	GetRequestBuyer   = "GET /requests/{requestId}/buyer"
	GetRequestLand    = "GET /requests/{requestId}/land"
	GetLandRequests   = "GET /lands/{landId}/requests"
	SentRequests      = "GET /requests/sent"
	ReceivedRequests  = "GET /requests/received"
	PendingTransfers  = "GET /requests/pending-transfers"
)

type TradeHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	verifier         TokenVerifier
	trades           TradeService
	opTimeout        time.Duration
}

func NewTradeHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, verifier TokenVerifier, trades TradeService, opTimeout time.Duration) *TradeHandler {
	return &TradeHandler{
		logs:             logger,
		requestValidator: requestValidator,
		verifier:         verifier,
		trades:           trades,
		opTimeout:        opTimeout,
	}
}

func (h *TradeHandler) HandleCreateBuyRequest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", CreateBuyRequest, "request_id", requestId)
		return
	}

	var buyPayload payload.BuyLandRequest
	err = h.requestValidator.DecodeAndValidateJSONPayload(r, &buyPayload)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Could not create buy request",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateBuyRequest,
			"request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	request, err := h.trades.RequestForBuy(ctx, caller, buyPayload.LandID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not create buy request", err, code), code, requestId)
		h.logs.Errorw("failed to create buy request",
			"error", err,
			"handler", CreateBuyRequest,
			"request_id", requestId)
		return
	}

	h.logs.Infow("buy request created",
		"request_id_num", request.RequestID,
		"land_id", request.LandID,
		"buyer", caller,
		"handler", CreateBuyRequest,
		"request_id", requestId)

	respond(h.logs, w, Response{
		Message: "Buy request created",
		Data:    request,
	}, http.StatusCreated, requestId)
}

func (h *TradeHandler) HandleCancelBuyRequest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", CancelBuyRequest, "request_id", requestId)
		return
	}

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", CancelBuyRequest, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.trades.CancelBuyerRequest(ctx, caller, landID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not cancel buy request", err, code), code, requestId)
		h.logs.Errorw("failed to cancel buy request",
			"error", err,
			"handler", CancelBuyRequest,
			"request_id", requestId)
		return
	}

	h.logs.Infow("buy request cancelled",
		"land_id", landID,
		"buyer", caller,
		"handler", CancelBuyRequest,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Buy request cancelled"}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleAcceptRequest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", AcceptBuyRequest, "request_id", requestId)
		return
	}

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", AcceptBuyRequest, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	result, err := h.trades.AcceptRequest(ctx, caller, reqID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not accept buy request", err, code), code, requestId)
		h.logs.Errorw("failed to accept buy request",
			"error", err,
			"handler", AcceptBuyRequest,
			"request_id", requestId)
		return
	}

	h.logs.Infow("buy request accepted",
		"request_id_num", result.RequestID,
		"land_id", result.LandID,
		"rejected_siblings", result.RejectedSiblings,
		"seller", caller,
		"handler", AcceptBuyRequest,
		"request_id", requestId)

	respond(h.logs, w, Response{
		Message: "Buy request accepted",
		Data:    result,
	}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleRejectRequest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", RejectBuyRequest, "request_id", requestId)
		return
	}

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", RejectBuyRequest, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.trades.RejectRequest(ctx, caller, reqID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not reject buy request", err, code), code, requestId)
		h.logs.Errorw("failed to reject buy request",
			"error", err,
			"handler", RejectBuyRequest,
			"request_id", requestId)
		return
	}

	h.logs.Infow("buy request rejected",
		"request_id_num", reqID,
		"seller", caller,
		"handler", RejectBuyRequest,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Buy request rejected"}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleMarkPaymentDone(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", MarkPaymentDone, "request_id", requestId)
		return
	}

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", MarkPaymentDone, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	if err := h.trades.MarkPaymentAsDone(ctx, caller, reqID); err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not mark payment as done", err, code), code, requestId)
		h.logs.Errorw("failed to mark payment as done",
			"error", err,
			"handler", MarkPaymentDone,
			"request_id", requestId)
		return
	}

	h.logs.Infow("payment marked as done",
		"request_id_num", reqID,
		"seller", caller,
		"handler", MarkPaymentDone,
		"request_id", requestId)

	respond(h.logs, w, Response{Message: "Payment marked as done"}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	caller, err := callerAddress(r, h.verifier)
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("failed to identify caller", "error", err, "handler", TransferOwnership, "request_id", requestId)
		return
	}

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", TransferOwnership, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	result, err := h.trades.TransferLandOwnership(ctx, caller, reqID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not transfer ownership", err, code), code, requestId)
		h.logs.Errorw("failed to transfer ownership",
			"error", err,
			"handler", TransferOwnership,
			"request_id", requestId)
		return
	}

	h.logs.Infow("ownership transferred",
		"request_id_num", result.RequestID,
		"land_id", result.LandID,
		"previous_owner", result.PreviousOwner,
		"new_owner", result.NewOwner,
		"transferred_by", caller,
		"handler", TransferOwnership,
		"request_id", requestId)

	respond(h.logs, w, Response{
		Message: "Ownership transferred",
		Data:    result,
	}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleGetBuyRequest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", GetBuyRequest, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	request, err := h.trades.GetLandRequest(ctx, reqID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get buy request", err, code), code, requestId)
		h.logs.Errorw("failed to get buy request",
			"error", err,
			"handler", GetBuyRequest,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Buy request found",
		Data:    request,
	}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleGetRequestBuyer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", GetRequestBuyer, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	buyer, err := h.trades.GetBuyerAddressForRequest(ctx, reqID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get request buyer", err, code), code, requestId)
		h.logs.Errorw("failed to get request buyer",
			"error", err,
			"handler", GetRequestBuyer,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Request buyer found",
		Data:    map[string]string{"buyer": buyer},
	}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleGetRequestLand(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	reqID, err := pathID(r, "requestId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid requestId parameter", "error", err, "handler", GetRequestLand, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	landID, err := h.trades.GetLandIDForRequest(ctx, reqID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not get request land", err, code), code, requestId)
		h.logs.Errorw("failed to get request land",
			"error", err,
			"handler", GetRequestLand,
			"request_id", requestId)
		return
	}

	respond(h.logs, w, Response{
		Message: "Request land found",
		Data:    map[string]uint64{"landId": landID},
	}, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleGetLandRequests(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	landID, err := pathID(r, "landId")
	if err != nil {
		respond(h.logs, w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("invalid landId parameter", "error", err, "handler", GetLandRequests, "request_id", requestId)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	requests, err := h.trades.GetRequestForLandID(ctx, landID)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse("Could not list land requests", err, code), code, requestId)
		h.logs.Errorw("failed to list land requests",
			"error", err,
			"handler", GetLandRequests,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.BuyRequestDetails{
		"requests": requests,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}

func (h *TradeHandler) HandleSentRequests(w http.ResponseWriter, r *http.Request) {
	h.handleRequestList(w, r, SentRequests, "Could not list sent requests", h.trades.SentLandRequests)
}

func (h *TradeHandler) HandleReceivedRequests(w http.ResponseWriter, r *http.Request) {
	h.handleRequestList(w, r, ReceivedRequests, "Could not list received requests", h.trades.ReceivedLandRequests)
}

func (h *TradeHandler) HandlePendingTransfers(w http.ResponseWriter, r *http.Request) {
	h.handleRequestList(w, r, PendingTransfers, "Could not list pending transfers", h.trades.PendingTransferRequests)
}

type requestListFunc func(ctx context.Context, caller string) ([]core.BuyRequestDetails, error)

func (h *TradeHandler) handleRequestList(w http.ResponseWriter, r *http.Request, route, failMsg string, list requestListFunc) {
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

	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	requests, err := list(ctx, caller)
	if err != nil {
		code := statusForError(err)
		respond(h.logs, w, errorResponse(failMsg, err, code), code, requestId)
		h.logs.Errorw("failed to list buy requests",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.BuyRequestDetails{
		"requests": requests,
	}
	respond(h.logs, w, resp, http.StatusOK, requestId)
}
