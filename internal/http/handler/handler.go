package handler

import (
	"context"
	"encoding/json"
	"errors"
	"landledger/internal/core"
	"landledger/internal/http/handler/middleware"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var errMissingToken = errors.New("authorization token is required")

func respond(logs *zap.SugaredLogger, w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}

// callerAddress resolves the authenticated account address from the
// Authorization header.
func callerAddress(r *http.Request, verifier TokenVerifier) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errMissingToken
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	address, err := verifier.Identify(token)
	if err != nil {
		return "", err
	}
	return address, nil
}

func pathID(r *http.Request, name string) (uint64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New(name + " path parameter must be a positive integer")
	}
	return id, nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, core.ErrIncorrectPassphrase):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrAccountNotFound),
		errors.Is(err, core.ErrLandNotFound),
		errors.Is(err, core.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrAlreadyRegistered),
		errors.Is(err, core.ErrDuplicateNationalID),
		errors.Is(err, core.ErrCannotModifyDeployer),
		errors.Is(err, core.ErrNotVerified),
		errors.Is(err, core.ErrNotForSale),
		errors.Is(err, core.ErrDuplicateRequest),
		errors.Is(err, core.ErrAlreadyAccepted),
		errors.Is(err, core.ErrRequestRejected),
		errors.Is(err, core.ErrNotAccepted),
		errors.Is(err, core.ErrAlreadyPaymentDone),
		errors.Is(err, core.ErrNotPaymentDone),
		errors.Is(err, core.ErrAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse hides internal failures behind a generic message while
// surfacing domain errors verbatim.
func errorResponse(message string, err error, code int) Response {
	resp := Response{Message: message}
	if code == http.StatusInternalServerError {
		resp.Error = "unexpected error occurred"
	} else {
		resp.Error = err.Error()
	}
	return resp
}
