package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
)

// MarkPaymentAsDone records that the seller received the payment for an
// accepted request.
func (l *Ledger) MarkPaymentAsDone(ctx context.Context, caller string, requestID uint64) error {
	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Seller != caller {
		return ErrUnauthorized
	}

	l.locks.Lock(landKey(request.LandID))
	defer l.locks.Unlock(landKey(request.LandID))

	request, err = l.getRequest(ctx, requestID)
	if err != nil {
		return err
	}

	switch RequestStatus(request.Status) {
	case StatusAccepted:
	case StatusPaymentDone:
		return ErrAlreadyPaymentDone
	case StatusCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrNotAccepted
	}

	if err := l.repo.SetRequestStatus(ctx, requestID, int(StatusPaymentDone)); err != nil {
		return fmt.Errorf("set request status: %w", err)
	}

	l.logs.Infow("payment marked as done", "requestId", requestID, "landId", request.LandID)
	return nil
}

// TransferLandOwnership executes the ownership transfer for a paid
// request. Inspector only. History append, owner swap, sale flag reset
// and request completion commit atomically, and any leftover active
// request for the land is rejected in the same commit.
func (l *Ledger) TransferLandOwnership(ctx context.Context, caller string, requestID uint64) (TransferResult, error) {
	if err := l.auth.requireInspector(ctx, caller); err != nil {
		return TransferResult{}, err
	}

	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return TransferResult{}, err
	}

	l.locks.Lock(landKey(request.LandID))
	defer l.locks.Unlock(landKey(request.LandID))

	request, err = l.getRequest(ctx, requestID)
	if err != nil {
		return TransferResult{}, err
	}

	switch RequestStatus(request.Status) {
	case StatusPaymentDone:
	case StatusCompleted:
		return TransferResult{}, ErrAlreadyCompleted
	default:
		return TransferResult{}, ErrNotPaymentDone
	}

	record, err := l.repo.GetLandByID(ctx, request.LandID)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return TransferResult{}, ErrLandNotFound
		}
		return TransferResult{}, fmt.Errorf("get land record: %w", err)
	}

	siblings, err := l.repo.LandRequestsWithStatus(ctx, request.LandID, activeStatuses)
	if err != nil {
		return TransferResult{}, fmt.Errorf("get sibling requests: %w", err)
	}

	rejectIDs := make([]uint64, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.RequestID != requestID {
			rejectIDs = append(rejectIDs, sibling.RequestID)
		}
	}

	args := repository.TransferArgs{
		RequestID:        requestID,
		LandID:           request.LandID,
		PreviousOwner:    record.Owner,
		NewOwner:         request.Buyer,
		CompletedStatus:  int(StatusCompleted),
		RejectedStatus:   int(StatusRejected),
		RejectRequestIDs: rejectIDs,
	}
	if err := l.repo.TransferOwnership(ctx, args); err != nil {
		return TransferResult{}, fmt.Errorf("transfer ownership: %w", err)
	}

	l.logs.Infow("land ownership transferred",
		"requestId", requestID,
		"landId", request.LandID,
		"previousOwner", record.Owner,
		"newOwner", request.Buyer,
		"inspector", caller)
	return TransferResult{
		RequestID:     requestID,
		LandID:        request.LandID,
		PreviousOwner: record.Owner,
		NewOwner:      request.Buyer,
	}, nil
}

// PendingTransferRequests lists the paid requests awaiting an inspector.
// Inspector only.
func (l *Ledger) PendingTransferRequests(ctx context.Context, caller string) ([]BuyRequestDetails, error) {
	if err := l.auth.requireInspector(ctx, caller); err != nil {
		return nil, err
	}

	requests, err := l.repo.RequestsWithStatus(ctx, []int{int(StatusPaymentDone)})
	if err != nil {
		return nil, fmt.Errorf("get pending transfer requests: %w", err)
	}
	return requestsToDetails(requests), nil
}
