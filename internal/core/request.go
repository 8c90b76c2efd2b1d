package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
)

// RequestForBuy registers the caller's interest in a for-sale land. A
// buyer may hold at most one active request per land.
func (l *Ledger) RequestForBuy(ctx context.Context, caller string, landID uint64) (BuyRequestDetails, error) {
	account, err := l.auth.requireVerified(ctx, caller)
	if err != nil {
		return BuyRequestDetails{}, err
	}

	l.locks.Lock(landKey(landID))
	defer l.locks.Unlock(landKey(landID))

	record, err := l.repo.GetLandByID(ctx, landID)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return BuyRequestDetails{}, ErrLandNotFound
		}
		return BuyRequestDetails{}, fmt.Errorf("get land record: %w", err)
	}
	if record.Owner == account.Address {
		return BuyRequestDetails{}, ErrUnauthorized
	}
	if !record.IsForSale {
		return BuyRequestDetails{}, ErrNotForSale
	}

	_, err = l.repo.BuyerRequestWithStatus(ctx, landID, account.Address, activeStatuses)
	if err == nil {
		return BuyRequestDetails{}, ErrDuplicateRequest
	}
	if !errors.Is(err, repository.ErrRequestNotFound) {
		return BuyRequestDetails{}, fmt.Errorf("get buyer request: %w", err)
	}

	request := repository.BuyRequest{
		LandID: landID,
		Buyer:  account.Address,
		Seller: record.Owner,
		Status: int(StatusRequested),
	}
	if err := l.repo.CreateBuyRequest(ctx, &request); err != nil {
		return BuyRequestDetails{}, fmt.Errorf("create buy request: %w", err)
	}

	l.logs.Infow("buy request created",
		"requestId", request.RequestID,
		"landId", landID,
		"buyer", account.Address,
		"seller", record.Owner)
	return requestToDetails(request), nil
}

// CancelBuyerRequest withdraws the caller's active request for the land.
// The cancellation window closes once the seller accepts.
func (l *Ledger) CancelBuyerRequest(ctx context.Context, caller string, landID uint64) error {
	l.locks.Lock(landKey(landID))
	defer l.locks.Unlock(landKey(landID))

	request, err := l.repo.BuyerRequestWithStatus(ctx, landID, caller, activeStatuses)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("get buyer request: %w", err)
	}

	switch RequestStatus(request.Status) {
	case StatusAccepted, StatusPaymentDone:
		return ErrAlreadyAccepted
	}

	if err := l.repo.SetRequestStatus(ctx, request.RequestID, int(StatusRejected)); err != nil {
		return fmt.Errorf("set request status: %w", err)
	}

	l.logs.Infow("buy request cancelled", "requestId", request.RequestID, "buyer", caller)
	return nil
}

// AcceptRequest accepts a buy request. Seller only. Accepting one request
// auto-rejects every other active request for the same land so no buyer
// is left waiting on a land that can no longer be sold to them.
func (l *Ledger) AcceptRequest(ctx context.Context, caller string, requestID uint64) (AcceptResult, error) {
	request, err := l.repo.GetBuyRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return AcceptResult{}, ErrRequestNotFound
		}
		return AcceptResult{}, fmt.Errorf("get buy request: %w", err)
	}
	if request.Seller != caller {
		return AcceptResult{}, ErrUnauthorized
	}

	l.locks.Lock(landKey(request.LandID))
	defer l.locks.Unlock(landKey(request.LandID))

	// reload inside the write section, the status may have moved
	request, err = l.repo.GetBuyRequest(ctx, requestID)
	if err != nil {
		return AcceptResult{}, fmt.Errorf("get buy request: %w", err)
	}

	switch RequestStatus(request.Status) {
	case StatusRequested:
	case StatusAccepted, StatusPaymentDone:
		return AcceptResult{}, ErrAlreadyAccepted
	case StatusCompleted:
		return AcceptResult{}, ErrAlreadyCompleted
	default:
		return AcceptResult{}, ErrRequestRejected
	}

	if err := l.repo.SetRequestStatus(ctx, requestID, int(StatusAccepted)); err != nil {
		return AcceptResult{}, fmt.Errorf("set request status: %w", err)
	}

	siblings, err := l.repo.LandRequestsWithStatus(ctx, request.LandID, []int{int(StatusRequested)})
	if err != nil {
		return AcceptResult{}, fmt.Errorf("get sibling requests: %w", err)
	}

	rejected := make([]uint64, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.RequestID != requestID {
			rejected = append(rejected, sibling.RequestID)
		}
	}
	if err := l.repo.SetRequestsStatus(ctx, rejected, int(StatusRejected)); err != nil {
		return AcceptResult{}, fmt.Errorf("reject sibling requests: %w", err)
	}

	l.logs.Infow("buy request accepted",
		"requestId", requestID,
		"landId", request.LandID,
		"rejectedSiblings", len(rejected))
	return AcceptResult{
		RequestID:        requestID,
		LandID:           request.LandID,
		RejectedSiblings: rejected,
	}, nil
}

// RejectRequest rejects a buy request. Seller only. Rejecting an already
// rejected request is a no-op; an accepted request can no longer be
// rejected.
func (l *Ledger) RejectRequest(ctx context.Context, caller string, requestID uint64) error {
	request, err := l.repo.GetBuyRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("get buy request: %w", err)
	}
	if request.Seller != caller {
		return ErrUnauthorized
	}

	l.locks.Lock(landKey(request.LandID))
	defer l.locks.Unlock(landKey(request.LandID))

	request, err = l.repo.GetBuyRequest(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get buy request: %w", err)
	}

	switch RequestStatus(request.Status) {
	case StatusRejected:
		return nil
	case StatusAccepted, StatusPaymentDone:
		return ErrAlreadyAccepted
	case StatusCompleted:
		return ErrAlreadyCompleted
	}

	if err := l.repo.SetRequestStatus(ctx, requestID, int(StatusRejected)); err != nil {
		return fmt.Errorf("set request status: %w", err)
	}

	l.logs.Infow("buy request rejected", "requestId", requestID, "seller", caller)
	return nil
}

// GetLandRequest returns the read view of a buy request.
func (l *Ledger) GetLandRequest(ctx context.Context, requestID uint64) (BuyRequestDetails, error) {
	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return BuyRequestDetails{}, err
	}
	return requestToDetails(request), nil
}

// GetLandRequestStatus returns the status of the buyer's request.
func (l *Ledger) GetLandRequestStatus(ctx context.Context, requestID uint64, buyer string) (RequestStatus, error) {
	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}
	if request.Buyer != buyer {
		return 0, ErrUnauthorized
	}
	return RequestStatus(request.Status), nil
}

// GetRequestForLandID returns the buy requests raised against a land.
func (l *Ledger) GetRequestForLandID(ctx context.Context, landID uint64) ([]BuyRequestDetails, error) {
	requests, err := l.repo.LandRequestsWithStatus(ctx, landID, allStatuses())
	if err != nil {
		return nil, fmt.Errorf("get land requests: %w", err)
	}
	return requestsToDetails(requests), nil
}

// GetBuyerAddressForRequest returns the buyer on a request.
func (l *Ledger) GetBuyerAddressForRequest(ctx context.Context, requestID uint64) (string, error) {
	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return "", err
	}
	return request.Buyer, nil
}

// GetLandIDForRequest returns the land a request refers to.
func (l *Ledger) GetLandIDForRequest(ctx context.Context, requestID uint64) (uint64, error) {
	request, err := l.getRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}
	return request.LandID, nil
}

// SentLandRequests lists the requests the caller raised as a buyer.
func (l *Ledger) SentLandRequests(ctx context.Context, caller string) ([]BuyRequestDetails, error) {
	requests, err := l.repo.RequestsByBuyer(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("get requests by buyer: %w", err)
	}
	return requestsToDetails(requests), nil
}

// ReceivedLandRequests lists the requests the caller received as a
// seller.
func (l *Ledger) ReceivedLandRequests(ctx context.Context, caller string) ([]BuyRequestDetails, error) {
	requests, err := l.repo.RequestsBySeller(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("get requests by seller: %w", err)
	}
	return requestsToDetails(requests), nil
}

func (l *Ledger) getRequest(ctx context.Context, requestID uint64) (repository.BuyRequest, error) {
	request, err := l.repo.GetBuyRequest(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return repository.BuyRequest{}, ErrRequestNotFound
		}
		return repository.BuyRequest{}, fmt.Errorf("get buy request: %w", err)
	}
	return request, nil
}

func allStatuses() []int {
	return []int{
		int(StatusRequested),
		int(StatusAccepted),
		int(StatusRejected),
		int(StatusPaymentDone),
		int(StatusCompleted),
	}
}

func requestToDetails(request repository.BuyRequest) BuyRequestDetails {
	return BuyRequestDetails{
		RequestID: request.RequestID,
		LandID:    request.LandID,
		Buyer:     request.Buyer,
		Seller:    request.Seller,
		Status:    RequestStatus(request.Status),
	}
}

func requestsToDetails(requests []repository.BuyRequest) []BuyRequestDetails {
	details := make([]BuyRequestDetails, len(requests))
	for i, request := range requests {
		details[i] = requestToDetails(request)
	}
	return details
}
