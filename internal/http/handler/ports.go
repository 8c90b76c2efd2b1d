package handler

import (
	"context"
	"landledger/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Identify(token string) (string, error)
}

//counterfeiter:generate -o fake -fake-name RegistryService . RegistryService
type RegistryService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	RegisterAccount(ctx context.Context, msg core.RegisterAccountMessage) (core.AccountDetails, error)
	AddLandInspector(ctx context.Context, caller string, msg core.AddOfficialMessage) (core.AccountDetails, error)
	AddSecondLevelAuthority(ctx context.Context, caller string, msg core.AddOfficialMessage) (core.AccountDetails, error)
	GrantLandInspectorStatus(ctx context.Context, caller, target string) error
	GrantSecondLevelAuthorityStatus(ctx context.Context, caller, target string) error
	RevokeLandInspectorStatus(ctx context.Context, caller, target string) error
	RevokeSecondLevelAuthorityStatus(ctx context.Context, caller, target string) error
	RemoveLandInspector(ctx context.Context, caller, target string) error
	RemoveSecondLevelAuthority(ctx context.Context, caller, target string) error
	VerifyAccount(ctx context.Context, caller, nationalID string) error
	RequestAccountVerification(ctx context.Context, caller, nationalID string) (core.VerificationOutcome, error)
	PendingAccountVerifications(ctx context.Context, caller string) ([]string, error)
	GetUserDetailsByAddress(ctx context.Context, address string) (core.AccountDetails, error)
}

//counterfeiter:generate -o fake -fake-name LandService . LandService
type LandService interface {
	AddLandRecord(ctx context.Context, caller string, msg core.AddLandMessage) (core.AddLandResult, error)
	GetLandID(ctx context.Context, identifier core.LandIdentifier) (uint64, error)
	LandVerificationRequest(ctx context.Context, caller string, landID uint64) (core.VerificationOutcome, error)
	VerifyLand(ctx context.Context, caller string, landID uint64) error
	ListLandForSale(ctx context.Context, caller string, landID uint64) error
	GetLandRecord(ctx context.Context, landID uint64) (core.LandDetails, error)
	GetLandsForSale(ctx context.Context) ([]core.LandDetails, error)
	GetMyLands(ctx context.Context, caller string) ([]core.LandDetails, error)
	AllLands(ctx context.Context) ([]core.LandDetails, error)
	GetPreviousOwners(ctx context.Context, landID uint64) ([]string, error)
	PendingLandVerifications(ctx context.Context, caller string) ([]uint64, error)
}

//counterfeiter:generate -o fake -fake-name TradeService . TradeService
type TradeService interface {
	RequestForBuy(ctx context.Context, caller string, landID uint64) (core.BuyRequestDetails, error)
	CancelBuyerRequest(ctx context.Context, caller string, landID uint64) error
	AcceptRequest(ctx context.Context, caller string, requestID uint64) (core.AcceptResult, error)
	RejectRequest(ctx context.Context, caller string, requestID uint64) error
	MarkPaymentAsDone(ctx context.Context, caller string, requestID uint64) error
	TransferLandOwnership(ctx context.Context, caller string, requestID uint64) (core.TransferResult, error)
	GetLandRequest(ctx context.Context, requestID uint64) (core.BuyRequestDetails, error)
	GetRequestForLandID(ctx context.Context, landID uint64) ([]core.BuyRequestDetails, error)
	GetBuyerAddressForRequest(ctx context.Context, requestID uint64) (string, error)
	GetLandIDForRequest(ctx context.Context, requestID uint64) (uint64, error)
	SentLandRequests(ctx context.Context, caller string) ([]core.BuyRequestDetails, error)
	ReceivedLandRequests(ctx context.Context, caller string) ([]core.BuyRequestDetails, error)
	PendingTransferRequests(ctx context.Context, caller string) ([]core.BuyRequestDetails, error)
}
