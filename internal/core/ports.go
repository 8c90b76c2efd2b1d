package core

import (
	"context"
	"landledger/internal/repository"
	tokenIssuer "landledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetAccountByAddress(ctx context.Context, address string) (repository.Account, error)
	GetAccountByNationalID(ctx context.Context, nationalID string) (repository.Account, error)
	CreateAccount(ctx context.Context, account repository.Account) error
	SetDesignation(ctx context.Context, address string, designation int) error
	SetAccountVerification(ctx context.Context, address string, verified bool) error
	VerifyAccountByNationalID(ctx context.Context, nationalID string) error
	EnqueueAccountVerification(ctx context.Context, nationalID string) (bool, error)
	PendingAccountVerifications(ctx context.Context) ([]string, error)

	CreateLand(ctx context.Context, record *repository.LandRecord) error
	GetLandByHashKey(ctx context.Context, hashKey string) (repository.LandRecord, error)
	GetLandByID(ctx context.Context, landID uint64) (repository.LandRecord, error)
	SetLandVerified(ctx context.Context, landID uint64) error
	SetLandForSale(ctx context.Context, landID uint64) error
	EnqueueLandVerification(ctx context.Context, landID uint64) (bool, error)
	PendingLandVerifications(ctx context.Context) ([]uint64, error)
	LandsForSale(ctx context.Context) ([]repository.LandRecord, error)
	LandsByOwner(ctx context.Context, owner string) ([]repository.LandRecord, error)
	AllLands(ctx context.Context) ([]repository.LandRecord, error)
	PreviousOwners(ctx context.Context, landID uint64) ([]string, error)

	CreateBuyRequest(ctx context.Context, request *repository.BuyRequest) error
	GetBuyRequest(ctx context.Context, requestID uint64) (repository.BuyRequest, error)
	BuyerRequestWithStatus(ctx context.Context, landID uint64, buyer string, statuses []int) (repository.BuyRequest, error)
	LandRequestsWithStatus(ctx context.Context, landID uint64, statuses []int) ([]repository.BuyRequest, error)
	RequestsWithStatus(ctx context.Context, statuses []int) ([]repository.BuyRequest, error)
	RequestsByBuyer(ctx context.Context, buyer string) ([]repository.BuyRequest, error)
	RequestsBySeller(ctx context.Context, seller string) ([]repository.BuyRequest, error)
	SetRequestStatus(ctx context.Context, requestID uint64, status int) error
	SetRequestsStatus(ctx context.Context, requestIDs []uint64, status int) error
	TransferOwnership(ctx context.Context, args repository.TransferArgs) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
