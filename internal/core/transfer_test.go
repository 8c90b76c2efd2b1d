package core_test

import (
	"context"
	"errors"
	"landledger/internal/core"
	"landledger/internal/core/fake"
	"landledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Transfers", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		ledger *core.Ledger

		sellerAddr    string
		buyerAddr     string
		inspectorAddr string

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		ledger = core.NewLedger(fakeLogger, fakeRepo, fakeJWT)

		sellerAddr = common.HexToAddress("0x0000000000000000000000000000000000000601").Hex()
		buyerAddr = common.HexToAddress("0x0000000000000000000000000000000000000602").Hex()
		inspectorAddr = common.HexToAddress("0x0000000000000000000000000000000000000603").Hex()

		fakeRepo.GetAccountByAddressCalls(func(_ context.Context, address string) (repository.Account, error) {
			switch address {
			case inspectorAddr:
				return repository.Account{
					Address:     inspectorAddr,
					Designation: int(core.DesignationLandInspector),
					IsVerified:  true,
				}, nil
			case sellerAddr, buyerAddr:
				return repository.Account{Address: address, IsVerified: true}, nil
			default:
				return repository.Account{}, repository.ErrAccountNotFound
			}
		})

		fakeErr = errors.New("fake error")
	})

	Describe("MarkPaymentAsDone", func() {
		var (
			caller  string
			request repository.BuyRequest
			err     error
		)

		BeforeEach(func() {
			caller = sellerAddr
			request = repository.BuyRequest{
				RequestID: 11,
				LandID:    5,
				Buyer:     buyerAddr,
				Seller:    sellerAddr,
				Status:    int(core.StatusAccepted),
			}
		})

		JustBeforeEach(func() {
			fakeRepo.GetBuyRequestReturns(request, nil)
			err = ledger.MarkPaymentAsDone(ctx, caller, 11)
		})

		When("the request is accepted", func() {
			It("moves it to payment done", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetRequestStatusCallCount()).To(Equal(1))
				_, argRequestID, argStatus := fakeRepo.SetRequestStatusArgsForCall(0)
				Expect(argRequestID).To(Equal(uint64(11)))
				Expect(argStatus).To(Equal(int(core.StatusPaymentDone)))
			})
		})

		When("the caller is not the seller", func() {
			BeforeEach(func() {
				caller = buyerAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the request is still pending", func() {
			BeforeEach(func() {
				request.Status = int(core.StatusRequested)
			})

			It("should return not accepted error", func() {
				Expect(err).To(MatchError(core.ErrNotAccepted))
			})
		})

		When("payment is already done", func() {
			BeforeEach(func() {
				request.Status = int(core.StatusPaymentDone)
			})

			It("should return already payment done error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyPaymentDone))
			})
		})

		When("the transfer already completed", func() {
			BeforeEach(func() {
				request.Status = int(core.StatusCompleted)
			})

			It("should return already completed error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyCompleted))
			})
		})
	})

	Describe("TransferLandOwnership", func() {
		var (
			caller  string
			request repository.BuyRequest
			result  core.TransferResult
			err     error
		)

		BeforeEach(func() {
			caller = inspectorAddr
			request = repository.BuyRequest{
				RequestID: 11,
				LandID:    5,
				Buyer:     buyerAddr,
				Seller:    sellerAddr,
				Status:    int(core.StatusPaymentDone),
			}

			fakeRepo.GetLandByIDReturns(repository.LandRecord{
				LandID:     5,
				Owner:      sellerAddr,
				IsVerified: true,
				IsForSale:  true,
			}, nil)
			fakeRepo.LandRequestsWithStatusReturns([]repository.BuyRequest{
				{RequestID: 11, LandID: 5, Status: int(core.StatusPaymentDone)},
				{RequestID: 14, LandID: 5, Status: int(core.StatusRequested)},
			}, nil)
		})

		JustBeforeEach(func() {
			fakeRepo.GetBuyRequestReturns(request, nil)
			result, err = ledger.TransferLandOwnership(ctx, caller, 11)
		})

		When("payment is done", func() {
			It("commits the transfer atomically", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result).To(Equal(core.TransferResult{
					RequestID:     11,
					LandID:        5,
					PreviousOwner: sellerAddr,
					NewOwner:      buyerAddr,
				}))

				Expect(fakeRepo.TransferOwnershipCallCount()).To(Equal(1))
				_, argArgs := fakeRepo.TransferOwnershipArgsForCall(0)
				Expect(argArgs).To(Equal(repository.TransferArgs{
					RequestID:        11,
					LandID:           5,
					PreviousOwner:    sellerAddr,
					NewOwner:         buyerAddr,
					CompletedStatus:  int(core.StatusCompleted),
					RejectedStatus:   int(core.StatusRejected),
					RejectRequestIDs: []uint64{14},
				}))
			})
		})

		When("the caller is not an inspector", func() {
			BeforeEach(func() {
				caller = sellerAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.TransferOwnershipCallCount()).To(Equal(0))
			})
		})

		When("payment is not done yet", func() {
			BeforeEach(func() {
				request.Status = int(core.StatusAccepted)
			})

			It("should return not payment done error", func() {
				Expect(err).To(MatchError(core.ErrNotPaymentDone))
			})
		})

		When("the transfer already completed", func() {
			BeforeEach(func() {
				request.Status = int(core.StatusCompleted)
			})

			It("should return already completed error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyCompleted))
			})
		})

		When("the transfer commit fails", func() {
			BeforeEach(func() {
				fakeRepo.TransferOwnershipReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PendingTransferRequests", func() {
		It("lists paid requests for an inspector", func() {
			fakeRepo.RequestsWithStatusReturns([]repository.BuyRequest{
				{RequestID: 11, Status: int(core.StatusPaymentDone)},
			}, nil)

			requests, err := ledger.PendingTransferRequests(ctx, inspectorAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(requests).To(HaveLen(1))

			_, argStatuses := fakeRepo.RequestsWithStatusArgsForCall(0)
			Expect(argStatuses).To(Equal([]int{int(core.StatusPaymentDone)}))
		})

		It("rejects everyone else", func() {
			_, err := ledger.PendingTransferRequests(ctx, sellerAddr)
			Expect(err).To(MatchError(core.ErrUnauthorized))
		})
	})
})
