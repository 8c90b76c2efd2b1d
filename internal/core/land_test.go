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

var _ = Describe("Lands", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		ledger *core.Ledger

		ownerAddr     string
		strangerAddr  string
		inspectorAddr string

		identifier core.LandIdentifier

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		ledger = core.NewLedger(fakeLogger, fakeRepo, fakeJWT)

		ownerAddr = common.HexToAddress("0x0000000000000000000000000000000000000b01").Hex()
		strangerAddr = common.HexToAddress("0x0000000000000000000000000000000000000b02").Hex()
		inspectorAddr = common.HexToAddress("0x0000000000000000000000000000000000000103").Hex()

		fakeRepo.GetAccountByAddressCalls(func(_ context.Context, address string) (repository.Account, error) {
			switch address {
			case ownerAddr:
				return repository.Account{Address: ownerAddr, IsVerified: true}, nil
			case strangerAddr:
				return repository.Account{Address: strangerAddr, IsVerified: true}, nil
			case inspectorAddr:
				return repository.Account{
					Address:     inspectorAddr,
					Designation: int(core.DesignationLandInspector),
					IsVerified:  true,
				}, nil
			default:
				return repository.Account{}, repository.ErrAccountNotFound
			}
		})

		identifier = core.LandIdentifier{
			State:        "Maharashtra",
			Division:     "Konkan",
			District:     "Raigad",
			Taluka:       "Panvel",
			Village:      "Chirner",
			SurveyNumber: "101",
			Subdivision:  "2A",
		}

		fakeErr = errors.New("fake error")
	})

	Describe("AddLandRecord", func() {
		var (
			caller string
			msg    core.AddLandMessage
			result core.AddLandResult
			err    error
		)

		BeforeEach(func() {
			caller = ownerAddr
			msg = core.AddLandMessage{
				Identifier:          identifier,
				Area:                1200,
				PurchaseDate:        1700000000,
				PurchasePrice:       500000,
				LandValueAtPurchase: 550000,
			}

			fakeRepo.GetLandByHashKeyReturns(repository.LandRecord{}, repository.ErrLandNotFound)
			fakeRepo.CreateLandCalls(func(_ context.Context, record *repository.LandRecord) error {
				record.LandID = 7
				return nil
			})
		})

		JustBeforeEach(func() {
			result, err = ledger.AddLandRecord(ctx, caller, msg)
		})

		When("the identifier is new", func() {
			It("creates the record for the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(core.LandRecordAdded))
				Expect(result.LandID).To(Equal(uint64(7)))

				Expect(fakeRepo.CreateLandCallCount()).To(Equal(1))
				_, argRecord := fakeRepo.CreateLandArgsForCall(0)
				Expect(argRecord.Owner).To(Equal(ownerAddr))
				Expect(argRecord.HashKey).To(Equal(identifier.HashKey()))
				Expect(argRecord.Area).To(Equal(uint64(1200)))

				_, argHashKey := fakeRepo.GetLandByHashKeyArgsForCall(0)
				Expect(argHashKey).To(Equal(identifier.HashKey()))
			})
		})

		When("the identifier already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByHashKeyReturns(repository.LandRecord{
					LandID:  3,
					HashKey: identifier.HashKey(),
					Owner:   strangerAddr,
				}, nil)
			})

			It("reports the existing record without creating", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Outcome).To(Equal(core.LandRecordExists))
				Expect(result.LandID).To(Equal(uint64(3)))
				Expect(fakeRepo.CreateLandCallCount()).To(Equal(0))
			})
		})

		When("the caller is not verified", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByAddressReturns(repository.Account{
					Address:    caller,
					IsVerified: false,
				}, nil)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.CreateLandCallCount()).To(Equal(0))
			})
		})

		When("creating the record fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateLandReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetLandID", func() {
		When("the parcel exists", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByHashKeyReturns(repository.LandRecord{LandID: 5}, nil)
			})

			It("returns its id", func() {
				landID, err := ledger.GetLandID(ctx, identifier)
				Expect(err).NotTo(HaveOccurred())
				Expect(landID).To(Equal(uint64(5)))
			})
		})

		When("the parcel does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByHashKeyReturns(repository.LandRecord{}, repository.ErrLandNotFound)
			})

			It("returns zero without error", func() {
				landID, err := ledger.GetLandID(ctx, identifier)
				Expect(err).NotTo(HaveOccurred())
				Expect(landID).To(BeZero())
			})
		})
	})

	Describe("LandVerificationRequest", func() {
		var (
			caller  string
			outcome core.VerificationOutcome
			err     error
		)

		BeforeEach(func() {
			caller = ownerAddr
			fakeRepo.GetLandByIDReturns(repository.LandRecord{
				LandID:  5,
				HashKey: identifier.HashKey(),
				Owner:   ownerAddr,
			}, nil)
		})

		JustBeforeEach(func() {
			outcome, err = ledger.LandVerificationRequest(ctx, caller, 5)
		})

		When("the land is not yet queued", func() {
			BeforeEach(func() {
				fakeRepo.EnqueueLandVerificationReturns(true, nil)
			})

			It("enqueues it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationRequested))
				Expect(fakeRepo.EnqueueLandVerificationCallCount()).To(Equal(1))
				_, argLandID := fakeRepo.EnqueueLandVerificationArgsForCall(0)
				Expect(argLandID).To(Equal(uint64(5)))
			})
		})

		When("a request is already queued", func() {
			BeforeEach(func() {
				fakeRepo.EnqueueLandVerificationReturns(false, nil)
			})

			It("reports it without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationAlreadyRequested))
			})
		})

		When("the land is already verified", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByIDReturns(repository.LandRecord{
					LandID:     5,
					Owner:      ownerAddr,
					IsVerified: true,
				}, nil)
			})

			It("reports it without enqueueing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationAlreadyDone))
				Expect(fakeRepo.EnqueueLandVerificationCallCount()).To(Equal(0))
			})
		})

		When("the caller does not own the land", func() {
			BeforeEach(func() {
				caller = strangerAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the land does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByIDReturns(repository.LandRecord{}, repository.ErrLandNotFound)
			})

			It("should return land not found error", func() {
				Expect(err).To(MatchError(core.ErrLandNotFound))
			})
		})
	})

	Describe("VerifyLand", func() {
		var (
			caller string
			err    error
		)

		BeforeEach(func() {
			caller = inspectorAddr
			fakeRepo.GetLandByIDReturns(repository.LandRecord{
				LandID:  5,
				HashKey: identifier.HashKey(),
				Owner:   ownerAddr,
			}, nil)
		})

		JustBeforeEach(func() {
			err = ledger.VerifyLand(ctx, caller, 5)
		})

		When("called by an inspector", func() {
			It("marks the land verified", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetLandVerifiedCallCount()).To(Equal(1))
				_, argLandID := fakeRepo.SetLandVerifiedArgsForCall(0)
				Expect(argLandID).To(Equal(uint64(5)))
			})
		})

		When("called by the owner", func() {
			BeforeEach(func() {
				caller = ownerAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.SetLandVerifiedCallCount()).To(Equal(0))
			})
		})

		When("the land does not exist", func() {
			BeforeEach(func() {
				fakeRepo.SetLandVerifiedReturns(repository.ErrLandNotFound)
			})

			It("should return land not found error", func() {
				Expect(err).To(MatchError(core.ErrLandNotFound))
			})
		})
	})

	Describe("ListLandForSale", func() {
		var (
			caller string
			record repository.LandRecord
			err    error
		)

		BeforeEach(func() {
			caller = ownerAddr
			record = repository.LandRecord{
				LandID:     5,
				HashKey:    identifier.HashKey(),
				Owner:      ownerAddr,
				IsVerified: true,
			}
		})

		JustBeforeEach(func() {
			fakeRepo.GetLandByIDReturns(record, nil)
			err = ledger.ListLandForSale(ctx, caller, 5)
		})

		When("the land is verified", func() {
			It("puts it up for sale", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetLandForSaleCallCount()).To(Equal(1))
			})
		})

		When("the land is not verified", func() {
			BeforeEach(func() {
				record.IsVerified = false
			})

			It("should return not verified error", func() {
				Expect(err).To(MatchError(core.ErrNotVerified))
				Expect(fakeRepo.SetLandForSaleCallCount()).To(Equal(0))
			})
		})

		When("the land is already for sale", func() {
			BeforeEach(func() {
				record.IsForSale = true
			})

			It("is a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetLandForSaleCallCount()).To(Equal(0))
			})
		})

		When("the caller does not own the land", func() {
			BeforeEach(func() {
				caller = strangerAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("GetLandRecord", func() {
		When("the land exists", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByIDReturns(repository.LandRecord{
					LandID:       5,
					State:        identifier.State,
					Division:     identifier.Division,
					District:     identifier.District,
					Taluka:       identifier.Taluka,
					Village:      identifier.Village,
					SurveyNumber: identifier.SurveyNumber,
					Subdivision:  identifier.Subdivision,
					Owner:        ownerAddr,
					Area:         1200,
				}, nil)
			})

			It("returns the full read view", func() {
				details, err := ledger.GetLandRecord(ctx, 5)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.LandID).To(Equal(uint64(5)))
				Expect(details.Identifier).To(Equal(identifier))
				Expect(details.Owner).To(Equal(ownerAddr))
			})
		})

		When("the land does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetLandByIDReturns(repository.LandRecord{}, repository.ErrLandNotFound)
			})

			It("should return land not found error", func() {
				_, err := ledger.GetLandRecord(ctx, 5)
				Expect(err).To(MatchError(core.ErrLandNotFound))
			})
		})
	})

	Describe("GetPreviousOwners", func() {
		BeforeEach(func() {
			fakeRepo.GetLandByIDReturns(repository.LandRecord{LandID: 5, Owner: ownerAddr}, nil)
		})

		It("returns the ownership history", func() {
			fakeRepo.PreviousOwnersReturns([]string{strangerAddr}, nil)

			owners, err := ledger.GetPreviousOwners(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(owners).To(Equal([]string{strangerAddr}))
		})

		It("fails for a missing land", func() {
			fakeRepo.GetLandByIDReturns(repository.LandRecord{}, repository.ErrLandNotFound)

			_, err := ledger.GetPreviousOwners(ctx, 5)
			Expect(err).To(MatchError(core.ErrLandNotFound))
			Expect(fakeRepo.PreviousOwnersCallCount()).To(Equal(0))
		})
	})

	Describe("PendingLandVerifications", func() {
		It("returns the queue for an inspector", func() {
			fakeRepo.PendingLandVerificationsReturns([]uint64{2, 5}, nil)

			pending, err := ledger.PendingLandVerifications(ctx, inspectorAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(Equal([]uint64{2, 5}))
		})

		It("rejects everyone else", func() {
			_, err := ledger.PendingLandVerifications(ctx, ownerAddr)
			Expect(err).To(MatchError(core.ErrUnauthorized))
		})
	})

	Describe("GetMyLands", func() {
		It("lists the caller's lands", func() {
			fakeRepo.LandsByOwnerReturns([]repository.LandRecord{
				{LandID: 1, Owner: ownerAddr},
				{LandID: 2, Owner: ownerAddr},
			}, nil)

			lands, err := ledger.GetMyLands(ctx, ownerAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(lands).To(HaveLen(2))

			_, argOwner := fakeRepo.LandsByOwnerArgsForCall(0)
			Expect(argOwner).To(Equal(ownerAddr))
		})
	})

	Describe("GetLandsForSale", func() {
		It("lists every land up for sale", func() {
			fakeRepo.LandsForSaleReturns([]repository.LandRecord{
				{LandID: 1, IsForSale: true},
			}, nil)

			lands, err := ledger.GetLandsForSale(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(lands).To(HaveLen(1))
			Expect(lands[0].IsForSale).To(BeTrue())
		})
	})
})
