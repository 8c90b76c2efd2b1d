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

var _ = Describe("Registry", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		ledger *core.Ledger

		deployerAddr  string
		authorityAddr string
		inspectorAddr string
		citizenAddr   string
		newAddr       string

		accounts map[string]repository.Account

		fakeErr error
	)

	stubAccounts := func() {
		fakeRepo.GetAccountByAddressCalls(func(_ context.Context, address string) (repository.Account, error) {
			account, ok := accounts[address]
			if !ok {
				return repository.Account{}, repository.ErrAccountNotFound
			}
			return account, nil
		})
		fakeRepo.GetAccountByNationalIDCalls(func(_ context.Context, nationalID string) (repository.Account, error) {
			for _, account := range accounts {
				if account.NationalID == nationalID {
					return account, nil
				}
			}
			return repository.Account{}, repository.ErrAccountNotFound
		})
	}

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		ledger = core.NewLedger(fakeLogger, fakeRepo, fakeJWT)

		deployerAddr = common.HexToAddress("0x0000000000000000000000000000000000000d01").Hex()
		authorityAddr = common.HexToAddress("0x0000000000000000000000000000000000000a01").Hex()
		inspectorAddr = common.HexToAddress("0x0000000000000000000000000000000000000101").Hex()
		citizenAddr = common.HexToAddress("0x0000000000000000000000000000000000000c01").Hex()
		newAddr = common.HexToAddress("0x0000000000000000000000000000000000000e01").Hex()

		accounts = map[string]repository.Account{
			deployerAddr: {
				Address:     deployerAddr,
				Username:    "deployer",
				NationalID:  "NID-D",
				Designation: int(core.DesignationDeployer),
				IsVerified:  true,
			},
			authorityAddr: {
				Address:     authorityAddr,
				Username:    "authority",
				NationalID:  "NID-A",
				Designation: int(core.DesignationSecondLevelAuthority),
				IsVerified:  true,
			},
			inspectorAddr: {
				Address:     inspectorAddr,
				Username:    "inspector",
				NationalID:  "NID-I",
				Designation: int(core.DesignationLandInspector),
				IsVerified:  true,
			},
			citizenAddr: {
				Address:     citizenAddr,
				Username:    "citizen",
				NationalID:  "NID-C",
				Designation: int(core.DesignationNone),
				IsVerified:  true,
			},
		}
		stubAccounts()

		fakeErr = errors.New("fake error")
	})

	Describe("RegisterAccount", func() {
		var (
			msg     core.RegisterAccountMessage
			details core.AccountDetails
			err     error
		)

		BeforeEach(func() {
			msg = core.RegisterAccountMessage{
				Address:    "0x0000000000000000000000000000000000000e01",
				Username:   "newuser",
				NationalID: "NID-NEW",
				Passphrase: "secretpass",
			}
		})

		JustBeforeEach(func() {
			details, err = ledger.RegisterAccount(ctx, msg)
		})

		When("the address is free", func() {
			It("creates an unverified participant account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Address).To(Equal(newAddr))
				Expect(details.Designation).To(Equal(core.DesignationNone))
				Expect(details.IsVerified).To(BeFalse())

				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(1))
				_, argAccount := fakeRepo.CreateAccountArgsForCall(0)
				Expect(argAccount.Address).To(Equal(newAddr))
				Expect(argAccount.Username).To(Equal("newuser"))
				Expect(argAccount.NationalID).To(Equal("NID-NEW"))
				Expect(argAccount.PassphraseHash).NotTo(Equal("secretpass"))
				Expect(argAccount.PassphraseHash).NotTo(BeEmpty())
			})
		})

		When("the address is already registered", func() {
			BeforeEach(func() {
				msg.Address = citizenAddr
			})

			It("should return already registered error", func() {
				Expect(err).To(MatchError(core.ErrAlreadyRegistered))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the national id is taken", func() {
			BeforeEach(func() {
				msg.NationalID = "NID-C"
			})

			It("should return duplicate national id error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateNationalID))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				msg.Address = "0xzz"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
			})
		})
	})

	Describe("AddLandInspector", func() {
		var (
			caller  string
			msg     core.AddOfficialMessage
			details core.AccountDetails
			err     error
		)

		BeforeEach(func() {
			caller = authorityAddr
			msg = core.AddOfficialMessage{
				Address:    "0x0000000000000000000000000000000000000e01",
				Username:   "newinspector",
				NationalID: "NID-NEW",
				Passphrase: "secretpass",
			}
		})

		JustBeforeEach(func() {
			details, err = ledger.AddLandInspector(ctx, caller, msg)
		})

		When("called by a second level authority", func() {
			It("creates a verified inspector account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Designation).To(Equal(core.DesignationLandInspector))
				Expect(details.IsVerified).To(BeTrue())

				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(1))
				_, argAccount := fakeRepo.CreateAccountArgsForCall(0)
				Expect(argAccount.Designation).To(Equal(int(core.DesignationLandInspector)))
				Expect(argAccount.IsVerified).To(BeTrue())
			})
		})

		When("called by the deployer", func() {
			BeforeEach(func() {
				caller = deployerAddr
			})

			It("creates the account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(1))
			})
		})

		When("called by a plain participant", func() {
			BeforeEach(func() {
				caller = citizenAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(0))
			})
		})

		When("the caller is unknown", func() {
			BeforeEach(func() {
				caller = newAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("AddSecondLevelAuthority", func() {
		var (
			caller string
			msg    core.AddOfficialMessage
			err    error
		)

		BeforeEach(func() {
			caller = deployerAddr
			msg = core.AddOfficialMessage{
				Address:    "0x0000000000000000000000000000000000000e01",
				Username:   "newauthority",
				NationalID: "NID-NEW",
				Passphrase: "secretpass",
			}
		})

		JustBeforeEach(func() {
			_, err = ledger.AddSecondLevelAuthority(ctx, caller, msg)
		})

		When("called by the deployer", func() {
			It("creates a verified authority account", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateAccountCallCount()).To(Equal(1))
				_, argAccount := fakeRepo.CreateAccountArgsForCall(0)
				Expect(argAccount.Designation).To(Equal(int(core.DesignationSecondLevelAuthority)))
			})
		})

		When("called by a second level authority", func() {
			BeforeEach(func() {
				caller = authorityAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("GrantLandInspectorStatus", func() {
		var (
			caller string
			target string
			err    error
		)

		BeforeEach(func() {
			caller = authorityAddr
			target = citizenAddr
		})

		JustBeforeEach(func() {
			err = ledger.GrantLandInspectorStatus(ctx, caller, target)
		})

		When("the target is a plain account", func() {
			It("promotes it to inspector", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.SetDesignationCallCount()).To(Equal(1))
				_, argAddr, argDesignation := fakeRepo.SetDesignationArgsForCall(0)
				Expect(argAddr).To(Equal(citizenAddr))
				Expect(argDesignation).To(Equal(int(core.DesignationLandInspector)))
			})
		})

		When("the target is the deployer", func() {
			BeforeEach(func() {
				target = deployerAddr
			})

			It("should return cannot modify deployer error", func() {
				Expect(err).To(MatchError(core.ErrCannotModifyDeployer))
				Expect(fakeRepo.SetDesignationCallCount()).To(Equal(0))
			})
		})

		When("the target does not exist", func() {
			BeforeEach(func() {
				target = newAddr
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("the caller is an inspector", func() {
			BeforeEach(func() {
				caller = inspectorAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("RemoveLandInspector", func() {
		var (
			caller string
			target string
			err    error
		)

		BeforeEach(func() {
			caller = authorityAddr
			target = inspectorAddr
		})

		JustBeforeEach(func() {
			err = ledger.RemoveLandInspector(ctx, caller, target)
		})

		When("the target is an inspector", func() {
			It("drops designation and verification", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.SetDesignationCallCount()).To(Equal(1))
				_, argAddr, argDesignation := fakeRepo.SetDesignationArgsForCall(0)
				Expect(argAddr).To(Equal(inspectorAddr))
				Expect(argDesignation).To(Equal(int(core.DesignationNone)))

				Expect(fakeRepo.SetAccountVerificationCallCount()).To(Equal(1))
				_, argAddr, argVerified := fakeRepo.SetAccountVerificationArgsForCall(0)
				Expect(argAddr).To(Equal(inspectorAddr))
				Expect(argVerified).To(BeFalse())
			})
		})

		When("the target is the deployer", func() {
			BeforeEach(func() {
				target = deployerAddr
			})

			It("should return cannot modify deployer error", func() {
				Expect(err).To(MatchError(core.ErrCannotModifyDeployer))
			})
		})
	})

	Describe("VerifyAccount", func() {
		var (
			caller     string
			nationalID string
			err        error
		)

		BeforeEach(func() {
			caller = authorityAddr
			nationalID = "NID-C"
		})

		JustBeforeEach(func() {
			err = ledger.VerifyAccount(ctx, caller, nationalID)
		})

		When("the account exists", func() {
			It("verifies it by national id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.VerifyAccountByNationalIDCallCount()).To(Equal(1))
				_, argNationalID := fakeRepo.VerifyAccountByNationalIDArgsForCall(0)
				Expect(argNationalID).To(Equal("NID-C"))
			})
		})

		When("the national id is unknown", func() {
			BeforeEach(func() {
				nationalID = "NID-MISSING"
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("the caller is a plain participant", func() {
			BeforeEach(func() {
				caller = citizenAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.VerifyAccountByNationalIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("RequestAccountVerification", func() {
		var (
			nationalID string
			outcome    core.VerificationOutcome
			err        error
		)

		BeforeEach(func() {
			nationalID = "NID-NEW"
			accounts[newAddr] = repository.Account{
				Address:    newAddr,
				NationalID: "NID-NEW",
				IsVerified: false,
			}
			stubAccounts()
		})

		JustBeforeEach(func() {
			outcome, err = ledger.RequestAccountVerification(ctx, newAddr, nationalID)
		})

		When("no request is pending", func() {
			BeforeEach(func() {
				fakeRepo.EnqueueAccountVerificationReturns(true, nil)
			})

			It("enqueues the request", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationRequested))
				Expect(fakeRepo.EnqueueAccountVerificationCallCount()).To(Equal(1))
			})
		})

		When("a request is already pending", func() {
			BeforeEach(func() {
				fakeRepo.EnqueueAccountVerificationReturns(false, nil)
			})

			It("reports it without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationAlreadyRequested))
			})
		})

		When("the account is already verified", func() {
			BeforeEach(func() {
				nationalID = "NID-C"
			})

			It("reports it without enqueueing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(core.VerificationAlreadyDone))
				Expect(fakeRepo.EnqueueAccountVerificationCallCount()).To(Equal(0))
			})
		})

		When("the national id is unknown", func() {
			BeforeEach(func() {
				nationalID = "NID-MISSING"
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})
	})

	Describe("PendingAccountVerifications", func() {
		var (
			caller  string
			pending []string
			err     error
		)

		BeforeEach(func() {
			caller = authorityAddr
		})

		JustBeforeEach(func() {
			pending, err = ledger.PendingAccountVerifications(ctx, caller)
		})

		When("called by an authority", func() {
			BeforeEach(func() {
				fakeRepo.PendingAccountVerificationsReturns([]string{"NID-1", "NID-2"}, nil)
			})

			It("returns the queue", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(pending).To(Equal([]string{"NID-1", "NID-2"}))
			})
		})

		When("called by a plain participant", func() {
			BeforeEach(func() {
				caller = citizenAddr
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.PendingAccountVerificationsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserDetailsByAddress", func() {
		var (
			address string
			details core.AccountDetails
			err     error
		)

		BeforeEach(func() {
			address = citizenAddr
		})

		JustBeforeEach(func() {
			details, err = ledger.GetUserDetailsByAddress(ctx, address)
		})

		When("the account exists", func() {
			It("returns its details", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Address).To(Equal(citizenAddr))
				Expect(details.Username).To(Equal("citizen"))
			})
		})

		When("the account does not exist", func() {
			BeforeEach(func() {
				address = newAddr
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})
	})

	Describe("IsUserVerified", func() {
		It("is true for a verified account", func() {
			verified, err := ledger.IsUserVerified(ctx, citizenAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(verified).To(BeTrue())
		})

		It("is false for an unregistered address", func() {
			verified, err := ledger.IsUserVerified(ctx, newAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(verified).To(BeFalse())
		})
	})

	Describe("IsDeployer", func() {
		It("is true only for the deployer identity", func() {
			isDeployer, err := ledger.IsDeployer(ctx, deployerAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(isDeployer).To(BeTrue())

			isDeployer, err = ledger.IsDeployer(ctx, authorityAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(isDeployer).To(BeFalse())
		})
	})
})
