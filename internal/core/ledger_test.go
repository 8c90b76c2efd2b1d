package core_test

import (
	"context"
	"errors"
	"landledger/internal/core"
	"landledger/internal/core/fake"
	"landledger/internal/repository"
	tokenIssuer "landledger/pkg/jwt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		ledger *core.Ledger

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		ledger = core.NewLedger(fakeLogger, fakeRepo, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg    core.AuthMessage
			token      string
			err        error
			address    string
			tokenInfo  tokenIssuer.TokenInfo
			hashedPass string
			genToken   *jwt.Token
		)

		BeforeEach(func() {
			address = common.HexToAddress("0x00000000000000000000000000000000000000a1").Hex()
			hashedPass = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS256)

			authMsg = core.AuthMessage{
				Address:    address,
				Passphrase: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   "alice",
				Subject:    address,
				Expiration: 24 * time.Hour,
			}
		})

		JustBeforeEach(func() {
			token, err = ledger.Authenticate(ctx, authMsg)
		})

		When("account exists and passphrase matches", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByAddressReturns(repository.Account{
					Address:        address,
					Username:       "alice",
					PassphraseHash: hashedPass,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetAccountByAddressCallCount()).To(Equal(1))
				_, argAddr := fakeRepo.GetAccountByAddressArgsForCall(0)
				Expect(argAddr).To(Equal(address))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("the address is given in lowercase", func() {
			BeforeEach(func() {
				authMsg.Address = "0x00000000000000000000000000000000000000a1"
				fakeRepo.GetAccountByAddressReturns(repository.Account{
					Address:        address,
					Username:       "alice",
					PassphraseHash: hashedPass,
				}, nil)
				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("looks up the checksummed form", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argAddr := fakeRepo.GetAccountByAddressArgsForCall(0)
				Expect(argAddr).To(Equal(address))
			})
		})

		When("account does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByAddressReturns(repository.Account{}, repository.ErrAccountNotFound)
			})

			It("should return account not found error", func() {
				Expect(err).To(MatchError(core.ErrAccountNotFound))
			})
		})

		When("passphrase does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByAddressReturns(repository.Account{
					Address:        address,
					PassphraseHash: hashedPass,
				}, nil)
				authMsg.Passphrase = "wrongpass"
			})

			It("should return incorrect passphrase error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassphrase))
			})
		})

		When("address is not a hex address", func() {
			BeforeEach(func() {
				authMsg.Address = "not-an-address"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeRepo.GetAccountByAddressCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAccountByAddressReturns(repository.Account{
					Address:        address,
					PassphraseHash: hashedPass,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Identify", func() {
		var (
			token   string
			subject string
			err     error
		)

		BeforeEach(func() {
			token = "valid.token"
		})

		JustBeforeEach(func() {
			subject, err = ledger.Identify(token)
		})

		When("token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "0xAbC"}, nil)
			})

			It("should return the subject address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(subject).To(Equal("0xAbC"))
				Expect(fakeJWT.ValidateCallCount()).To(Equal(1))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal(token))
			})
		})

		When("token validation fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"name": "alice"}, nil)
			})

			It("should return invalid token error", func() {
				Expect(err).To(MatchError(tokenIssuer.ErrInvalidToken))
			})
		})
	})
})
