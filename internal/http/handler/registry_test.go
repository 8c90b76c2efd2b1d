package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"landledger/internal/core"
	"landledger/internal/http/handler"
	"landledger/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("RegistryHandler", func() {
	var (
		rh            *handler.RegistryHandler
		fakeRegistry  *fake.RegistryService
		fakeValidator *fake.RequestValidator
		fakeVerifier  *fake.TokenVerifier
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		callerAddr    string
		fakeErr       error
	)

	BeforeEach(func() {
		callerAddr = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeRegistry = new(fake.RegistryService)
		fakeValidator = new(fake.RequestValidator)
		fakeVerifier = new(fake.TokenVerifier)
		fakeVerifier.IdentifyReturns(callerAddr, nil)

		w = httptest.NewRecorder()
		rh = handler.NewRegistryHandler(fakeLogger, fakeValidator, fakeVerifier, fakeRegistry, time.Second)
	})

	Describe("HandleAuthenticate", func() {
		var testToken string

		BeforeEach(func() {
			testToken = "test-token"
			fakeRegistry.AuthenticateReturns(testToken, nil)

			body := strings.NewReader(`{"address":"0x8ba1f109551bD432803012645Ac136ddd64DBA72","passphrase":"secret-pass"}`)
			req = httptest.NewRequest("POST", "/auth/login", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			rh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["token"]).To(Equal(testToken))

				Expect(fakeRegistry.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeRegistry.AuthenticateArgsForCall(0)
				Expect(msg.Address).To(Equal(callerAddr))
				Expect(msg.Passphrase).To(Equal("secret-pass"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeRegistry.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the passphrase is wrong", func() {
			BeforeEach(func() {
				fakeRegistry.AuthenticateReturns("", core.ErrIncorrectPassphrase)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrIncorrectPassphrase.Error()))
			})
		})

		When("the account doesn't exist", func() {
			BeforeEach(func() {
				fakeRegistry.AuthenticateReturns("", core.ErrAccountNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRegistry.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 and hide the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleRegisterAccount", func() {
		var account core.AccountDetails

		BeforeEach(func() {
			account = core.AccountDetails{
				Address:     callerAddr,
				Username:    "alice",
				NationalID:  "IN-001",
				Designation: core.DesignationNone,
			}
			fakeRegistry.RegisterAccountReturns(account, nil)

			body := strings.NewReader(`{"address":"0x8ba1f109551bD432803012645Ac136ddd64DBA72","username":"alice","nationalId":"IN-001","passphrase":"secret-pass"}`)
			req = httptest.NewRequest("POST", "/registry/accounts", body)
			req.Header.Set("Content-Type", "application/json")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			rh.HandleRegisterAccount(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with the account details", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("Account registered"))
				Expect(w.Body.String()).To(ContainSubstring(callerAddr))

				Expect(fakeRegistry.RegisterAccountCallCount()).To(Equal(1))
				_, msg := fakeRegistry.RegisterAccountArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
				Expect(msg.NationalID).To(Equal("IN-001"))
			})
		})

		When("the address is already registered", func() {
			BeforeEach(func() {
				fakeRegistry.RegisterAccountReturns(core.AccountDetails{}, core.ErrAlreadyRegistered)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrAlreadyRegistered.Error()))
			})
		})

		When("the national id is taken", func() {
			BeforeEach(func() {
				fakeRegistry.RegisterAccountReturns(core.AccountDetails{}, core.ErrDuplicateNationalID)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleAddInspector", func() {
		BeforeEach(func() {
			fakeRegistry.AddLandInspectorReturns(core.AccountDetails{
				Address:     "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
				Designation: core.DesignationLandInspector,
				IsVerified:  true,
			}, nil)

			body := strings.NewReader(`{"address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","username":"inspector","nationalId":"IN-002","passphrase":"secret-pass"}`)
			req = httptest.NewRequest("POST", "/registry/inspectors", body)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			rh.HandleAddInspector(w, req)
		})

		When("the caller is authorized", func() {
			It("should return 201 with the official account", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("Official account created"))

				Expect(fakeVerifier.IdentifyCallCount()).To(Equal(1))
				Expect(fakeVerifier.IdentifyArgsForCall(0)).To(Equal("test-token"))

				Expect(fakeRegistry.AddLandInspectorCallCount()).To(Equal(1))
				_, caller, msg := fakeRegistry.AddLandInspectorArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(msg.Username).To(Equal("inspector"))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("authorization token is required"))
				Expect(fakeRegistry.AddLandInspectorCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeVerifier.IdentifyReturns("", fakeErr)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeRegistry.AddLandInspectorCallCount()).To(Equal(0))
			})
		})

		When("the caller lacks the required role", func() {
			BeforeEach(func() {
				fakeRegistry.AddLandInspectorReturns(core.AccountDetails{}, core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleGrantInspector", func() {
		var target string

		BeforeEach(func() {
			target = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
			fakeRegistry.GrantLandInspectorStatusReturns(nil)

			req = httptest.NewRequest("POST", "/registry/inspectors/"+target+"/grant", nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("address", target)
		})

		JustBeforeEach(func() {
			rh.HandleGrantInspector(w, req)
		})

		When("the grant succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("land inspector status granted"))

				Expect(fakeRegistry.GrantLandInspectorStatusCallCount()).To(Equal(1))
				_, caller, argTarget := fakeRegistry.GrantLandInspectorStatusArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(argTarget).To(Equal(target))
			})
		})

		When("the address parameter is not a hex address", func() {
			BeforeEach(func() {
				req.SetPathValue("address", "not-an-address")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("must be a valid hex address"))
				Expect(fakeRegistry.GrantLandInspectorStatusCallCount()).To(Equal(0))
			})
		})

		When("the target is the deployer", func() {
			BeforeEach(func() {
				fakeRegistry.GrantLandInspectorStatusReturns(core.ErrCannotModifyDeployer)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the target account doesn't exist", func() {
			BeforeEach(func() {
				fakeRegistry.GrantLandInspectorStatusReturns(core.ErrAccountNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleRemoveAuthority", func() {
		var target string

		BeforeEach(func() {
			target = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
			fakeRegistry.RemoveSecondLevelAuthorityReturns(nil)

			req = httptest.NewRequest("DELETE", "/registry/authorities/"+target, nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("address", target)
		})

		JustBeforeEach(func() {
			rh.HandleRemoveAuthority(w, req)
		})

		When("the removal succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("second level authority removed"))
				Expect(fakeRegistry.RemoveSecondLevelAuthorityCallCount()).To(Equal(1))
			})
		})

		When("the caller is not the deployer", func() {
			BeforeEach(func() {
				fakeRegistry.RemoveSecondLevelAuthorityReturns(core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleVerifyAccount", func() {
		BeforeEach(func() {
			fakeRegistry.VerifyAccountReturns(nil)

			req = httptest.NewRequest("POST", "/registry/accounts/IN-001/verify", nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("nationalId", "IN-001")
		})

		JustBeforeEach(func() {
			rh.HandleVerifyAccount(w, req)
		})

		When("verification succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Account verified"))

				Expect(fakeRegistry.VerifyAccountCallCount()).To(Equal(1))
				_, caller, nationalID := fakeRegistry.VerifyAccountArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(nationalID).To(Equal("IN-001"))
			})
		})

		When("the nationalId parameter is empty", func() {
			BeforeEach(func() {
				req.SetPathValue("nationalId", "")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeRegistry.VerifyAccountCallCount()).To(Equal(0))
			})
		})

		When("no account matches the national id", func() {
			BeforeEach(func() {
				fakeRegistry.VerifyAccountReturns(core.ErrAccountNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleRequestVerification", func() {
		BeforeEach(func() {
			fakeRegistry.RequestAccountVerificationReturns(core.VerificationRequested, nil)

			body := strings.NewReader(`{"nationalId":"IN-001"}`)
			req = httptest.NewRequest("POST", "/registry/verification-requests", body)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			rh.HandleRequestVerification(w, req)
		})

		When("the request is enqueued", func() {
			It("should return 200 with the outcome", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(string(core.VerificationRequested)))

				Expect(fakeRegistry.RequestAccountVerificationCallCount()).To(Equal(1))
				_, caller, nationalID := fakeRegistry.RequestAccountVerificationArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(nationalID).To(Equal("IN-001"))
			})
		})

		When("a request is already pending", func() {
			BeforeEach(func() {
				fakeRegistry.RequestAccountVerificationReturns(core.VerificationAlreadyRequested, nil)
			})

			It("should still return 200 with the outcome", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(string(core.VerificationAlreadyRequested)))
			})
		})
	})

	Describe("HandlePendingVerifications", func() {
		BeforeEach(func() {
			fakeRegistry.PendingAccountVerificationsReturns([]string{"IN-001", "IN-002"}, nil)

			req = httptest.NewRequest("GET", "/registry/verification-requests", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			rh.HandlePendingVerifications(w, req)
		})

		When("listing succeeds", func() {
			It("should return the pending national ids", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["pending"]).To(Equal([]string{"IN-001", "IN-002"}))
			})
		})

		When("the caller is not an authority", func() {
			BeforeEach(func() {
				fakeRegistry.PendingAccountVerificationsReturns(nil, core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleGetAccount", func() {
		BeforeEach(func() {
			fakeRegistry.GetUserDetailsByAddressReturns(core.AccountDetails{
				Address:  callerAddr,
				Username: "alice",
			}, nil)

			req = httptest.NewRequest("GET", "/registry/accounts/"+callerAddr, nil)
			req.SetPathValue("address", callerAddr)
		})

		JustBeforeEach(func() {
			rh.HandleGetAccount(w, req)
		})

		When("the account exists", func() {
			It("should return the account details", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("alice"))

				Expect(fakeRegistry.GetUserDetailsByAddressCallCount()).To(Equal(1))
				_, address := fakeRegistry.GetUserDetailsByAddressArgsForCall(0)
				Expect(address).To(Equal(callerAddr))
			})
		})

		When("the address parameter is not a hex address", func() {
			BeforeEach(func() {
				req.SetPathValue("address", "bogus")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeRegistry.GetUserDetailsByAddressCallCount()).To(Equal(0))
			})
		})

		When("the account doesn't exist", func() {
			BeforeEach(func() {
				fakeRegistry.GetUserDetailsByAddressReturns(core.AccountDetails{}, core.ErrAccountNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
