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

var _ = Describe("LandHandler", func() {
	var (
		lh            *handler.LandHandler
		fakeLands     *fake.LandService
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
		fakeLands = new(fake.LandService)
		fakeValidator = new(fake.RequestValidator)
		fakeVerifier = new(fake.TokenVerifier)
		fakeVerifier.IdentifyReturns(callerAddr, nil)

		w = httptest.NewRecorder()
		lh = handler.NewLandHandler(fakeLogger, fakeValidator, fakeVerifier, fakeLands, time.Second)
	})

	Describe("HandleAddLand", func() {
		BeforeEach(func() {
			fakeLands.AddLandRecordReturns(core.AddLandResult{
				Outcome: core.LandRecordAdded,
				LandID:  7,
			}, nil)

			body := strings.NewReader(`{"state":"Maharashtra","division":"Konkan","district":"Raigad","taluka":"Panvel","village":"Chirner","surveyNumber":"101","subdivision":"2A","area":1200,"purchaseDate":1712000000,"purchasePrice":500000,"landValueAtPurchase":550000}`)
			req = httptest.NewRequest("POST", "/lands", body)
			req.Header.Set("Authorization", "Bearer test-token")

			fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
				return json.NewDecoder(rec.Body).Decode(jsonPayload)
			}
		})

		JustBeforeEach(func() {
			lh.HandleAddLand(w, req)
		})

		When("a new record is added", func() {
			It("should return 201 with the outcome", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring(string(core.LandRecordAdded)))

				Expect(fakeLands.AddLandRecordCallCount()).To(Equal(1))
				_, owner, msg := fakeLands.AddLandRecordArgsForCall(0)
				Expect(owner).To(Equal(callerAddr))
				Expect(msg.Identifier.Village).To(Equal("Chirner"))
				Expect(msg.Area).To(Equal(uint64(1200)))
			})
		})

		When("the record already exists", func() {
			BeforeEach(func() {
				fakeLands.AddLandRecordReturns(core.AddLandResult{
					Outcome: core.LandRecordExists,
					LandID:  3,
				}, nil)
			})

			It("should return 200 with the existing land id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(string(core.LandRecordExists)))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeLands.AddLandRecordCallCount()).To(Equal(0))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLands.AddLandRecordCallCount()).To(Equal(0))
			})
		})

		When("the caller is not verified", func() {
			BeforeEach(func() {
				fakeLands.AddLandRecordReturns(core.AddLandResult{}, core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleGetAllLands", func() {
		BeforeEach(func() {
			fakeLands.AllLandsReturns([]core.LandDetails{
				{LandID: 1, Owner: callerAddr},
				{LandID: 2, Owner: callerAddr},
			}, nil)

			req = httptest.NewRequest("GET", "/lands", nil)
		})

		JustBeforeEach(func() {
			lh.HandleGetAllLands(w, req)
		})

		When("listing succeeds", func() {
			It("should return all land records", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]core.LandDetails
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["lands"]).To(HaveLen(2))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeLands.AllLandsReturns(nil, fakeErr)
			})

			It("should return 500 and hide the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandleGetLand", func() {
		BeforeEach(func() {
			fakeLands.GetLandRecordReturns(core.LandDetails{LandID: 7, Owner: callerAddr}, nil)

			req = httptest.NewRequest("GET", "/lands/7", nil)
			req.SetPathValue("landId", "7")
		})

		JustBeforeEach(func() {
			lh.HandleGetLand(w, req)
		})

		When("the land exists", func() {
			It("should return the land record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Land record found"))

				Expect(fakeLands.GetLandRecordCallCount()).To(Equal(1))
				_, landID := fakeLands.GetLandRecordArgsForCall(0)
				Expect(landID).To(Equal(uint64(7)))
			})
		})

		When("the landId parameter is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("landId", "abc")
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("landId path parameter must be a positive integer"))
				Expect(fakeLands.GetLandRecordCallCount()).To(Equal(0))
			})
		})

		When("the land doesn't exist", func() {
			BeforeEach(func() {
				fakeLands.GetLandRecordReturns(core.LandDetails{}, core.ErrLandNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetLandID", func() {
		BeforeEach(func() {
			fakeLands.GetLandIDReturns(7, nil)

			req = httptest.NewRequest("GET", "/lands/id?state=Maharashtra&division=Konkan&district=Raigad&taluka=Panvel&village=Chirner&surveyNumber=101&subdivision=2A", nil)
		})

		JustBeforeEach(func() {
			lh.HandleGetLandID(w, req)
		})

		When("the identifier resolves", func() {
			It("should return the land id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]uint64
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["landId"]).To(Equal(uint64(7)))

				Expect(fakeLands.GetLandIDCallCount()).To(Equal(1))
				_, identifier := fakeLands.GetLandIDArgsForCall(0)
				Expect(identifier.State).To(Equal("Maharashtra"))
				Expect(identifier.SurveyNumber).To(Equal("101"))
			})
		})

		When("query parameters are missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/lands/id?state=Maharashtra", nil)
			})

			It("should return 400 Bad Request", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLands.GetLandIDCallCount()).To(Equal(0))
			})
		})

		When("no record matches the identifier", func() {
			BeforeEach(func() {
				fakeLands.GetLandIDReturns(0, nil)
			})

			It("should return zero as the land id", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string]uint64
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["landId"]).To(Equal(uint64(0)))
			})
		})
	})

	Describe("HandleGetMyLands", func() {
		BeforeEach(func() {
			fakeLands.GetMyLandsReturns([]core.LandDetails{{LandID: 1, Owner: callerAddr}}, nil)

			req = httptest.NewRequest("GET", "/lands/my", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			lh.HandleGetMyLands(w, req)
		})

		When("the caller owns lands", func() {
			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]core.LandDetails
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["lands"]).To(HaveLen(1))

				Expect(fakeLands.GetMyLandsCallCount()).To(Equal(1))
				_, owner := fakeLands.GetMyLandsArgsForCall(0)
				Expect(owner).To(Equal(callerAddr))
			})
		})

		When("no auth token is provided", func() {
			BeforeEach(func() {
				req.Header.Del("Authorization")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeLands.GetMyLandsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleRequestLandVerification", func() {
		BeforeEach(func() {
			fakeLands.LandVerificationRequestReturns(core.VerificationRequested, nil)

			req = httptest.NewRequest("POST", "/lands/7/verification-request", nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("landId", "7")
		})

		JustBeforeEach(func() {
			lh.HandleRequestLandVerification(w, req)
		})

		When("the request is enqueued", func() {
			It("should return 200 with the outcome", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(string(core.VerificationRequested)))

				Expect(fakeLands.LandVerificationRequestCallCount()).To(Equal(1))
				_, caller, landID := fakeLands.LandVerificationRequestArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(landID).To(Equal(uint64(7)))
			})
		})

		When("the caller is not the owner", func() {
			BeforeEach(func() {
				fakeLands.LandVerificationRequestReturns("", core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Describe("HandleVerifyLand", func() {
		BeforeEach(func() {
			fakeLands.VerifyLandReturns(nil)

			req = httptest.NewRequest("POST", "/lands/7/verify", nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("landId", "7")
		})

		JustBeforeEach(func() {
			lh.HandleVerifyLand(w, req)
		})

		When("verification succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Land verified"))

				Expect(fakeLands.VerifyLandCallCount()).To(Equal(1))
				_, caller, landID := fakeLands.VerifyLandArgsForCall(0)
				Expect(caller).To(Equal(callerAddr))
				Expect(landID).To(Equal(uint64(7)))
			})
		})

		When("the caller is not an inspector", func() {
			BeforeEach(func() {
				fakeLands.VerifyLandReturns(core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the land doesn't exist", func() {
			BeforeEach(func() {
				fakeLands.VerifyLandReturns(core.ErrLandNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleListForSale", func() {
		BeforeEach(func() {
			fakeLands.ListLandForSaleReturns(nil)

			req = httptest.NewRequest("POST", "/lands/7/sale", nil)
			req.Header.Set("Authorization", "Bearer test-token")
			req.SetPathValue("landId", "7")
		})

		JustBeforeEach(func() {
			lh.HandleListForSale(w, req)
		})

		When("the listing succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Land listed for sale"))
			})
		})

		When("the land is not verified", func() {
			BeforeEach(func() {
				fakeLands.ListLandForSaleReturns(core.ErrNotVerified)
			})

			It("should return 409 Conflict", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrNotVerified.Error()))
			})
		})
	})

	Describe("HandleGetPreviousOwners", func() {
		BeforeEach(func() {
			fakeLands.GetPreviousOwnersReturns([]string{"0x1", "0x2"}, nil)

			req = httptest.NewRequest("GET", "/lands/7/previous-owners", nil)
			req.SetPathValue("landId", "7")
		})

		JustBeforeEach(func() {
			lh.HandleGetPreviousOwners(w, req)
		})

		When("the land has history", func() {
			It("should return the previous owners in order", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]string
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["previousOwners"]).To(Equal([]string{"0x1", "0x2"}))
			})
		})

		When("the land doesn't exist", func() {
			BeforeEach(func() {
				fakeLands.GetPreviousOwnersReturns(nil, core.ErrLandNotFound)
			})

			It("should return 404 Not Found", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandlePendingLandVerifications", func() {
		BeforeEach(func() {
			fakeLands.PendingLandVerificationsReturns([]uint64{3, 7}, nil)

			req = httptest.NewRequest("GET", "/lands/verification-requests", nil)
			req.Header.Set("Authorization", "Bearer test-token")
		})

		JustBeforeEach(func() {
			lh.HandlePendingLandVerifications(w, req)
		})

		When("listing succeeds", func() {
			It("should return the pending land ids", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var response map[string][]uint64
				Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
				Expect(response["pending"]).To(Equal([]uint64{3, 7}))
			})
		})

		When("the caller is not an inspector", func() {
			BeforeEach(func() {
				fakeLands.PendingLandVerificationsReturns(nil, core.ErrUnauthorized)
			})

			It("should return 403 Forbidden", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})
	})
})
