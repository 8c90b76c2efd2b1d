package core_test

import (
	"context"
	"sync"

	"landledger/internal/core"
	"landledger/internal/core/fake"
	"landledger/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Ownership lifecycle", func() {
	var (
		repo   *memRepository
		ledger *core.Ledger
		ctx    context.Context

		deployerAddr  string
		inspectorAddr string
		sellerAddr    string
		buyerAddr     string

		identifier core.LandIdentifier
	)

	BeforeEach(func() {
		ctx = context.Background()

		deployerAddr = common.HexToAddress("0xd00000000000000000000000000000000000000d").Hex()
		inspectorAddr = common.HexToAddress("0x8ba1f109551bd432803012645ac136ddd64dba72").Hex()
		sellerAddr = common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed").Hex()
		buyerAddr = common.HexToAddress("0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359").Hex()

		identifier = core.LandIdentifier{
			State:        "Maharashtra",
			Division:     "Konkan",
			District:     "Thane",
			Taluka:       "Kalyan",
			Village:      "Titwala",
			SurveyNumber: "142",
			Subdivision:  "3A",
		}

		repo = newMemRepository()
		repo.seedAccount(repository.Account{
			Address:     deployerAddr,
			Username:    "deployer",
			NationalID:  deployerAddr,
			Designation: int(core.DesignationDeployer),
			IsVerified:  true,
		})

		ledger = core.NewLedger(zap.NewNop().Sugar(), repo, new(fake.JWTIssuer))
	})

	// registerVerified registers a participant and walks it through the
	// account verification queue.
	registerVerified := func(address, username, nationalID string) {
		_, err := ledger.RegisterAccount(ctx, core.RegisterAccountMessage{
			Address:    address,
			Username:   username,
			NationalID: nationalID,
			Passphrase: "s3cret-" + username,
		})
		Expect(err).NotTo(HaveOccurred())

		outcome, err := ledger.RequestAccountVerification(ctx, address, nationalID)
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(core.VerificationRequested))

		Expect(ledger.VerifyAccount(ctx, deployerAddr, nationalID)).To(Succeed())
	}

	// sellListing drives a fresh parcel owned by the seller all the way to
	// a paid buy request and returns the land and request ids.
	sellListing := func() (uint64, uint64) {
		added, err := ledger.AddLandRecord(ctx, sellerAddr, core.AddLandMessage{
			Identifier:    identifier,
			Area:          1200,
			PurchaseDate:  1577836800,
			PurchasePrice: 500000,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(added.Outcome).To(Equal(core.LandRecordAdded))
		landID := added.LandID

		outcome, err := ledger.LandVerificationRequest(ctx, sellerAddr, landID)
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(core.VerificationRequested))

		pending, err := ledger.PendingLandVerifications(ctx, inspectorAddr)
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(ConsistOf(landID))

		Expect(ledger.VerifyLand(ctx, inspectorAddr, landID)).To(Succeed())
		Expect(ledger.ListLandForSale(ctx, sellerAddr, landID)).To(Succeed())

		request, err := ledger.RequestForBuy(ctx, buyerAddr, landID)
		Expect(err).NotTo(HaveOccurred())
		Expect(request.Seller).To(Equal(sellerAddr))

		accepted, err := ledger.AcceptRequest(ctx, sellerAddr, request.RequestID)
		Expect(err).NotTo(HaveOccurred())
		Expect(accepted.RejectedSiblings).To(BeEmpty())

		Expect(ledger.MarkPaymentAsDone(ctx, sellerAddr, request.RequestID)).To(Succeed())
		return landID, request.RequestID
	}

	JustBeforeEach(func() {
		registerVerified(sellerAddr, "arati", "IN-SELLER-01")
		registerVerified(buyerAddr, "bhavesh", "IN-BUYER-01")

		_, err := ledger.AddLandInspector(ctx, deployerAddr, core.AddOfficialMessage{
			Address:    inspectorAddr,
			Username:   "inspector",
			NationalID: "IN-INSPECTOR-01",
			Passphrase: "inspect-me",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	When("a parcel is sold from one verified participant to another", func() {
		It("moves the record through the full lifecycle and hands it to the buyer", func() {
			landID, requestID := sellListing()

			Expect(ledger.GetLandIDForRequest(ctx, requestID)).To(Equal(landID))
			Expect(ledger.GetBuyerAddressForRequest(ctx, requestID)).To(Equal(buyerAddr))

			raised, err := ledger.GetRequestForLandID(ctx, landID)
			Expect(err).NotTo(HaveOccurred())
			Expect(raised).To(HaveLen(1))
			Expect(raised[0].Status).To(Equal(core.StatusPaymentDone))

			pending, err := ledger.PendingTransferRequests(ctx, inspectorAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].RequestID).To(Equal(requestID))

			result, err := ledger.TransferLandOwnership(ctx, inspectorAddr, requestID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.PreviousOwner).To(Equal(sellerAddr))
			Expect(result.NewOwner).To(Equal(buyerAddr))

			record, err := ledger.GetLandRecord(ctx, landID)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Owner).To(Equal(buyerAddr))
			Expect(record.IsForSale).To(BeFalse())
			Expect(record.IsVerified).To(BeTrue())

			Expect(ledger.GetPreviousOwners(ctx, landID)).To(Equal([]string{sellerAddr}))

			status, err := ledger.GetLandRequestStatus(ctx, requestID, buyerAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(Equal(core.StatusCompleted))

			buyerLands, err := ledger.GetMyLands(ctx, buyerAddr)
			Expect(err).NotTo(HaveOccurred())
			Expect(buyerLands).To(HaveLen(1))
			Expect(ledger.GetMyLands(ctx, sellerAddr)).To(BeEmpty())
		})
	})

	When("a relist by the seller races the ownership transfer", func() {
		It("serializes both writers on the parcel and leaves the sold land delisted", func() {
			landID, requestID := sellListing()

			entered := make(chan struct{})
			release := make(chan struct{})
			var once sync.Once
			repo.setLandReadHook(func(uint64) {
				once.Do(func() {
					close(entered)
					<-release
				})
			})

			listDone := make(chan error, 1)
			go func() {
				listDone <- ledger.ListLandForSale(ctx, sellerAddr, landID)
			}()
			Eventually(entered).Should(BeClosed())

			transferDone := make(chan error, 1)
			go func() {
				_, err := ledger.TransferLandOwnership(ctx, inspectorAddr, requestID)
				transferDone <- err
			}()
			Consistently(transferDone, "200ms").ShouldNot(Receive())

			close(release)
			Eventually(listDone).Should(Receive(BeNil()))
			Eventually(transferDone).Should(Receive(BeNil()))

			record, err := ledger.GetLandRecord(ctx, landID)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Owner).To(Equal(buyerAddr))
			Expect(record.IsForSale).To(BeFalse())

			// the old owner can no longer flip the sale flag back on
			Expect(ledger.ListLandForSale(ctx, sellerAddr, landID)).To(MatchError(core.ErrUnauthorized))
			record, err = ledger.GetLandRecord(ctx, landID)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.IsForSale).To(BeFalse())
		})
	})
})
