package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Designation is the role tag on an account.
type Designation int

const (
	DesignationNone Designation = iota
	DesignationLandInspector
	DesignationSecondLevelAuthority
	DesignationDeployer
)

// MarshalJSON renders the designation by name.
func (d Designation) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d Designation) String() string {
	switch d {
	case DesignationLandInspector:
		return "LandInspector"
	case DesignationSecondLevelAuthority:
		return "SecondLevelAuthority"
	case DesignationDeployer:
		return "Deployer"
	default:
		return "None"
	}
}

// RequestStatus is the lifecycle state of a buy request.
type RequestStatus int

const (
	StatusRequested RequestStatus = iota
	StatusAccepted
	StatusRejected
	StatusPaymentDone
	StatusCompleted
)

// MarshalJSON renders the status by name.
func (s RequestStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s RequestStatus) String() string {
	switch s {
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusPaymentDone:
		return "PaymentDone"
	case StatusCompleted:
		return "Completed"
	default:
		return "Requested"
	}
}

// activeStatuses are the request states that block a second request from
// the same buyer for the same land.
var activeStatuses = []int{
	int(StatusRequested),
	int(StatusAccepted),
	int(StatusPaymentDone),
}

// LandIdentifier is the composite key of a parcel.
type LandIdentifier struct {
	State        string `json:"state"`
	Division     string `json:"division"`
	District     string `json:"district"`
	Taluka       string `json:"taluka"`
	Village      string `json:"village"`
	SurveyNumber string `json:"surveyNumber"`
	Subdivision  string `json:"subdivision"`
}

// HashKey derives the parcel's uniqueness key: the 0x-prefixed Keccak-256
// digest of the identifier fields joined with a unit separator. Two
// identical identifiers always collide on this key.
func (id LandIdentifier) HashKey() string {
	canonical := strings.Join([]string{
		id.State,
		id.Division,
		id.District,
		id.Taluka,
		id.Village,
		id.SurveyNumber,
		id.Subdivision,
	}, "\x1f")

	return hexutil.Encode(crypto.Keccak256([]byte(canonical)))
}

// AuthMessage is a login attempt.
type AuthMessage struct {
	Address    string
	Passphrase string
}

// RegisterAccountMessage carries a self-registration.
type RegisterAccountMessage struct {
	Address    string
	Username   string
	NationalID string
	Passphrase string
}

// AddOfficialMessage carries an admin-created inspector or authority
// account.
type AddOfficialMessage struct {
	Address    string
	Username   string
	NationalID string
	Passphrase string
}

// AddLandMessage carries a land registration.
type AddLandMessage struct {
	Identifier          LandIdentifier
	Area                uint64
	PurchaseDate        int64
	PurchasePrice       uint64
	LandValueAtPurchase uint64
}

// AccountDetails is the read view of an account.
type AccountDetails struct {
	Address      string      `json:"address"`
	Username     string      `json:"username"`
	NationalID   string      `json:"nationalId"`
	Designation  Designation `json:"designation"`
	IsVerified   bool        `json:"isVerified"`
	RegisteredAt time.Time   `json:"registeredAt"`
}

// LandDetails is the read view of a land record.
type LandDetails struct {
	LandID              uint64         `json:"landId"`
	Identifier          LandIdentifier `json:"identifier"`
	Owner               string         `json:"owner"`
	Area                uint64         `json:"area"`
	PurchaseDate        int64          `json:"purchaseDate"`
	PurchasePrice       uint64         `json:"purchasePrice"`
	LandValueAtPurchase uint64         `json:"landValueAtPurchase"`
	IsVerified          bool           `json:"isVerified"`
	IsForSale           bool           `json:"isForSale"`
}

// BuyRequestDetails is the read view of a buy request.
type BuyRequestDetails struct {
	RequestID uint64        `json:"requestId"`
	LandID    uint64        `json:"landId"`
	Buyer     string        `json:"buyer"`
	Seller    string        `json:"seller"`
	Status    RequestStatus `json:"status"`
}

// AddLandOutcome distinguishes the two recognized results of a land
// registration. The names follow the events the operation reports.
type AddLandOutcome string

const (
	LandRecordAdded  AddLandOutcome = "LandRecordAdded"
	LandRecordExists AddLandOutcome = "LandRecordExists"
)

// AddLandResult is the tagged result of AddLandRecord. A duplicate
// identifier is a recognized outcome, not an error.
type AddLandResult struct {
	Outcome AddLandOutcome `json:"outcome"`
	LandID  uint64         `json:"landId"`
}

// VerificationOutcome distinguishes the recognized results of a
// verification request, for accounts and lands alike.
type VerificationOutcome string

const (
	VerificationRequested        VerificationOutcome = "VerificationRequested"
	VerificationAlreadyRequested VerificationOutcome = "AlreadyRequested"
	VerificationAlreadyDone      VerificationOutcome = "AlreadyVerified"
)

// AcceptResult reports an accepted request along with the sibling
// requests that were auto-rejected with it.
type AcceptResult struct {
	RequestID        uint64   `json:"requestId"`
	LandID           uint64   `json:"landId"`
	RejectedSiblings []uint64 `json:"rejectedSiblings"`
}

// TransferResult reports a completed ownership transfer.
type TransferResult struct {
	RequestID     uint64 `json:"requestId"`
	LandID        uint64 `json:"landId"`
	PreviousOwner string `json:"previousOwner"`
	NewOwner      string `json:"newOwner"`
}
