package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"landledger/internal/db"
)

var ErrAccountNotFound error = errors.New("account not found")
var ErrLandNotFound error = errors.New("land record not found")
var ErrRequestNotFound error = errors.New("buy request not found")

// LedgerRepository is the persistence layer for accounts, land records and
// buy requests.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

func (r *LedgerRepository) Migrate() error {
	err := r.db.MigrateTable(
		&Account{},
		&LandRecord{},
		&PreviousOwner{},
		&BuyRequest{},
		&AccountVerification{},
		&LandVerification{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// EnsureDeployer seeds the deployer account if the address is not
// registered yet. The deployer is created verified, with its own address
// standing in for a national id.
func (r *LedgerRepository) EnsureDeployer(ctx context.Context, address string, designation int, passphraseHash string) error {
	var existing Account
	err := r.db.GetOneBy(ctx, "address", address, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("get deployer account: %w", err)
	}

	deployer := Account{
		Address:        address,
		Username:       "deployer",
		NationalID:     address,
		PassphraseHash: passphraseHash,
		Designation:    designation,
		IsVerified:     true,
		RegisteredAt:   time.Now().UTC(),
	}
	if err := r.db.CreateRecord(ctx, &deployer); err != nil {
		return fmt.Errorf("seed deployer account: %w", err)
	}

	return nil
}

func (r *LedgerRepository) GetAccountByAddress(ctx context.Context, address string) (Account, error) {
	var account Account
	err := r.db.GetOneBy(ctx, "address", address, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by address: %w", err)
	}

	return account, nil
}

func (r *LedgerRepository) GetAccountByNationalID(ctx context.Context, nationalID string) (Account, error) {
	var account Account
	err := r.db.GetOneBy(ctx, "national_id", nationalID, &account)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("get account by national id: %w", err)
	}

	return account, nil
}

func (r *LedgerRepository) CreateAccount(ctx context.Context, account Account) error {
	if err := r.db.CreateRecord(ctx, &account); err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *LedgerRepository) SetDesignation(ctx context.Context, address string, designation int) error {
	rows, err := r.db.UpdateColumns(ctx, &Account{},
		map[string]any{"designation": designation},
		"address = ?", address)
	if err != nil {
		return fmt.Errorf("set designation: %w", err)
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *LedgerRepository) SetAccountVerification(ctx context.Context, address string, verified bool) error {
	rows, err := r.db.UpdateColumns(ctx, &Account{},
		map[string]any{"is_verified": verified},
		"address = ?", address)
	if err != nil {
		return fmt.Errorf("set account verification: %w", err)
	}
	if rows == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// VerifyAccountByNationalID marks the account verified and drops its
// pending verification entry in one transaction.
func (r *LedgerRepository) VerifyAccountByNationalID(ctx context.Context, nationalID string) error {
	err := r.db.Transaction(ctx, func(tx db.Store) error {
		rows, err := tx.UpdateColumns(ctx, &Account{},
			map[string]any{"is_verified": true},
			"national_id = ?", nationalID)
		if err != nil {
			return fmt.Errorf("set account verified: %w", err)
		}
		if rows == 0 {
			return ErrAccountNotFound
		}

		if err := tx.DeleteWhere(ctx, &AccountVerification{}, "national_id = ?", nationalID); err != nil {
			return fmt.Errorf("remove pending verification: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("verify account: %w", err)
	}
	return nil
}

// EnqueueAccountVerification adds a pending entry for the national id.
// Returns false when an entry is already pending.
func (r *LedgerRepository) EnqueueAccountVerification(ctx context.Context, nationalID string) (bool, error) {
	var pending AccountVerification
	err := r.db.GetOneBy(ctx, "national_id", nationalID, &pending)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("get pending verification: %w", err)
	}

	if err := r.db.CreateRecord(ctx, &AccountVerification{NationalID: nationalID}); err != nil {
		return false, fmt.Errorf("enqueue account verification: %w", err)
	}
	return true, nil
}

func (r *LedgerRepository) PendingAccountVerifications(ctx context.Context) ([]string, error) {
	var pending []AccountVerification
	if err := r.db.GetAll(ctx, &pending); err != nil {
		return nil, fmt.Errorf("get pending account verifications: %w", err)
	}

	nationalIDs := make([]string, 0, len(pending))
	for _, entry := range pending {
		nationalIDs = append(nationalIDs, entry.NationalID)
	}
	return nationalIDs, nil
}

func (r *LedgerRepository) CreateLand(ctx context.Context, record *LandRecord) error {
	if err := r.db.CreateRecord(ctx, record); err != nil {
		return fmt.Errorf("create land record: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetLandByHashKey(ctx context.Context, hashKey string) (LandRecord, error) {
	var record LandRecord
	err := r.db.GetOneBy(ctx, "hash_key", hashKey, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return LandRecord{}, ErrLandNotFound
		}
		return LandRecord{}, fmt.Errorf("get land by hash key: %w", err)
	}
	return record, nil
}

func (r *LedgerRepository) GetLandByID(ctx context.Context, landID uint64) (LandRecord, error) {
	var record LandRecord
	err := r.db.GetOneBy(ctx, "land_id", landID, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return LandRecord{}, ErrLandNotFound
		}
		return LandRecord{}, fmt.Errorf("get land by id: %w", err)
	}
	return record, nil
}

// SetLandVerified marks the land verified and drops its pending
// verification entry in one transaction.
func (r *LedgerRepository) SetLandVerified(ctx context.Context, landID uint64) error {
	err := r.db.Transaction(ctx, func(tx db.Store) error {
		rows, err := tx.UpdateColumns(ctx, &LandRecord{},
			map[string]any{"is_verified": true},
			"land_id = ?", landID)
		if err != nil {
			return fmt.Errorf("set land verified: %w", err)
		}
		if rows == 0 {
			return ErrLandNotFound
		}

		if err := tx.DeleteWhere(ctx, &LandVerification{}, "land_id = ?", landID); err != nil {
			return fmt.Errorf("remove pending land verification: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrLandNotFound) {
			return ErrLandNotFound
		}
		return fmt.Errorf("verify land: %w", err)
	}
	return nil
}

func (r *LedgerRepository) SetLandForSale(ctx context.Context, landID uint64) error {
	rows, err := r.db.UpdateColumns(ctx, &LandRecord{},
		map[string]any{"is_for_sale": true},
		"land_id = ?", landID)
	if err != nil {
		return fmt.Errorf("set land for sale: %w", err)
	}
	if rows == 0 {
		return ErrLandNotFound
	}
	return nil
}

// EnqueueLandVerification adds a pending entry for the land. Returns false
// when an entry is already pending.
func (r *LedgerRepository) EnqueueLandVerification(ctx context.Context, landID uint64) (bool, error) {
	var pending LandVerification
	err := r.db.GetOneBy(ctx, "land_id", landID, &pending)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return false, fmt.Errorf("get pending land verification: %w", err)
	}

	if err := r.db.CreateRecord(ctx, &LandVerification{LandID: landID}); err != nil {
		return false, fmt.Errorf("enqueue land verification: %w", err)
	}
	return true, nil
}

func (r *LedgerRepository) PendingLandVerifications(ctx context.Context) ([]uint64, error) {
	var pending []LandVerification
	if err := r.db.GetAll(ctx, &pending); err != nil {
		return nil, fmt.Errorf("get pending land verifications: %w", err)
	}

	landIDs := make([]uint64, 0, len(pending))
	for _, entry := range pending {
		landIDs = append(landIDs, entry.LandID)
	}
	return landIDs, nil
}

func (r *LedgerRepository) LandsForSale(ctx context.Context) ([]LandRecord, error) {
	var records []LandRecord
	if err := r.db.GetAllBy(ctx, "is_for_sale", true, &records); err != nil {
		return nil, fmt.Errorf("get lands for sale: %w", err)
	}
	return records, nil
}

func (r *LedgerRepository) LandsByOwner(ctx context.Context, owner string) ([]LandRecord, error) {
	var records []LandRecord
	if err := r.db.GetAllBy(ctx, "owner", owner, &records); err != nil {
		return nil, fmt.Errorf("get lands by owner: %w", err)
	}
	return records, nil
}

func (r *LedgerRepository) AllLands(ctx context.Context) ([]LandRecord, error) {
	var records []LandRecord
	if err := r.db.GetAll(ctx, &records); err != nil {
		return nil, fmt.Errorf("get all lands: %w", err)
	}
	return records, nil
}

func (r *LedgerRepository) PreviousOwners(ctx context.Context, landID uint64) ([]string, error) {
	var entries []PreviousOwner
	if err := r.db.GetAllBy(ctx, "land_id", landID, &entries); err != nil {
		return nil, fmt.Errorf("get previous owners: %w", err)
	}

	owners := make([]string, 0, len(entries))
	for _, entry := range entries {
		owners = append(owners, entry.Owner)
	}
	return owners, nil
}

func (r *LedgerRepository) CreateBuyRequest(ctx context.Context, request *BuyRequest) error {
	if err := r.db.CreateRecord(ctx, request); err != nil {
		return fmt.Errorf("create buy request: %w", err)
	}
	return nil
}

func (r *LedgerRepository) GetBuyRequest(ctx context.Context, requestID uint64) (BuyRequest, error) {
	var request BuyRequest
	err := r.db.GetOneBy(ctx, "request_id", requestID, &request)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return BuyRequest{}, ErrRequestNotFound
		}
		return BuyRequest{}, fmt.Errorf("get buy request: %w", err)
	}
	return request, nil
}

// BuyerRequestWithStatus returns the buyer's request for the land whose
// status is in the given set. ErrRequestNotFound when there is none.
func (r *LedgerRepository) BuyerRequestWithStatus(ctx context.Context, landID uint64, buyer string, statuses []int) (BuyRequest, error) {
	var requests []BuyRequest
	err := r.db.GetAllWhere(ctx, &requests,
		"land_id = ? AND buyer = ? AND status IN ?", landID, buyer, statuses)
	if err != nil {
		return BuyRequest{}, fmt.Errorf("get buyer request: %w", err)
	}
	if len(requests) == 0 {
		return BuyRequest{}, ErrRequestNotFound
	}
	return requests[0], nil
}

func (r *LedgerRepository) LandRequestsWithStatus(ctx context.Context, landID uint64, statuses []int) ([]BuyRequest, error) {
	var requests []BuyRequest
	err := r.db.GetAllWhere(ctx, &requests,
		"land_id = ? AND status IN ?", landID, statuses)
	if err != nil {
		return nil, fmt.Errorf("get land requests: %w", err)
	}
	return requests, nil
}

func (r *LedgerRepository) RequestsWithStatus(ctx context.Context, statuses []int) ([]BuyRequest, error) {
	var requests []BuyRequest
	err := r.db.GetAllWhere(ctx, &requests, "status IN ?", statuses)
	if err != nil {
		return nil, fmt.Errorf("get requests by status: %w", err)
	}
	return requests, nil
}

func (r *LedgerRepository) RequestsByBuyer(ctx context.Context, buyer string) ([]BuyRequest, error) {
	var requests []BuyRequest
	if err := r.db.GetAllBy(ctx, "buyer", buyer, &requests); err != nil {
		return nil, fmt.Errorf("get requests by buyer: %w", err)
	}
	return requests, nil
}

func (r *LedgerRepository) RequestsBySeller(ctx context.Context, seller string) ([]BuyRequest, error) {
	var requests []BuyRequest
	if err := r.db.GetAllBy(ctx, "seller", seller, &requests); err != nil {
		return nil, fmt.Errorf("get requests by seller: %w", err)
	}
	return requests, nil
}

func (r *LedgerRepository) SetRequestStatus(ctx context.Context, requestID uint64, status int) error {
	rows, err := r.db.UpdateColumns(ctx, &BuyRequest{},
		map[string]any{"status": status},
		"request_id = ?", requestID)
	if err != nil {
		return fmt.Errorf("set request status: %w", err)
	}
	if rows == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *LedgerRepository) SetRequestsStatus(ctx context.Context, requestIDs []uint64, status int) error {
	if len(requestIDs) == 0 {
		return nil
	}
	_, err := r.db.UpdateColumns(ctx, &BuyRequest{},
		map[string]any{"status": status},
		"request_id IN ?", requestIDs)
	if err != nil {
		return fmt.Errorf("set requests status: %w", err)
	}
	return nil
}

// TransferArgs carries everything the ownership transfer commit needs.
type TransferArgs struct {
	RequestID        uint64
	LandID           uint64
	PreviousOwner    string
	NewOwner         string
	CompletedStatus  int
	RejectedStatus   int
	RejectRequestIDs []uint64
}

// TransferOwnership applies the full ownership transfer in a single
// database transaction: history append, owner swap, sale flag reset,
// request completion and sibling rejection. Either all of it commits or
// none of it does.
func (r *LedgerRepository) TransferOwnership(ctx context.Context, args TransferArgs) error {
	err := r.db.Transaction(ctx, func(tx db.Store) error {
		entry := PreviousOwner{
			LandID: args.LandID,
			Owner:  args.PreviousOwner,
		}
		if err := tx.CreateRecord(ctx, &entry); err != nil {
			return fmt.Errorf("append previous owner: %w", err)
		}

		rows, err := tx.UpdateColumns(ctx, &LandRecord{},
			map[string]any{"owner": args.NewOwner, "is_for_sale": false},
			"land_id = ?", args.LandID)
		if err != nil {
			return fmt.Errorf("update land owner: %w", err)
		}
		if rows == 0 {
			return ErrLandNotFound
		}

		rows, err = tx.UpdateColumns(ctx, &BuyRequest{},
			map[string]any{"status": args.CompletedStatus},
			"request_id = ?", args.RequestID)
		if err != nil {
			return fmt.Errorf("complete buy request: %w", err)
		}
		if rows == 0 {
			return ErrRequestNotFound
		}

		if len(args.RejectRequestIDs) > 0 {
			_, err = tx.UpdateColumns(ctx, &BuyRequest{},
				map[string]any{"status": args.RejectedStatus},
				"request_id IN ?", args.RejectRequestIDs)
			if err != nil {
				return fmt.Errorf("reject sibling requests: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrLandNotFound) || errors.Is(err, ErrRequestNotFound) {
			return err
		}
		return fmt.Errorf("transfer ownership: %w", err)
	}
	return nil
}
