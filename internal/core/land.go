package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
	"strconv"
)

// AddLandRecord registers a parcel for the caller. Registering an
// identifier that already exists is a recognized outcome reported as
// LandRecordExists with the existing id; it never overwrites the record.
func (l *Ledger) AddLandRecord(ctx context.Context, caller string, msg AddLandMessage) (AddLandResult, error) {
	account, err := l.auth.requireVerified(ctx, caller)
	if err != nil {
		return AddLandResult{}, err
	}

	hashKey := msg.Identifier.HashKey()

	l.locks.Lock(registerKey(hashKey))
	defer l.locks.Unlock(registerKey(hashKey))

	existing, err := l.repo.GetLandByHashKey(ctx, hashKey)
	if err == nil {
		return AddLandResult{Outcome: LandRecordExists, LandID: existing.LandID}, nil
	}
	if !errors.Is(err, repository.ErrLandNotFound) {
		return AddLandResult{}, fmt.Errorf("get land by hash key: %w", err)
	}

	record := repository.LandRecord{
		HashKey:             hashKey,
		State:               msg.Identifier.State,
		Division:            msg.Identifier.Division,
		District:            msg.Identifier.District,
		Taluka:              msg.Identifier.Taluka,
		Village:             msg.Identifier.Village,
		SurveyNumber:        msg.Identifier.SurveyNumber,
		Subdivision:         msg.Identifier.Subdivision,
		Owner:               account.Address,
		Area:                msg.Area,
		PurchaseDate:        msg.PurchaseDate,
		PurchasePrice:       msg.PurchasePrice,
		LandValueAtPurchase: msg.LandValueAtPurchase,
	}
	if err := l.repo.CreateLand(ctx, &record); err != nil {
		return AddLandResult{}, fmt.Errorf("create land record: %w", err)
	}

	l.logs.Infow("land record added", "landId", record.LandID, "owner", account.Address)
	return AddLandResult{Outcome: LandRecordAdded, LandID: record.LandID}, nil
}

// GetLandID resolves an identifier to its land id. Zero means the parcel
// does not exist.
func (l *Ledger) GetLandID(ctx context.Context, identifier LandIdentifier) (uint64, error) {
	record, err := l.repo.GetLandByHashKey(ctx, identifier.HashKey())
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get land by hash key: %w", err)
	}
	return record.LandID, nil
}

// LandVerificationRequest enqueues the caller's land for inspector
// verification. Only the owner may request it; a duplicate request is a
// recognized outcome.
func (l *Ledger) LandVerificationRequest(ctx context.Context, caller string, landID uint64) (VerificationOutcome, error) {
	l.locks.Lock(landKey(landID))
	defer l.locks.Unlock(landKey(landID))

	record, err := l.auth.requireOwner(ctx, caller, landID)
	if err != nil {
		return "", err
	}

	if record.IsVerified {
		return VerificationAlreadyDone, nil
	}

	created, err := l.repo.EnqueueLandVerification(ctx, landID)
	if err != nil {
		return "", fmt.Errorf("enqueue land verification: %w", err)
	}
	if !created {
		return VerificationAlreadyRequested, nil
	}

	l.logs.Infow("land verification requested", "landId", landID, "owner", caller)
	return VerificationRequested, nil
}

// VerifyLand marks the land verified. Inspector only.
func (l *Ledger) VerifyLand(ctx context.Context, caller string, landID uint64) error {
	if err := l.auth.requireInspector(ctx, caller); err != nil {
		return err
	}

	l.locks.Lock(landKey(landID))
	defer l.locks.Unlock(landKey(landID))

	if err := l.repo.SetLandVerified(ctx, landID); err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return ErrLandNotFound
		}
		return fmt.Errorf("set land verified: %w", err)
	}

	l.logs.Infow("land verified", "landId", landID, "inspector", caller)
	return nil
}

// ListLandForSale puts the caller's verified land up for sale. Re-listing
// an already listed land is idempotent.
func (l *Ledger) ListLandForSale(ctx context.Context, caller string, landID uint64) error {
	l.locks.Lock(landKey(landID))
	defer l.locks.Unlock(landKey(landID))

	record, err := l.auth.requireOwner(ctx, caller, landID)
	if err != nil {
		return err
	}

	if !record.IsVerified {
		return ErrNotVerified
	}
	if record.IsForSale {
		return nil
	}

	if err := l.repo.SetLandForSale(ctx, landID); err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return ErrLandNotFound
		}
		return fmt.Errorf("set land for sale: %w", err)
	}

	l.logs.Infow("land listed for sale", "landId", landID, "owner", caller)
	return nil
}

// GetLandRecord returns the full read view of a land record.
func (l *Ledger) GetLandRecord(ctx context.Context, landID uint64) (LandDetails, error) {
	record, err := l.repo.GetLandByID(ctx, landID)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return LandDetails{}, ErrLandNotFound
		}
		return LandDetails{}, fmt.Errorf("get land record: %w", err)
	}
	return landToDetails(record), nil
}

// GetOwnerAddress returns the current owner of a land record.
func (l *Ledger) GetOwnerAddress(ctx context.Context, landID uint64) (string, error) {
	record, err := l.GetLandRecord(ctx, landID)
	if err != nil {
		return "", err
	}
	return record.Owner, nil
}

// GetLandsForSale lists every land currently up for sale.
func (l *Ledger) GetLandsForSale(ctx context.Context) ([]LandDetails, error) {
	records, err := l.repo.LandsForSale(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lands for sale: %w", err)
	}
	return landsToDetails(records), nil
}

// GetMyLands lists the caller's lands.
func (l *Ledger) GetMyLands(ctx context.Context, caller string) ([]LandDetails, error) {
	records, err := l.repo.LandsByOwner(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("get lands by owner: %w", err)
	}
	return landsToDetails(records), nil
}

// AllLands lists every registered land record.
func (l *Ledger) AllLands(ctx context.Context) ([]LandDetails, error) {
	records, err := l.repo.AllLands(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all lands: %w", err)
	}
	return landsToDetails(records), nil
}

// GetPreviousOwners returns the land's ownership history in append order.
func (l *Ledger) GetPreviousOwners(ctx context.Context, landID uint64) ([]string, error) {
	if _, err := l.GetLandRecord(ctx, landID); err != nil {
		return nil, err
	}

	owners, err := l.repo.PreviousOwners(ctx, landID)
	if err != nil {
		return nil, fmt.Errorf("get previous owners: %w", err)
	}
	return owners, nil
}

// PendingLandVerifications lists land ids awaiting inspector
// verification. Inspector only.
func (l *Ledger) PendingLandVerifications(ctx context.Context, caller string) ([]uint64, error) {
	if err := l.auth.requireInspector(ctx, caller); err != nil {
		return nil, err
	}
	return l.repo.PendingLandVerifications(ctx)
}

// landKey is the single write-lock key for a parcel. Every mutator of a
// land record or of its buy requests locks this key, so the record a
// mutator reads inside the critical section is the committed state.
func landKey(landID uint64) string {
	return "land:" + strconv.FormatUint(landID, 10)
}

// registerKey serializes registration of a not-yet-existing parcel by
// its identifier hash.
func registerKey(hashKey string) string {
	return "register:" + hashKey
}

func landToDetails(record repository.LandRecord) LandDetails {
	return LandDetails{
		LandID: record.LandID,
		Identifier: LandIdentifier{
			State:        record.State,
			Division:     record.Division,
			District:     record.District,
			Taluka:       record.Taluka,
			Village:      record.Village,
			SurveyNumber: record.SurveyNumber,
			Subdivision:  record.Subdivision,
		},
		Owner:               record.Owner,
		Area:                record.Area,
		PurchaseDate:        record.PurchaseDate,
		PurchasePrice:       record.PurchasePrice,
		LandValueAtPurchase: record.LandValueAtPurchase,
		IsVerified:          record.IsVerified,
		IsForSale:           record.IsForSale,
	}
}

func landsToDetails(records []repository.LandRecord) []LandDetails {
	details := make([]LandDetails, len(records))
	for i, record := range records {
		details[i] = landToDetails(record)
	}
	return details
}
