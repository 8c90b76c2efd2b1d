package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RegisterAccount creates a participant account. An address may register
// exactly once and national ids are unique across all accounts.
func (l *Ledger) RegisterAccount(ctx context.Context, msg RegisterAccountMessage) (AccountDetails, error) {
	address, err := normalizeAddress(msg.Address)
	if err != nil {
		return AccountDetails{}, err
	}

	l.locks.Lock(accountKey(address))
	defer l.locks.Unlock(accountKey(address))

	account, err := l.createAccount(ctx, address, msg.Username, msg.NationalID, msg.Passphrase, DesignationNone, false)
	if err != nil {
		return AccountDetails{}, err
	}

	l.logs.Infow("account registered", "address", address, "username", msg.Username)
	return accountToDetails(account), nil
}

// AddLandInspector creates an inspector account. Callable by the deployer
// and second-level authorities.
func (l *Ledger) AddLandInspector(ctx context.Context, caller string, msg AddOfficialMessage) (AccountDetails, error) {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return AccountDetails{}, err
	}

	address, err := normalizeAddress(msg.Address)
	if err != nil {
		return AccountDetails{}, err
	}

	l.locks.Lock(accountKey(address))
	defer l.locks.Unlock(accountKey(address))

	account, err := l.createAccount(ctx, address, msg.Username, msg.NationalID, msg.Passphrase, DesignationLandInspector, true)
	if err != nil {
		return AccountDetails{}, err
	}

	l.logs.Infow("land inspector added", "address", address, "by", caller)
	return accountToDetails(account), nil
}

// AddSecondLevelAuthority creates a second-level authority account.
// Deployer only.
func (l *Ledger) AddSecondLevelAuthority(ctx context.Context, caller string, msg AddOfficialMessage) (AccountDetails, error) {
	if err := l.auth.requireDeployer(ctx, caller); err != nil {
		return AccountDetails{}, err
	}

	address, err := normalizeAddress(msg.Address)
	if err != nil {
		return AccountDetails{}, err
	}

	l.locks.Lock(accountKey(address))
	defer l.locks.Unlock(accountKey(address))

	account, err := l.createAccount(ctx, address, msg.Username, msg.NationalID, msg.Passphrase, DesignationSecondLevelAuthority, true)
	if err != nil {
		return AccountDetails{}, err
	}

	l.logs.Infow("second level authority added", "address", address, "by", caller)
	return accountToDetails(account), nil
}

// GrantLandInspectorStatus promotes an existing account to inspector.
func (l *Ledger) GrantLandInspectorStatus(ctx context.Context, caller, target string) error {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return err
	}
	return l.setDesignation(ctx, target, DesignationLandInspector)
}

// GrantSecondLevelAuthorityStatus promotes an existing account to
// second-level authority. Deployer only.
func (l *Ledger) GrantSecondLevelAuthorityStatus(ctx context.Context, caller, target string) error {
	if err := l.auth.requireDeployer(ctx, caller); err != nil {
		return err
	}
	return l.setDesignation(ctx, target, DesignationSecondLevelAuthority)
}

// RevokeLandInspectorStatus strips the inspector designation, leaving the
// account itself intact.
func (l *Ledger) RevokeLandInspectorStatus(ctx context.Context, caller, target string) error {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return err
	}
	return l.setDesignation(ctx, target, DesignationNone)
}

// RevokeSecondLevelAuthorityStatus strips the authority designation.
// Deployer only.
func (l *Ledger) RevokeSecondLevelAuthorityStatus(ctx context.Context, caller, target string) error {
	if err := l.auth.requireDeployer(ctx, caller); err != nil {
		return err
	}
	return l.setDesignation(ctx, target, DesignationNone)
}

// RemoveLandInspector strips the designation and the verified flag, so
// the account drops back to an unverified participant.
func (l *Ledger) RemoveLandInspector(ctx context.Context, caller, target string) error {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return err
	}
	return l.removeOfficial(ctx, target)
}

// RemoveSecondLevelAuthority strips the designation and the verified
// flag. Deployer only.
func (l *Ledger) RemoveSecondLevelAuthority(ctx context.Context, caller, target string) error {
	if err := l.auth.requireDeployer(ctx, caller); err != nil {
		return err
	}
	return l.removeOfficial(ctx, target)
}

// VerifyAccount marks the account with the given national id verified.
// Callable by the deployer and second-level authorities.
func (l *Ledger) VerifyAccount(ctx context.Context, caller, nationalID string) error {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return err
	}

	account, err := l.repo.GetAccountByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("get account by national id: %w", err)
	}

	l.locks.Lock(accountKey(account.Address))
	defer l.locks.Unlock(accountKey(account.Address))

	if err := l.repo.VerifyAccountByNationalID(ctx, nationalID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("verify account: %w", err)
	}

	l.logs.Infow("account verified", "nationalId", nationalID, "address", account.Address, "by", caller)
	return nil
}

// RequestAccountVerification enqueues a pending verification entry for
// the national id. Duplicate submissions are a recognized outcome, not an
// error.
func (l *Ledger) RequestAccountVerification(ctx context.Context, caller, nationalID string) (VerificationOutcome, error) {
	account, err := l.repo.GetAccountByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("get account by national id: %w", err)
	}

	l.locks.Lock(accountKey(account.Address))
	defer l.locks.Unlock(accountKey(account.Address))

	if account.IsVerified {
		return VerificationAlreadyDone, nil
	}

	created, err := l.repo.EnqueueAccountVerification(ctx, nationalID)
	if err != nil {
		return "", fmt.Errorf("enqueue account verification: %w", err)
	}
	if !created {
		return VerificationAlreadyRequested, nil
	}

	l.logs.Infow("account verification requested", "nationalId", nationalID, "by", caller)
	return VerificationRequested, nil
}

// PendingAccountVerifications lists national ids awaiting verification.
// Callable by the deployer and second-level authorities.
func (l *Ledger) PendingAccountVerifications(ctx context.Context, caller string) ([]string, error) {
	if err := l.auth.requireAuthority(ctx, caller); err != nil {
		return nil, err
	}
	return l.repo.PendingAccountVerifications(ctx)
}

// GetUserDetailsByAddress returns the account registered for the address.
func (l *Ledger) GetUserDetailsByAddress(ctx context.Context, address string) (AccountDetails, error) {
	normalized, err := normalizeAddress(address)
	if err != nil {
		return AccountDetails{}, err
	}

	account, err := l.repo.GetAccountByAddress(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return AccountDetails{}, ErrAccountNotFound
		}
		return AccountDetails{}, fmt.Errorf("get account by address: %w", err)
	}

	return accountToDetails(account), nil
}

// IsUserVerified reports whether the address belongs to a verified
// account. An unregistered address is simply not verified.
func (l *Ledger) IsUserVerified(ctx context.Context, address string) (bool, error) {
	details, err := l.GetUserDetailsByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return details.IsVerified, nil
}

// IsDeployer reports whether the address is the deployer identity.
func (l *Ledger) IsDeployer(ctx context.Context, address string) (bool, error) {
	details, err := l.GetUserDetailsByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return details.Designation == DesignationDeployer, nil
}

func (l *Ledger) createAccount(ctx context.Context, address, username, nationalID, passphrase string, designation Designation, verified bool) (repository.Account, error) {
	_, err := l.repo.GetAccountByAddress(ctx, address)
	if err == nil {
		return repository.Account{}, ErrAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return repository.Account{}, fmt.Errorf("get account by address: %w", err)
	}

	_, err = l.repo.GetAccountByNationalID(ctx, nationalID)
	if err == nil {
		return repository.Account{}, ErrDuplicateNationalID
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return repository.Account{}, fmt.Errorf("get account by national id: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, fmt.Errorf("hash passphrase: %w", err)
	}

	account := repository.Account{
		Address:        address,
		Username:       username,
		NationalID:     nationalID,
		PassphraseHash: string(hash),
		Designation:    int(designation),
		IsVerified:     verified,
		RegisteredAt:   time.Now().UTC(),
	}
	if err := l.repo.CreateAccount(ctx, account); err != nil {
		return repository.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (l *Ledger) setDesignation(ctx context.Context, target string, designation Designation) error {
	address, err := normalizeAddress(target)
	if err != nil {
		return err
	}

	l.locks.Lock(accountKey(address))
	defer l.locks.Unlock(accountKey(address))

	account, err := l.auth.account(ctx, address)
	if err != nil {
		return err
	}
	if Designation(account.Designation) == DesignationDeployer {
		return ErrCannotModifyDeployer
	}

	if err := l.repo.SetDesignation(ctx, address, int(designation)); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set designation: %w", err)
	}

	l.logs.Infow("designation changed", "address", address, "designation", designation.String())
	return nil
}

func (l *Ledger) removeOfficial(ctx context.Context, target string) error {
	address, err := normalizeAddress(target)
	if err != nil {
		return err
	}

	l.locks.Lock(accountKey(address))
	defer l.locks.Unlock(accountKey(address))

	account, err := l.auth.account(ctx, address)
	if err != nil {
		return err
	}
	if Designation(account.Designation) == DesignationDeployer {
		return ErrCannotModifyDeployer
	}

	if err := l.repo.SetDesignation(ctx, address, int(DesignationNone)); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set designation: %w", err)
	}
	if err := l.repo.SetAccountVerification(ctx, address, false); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("set account verification: %w", err)
	}

	l.logs.Infow("official removed", "address", address)
	return nil
}

func accountKey(address string) string {
	return "account:" + address
}

func accountToDetails(account repository.Account) AccountDetails {
	return AccountDetails{
		Address:      account.Address,
		Username:     account.Username,
		NationalID:   account.NationalID,
		Designation:  Designation(account.Designation),
		IsVerified:   account.IsVerified,
		RegisteredAt: account.RegisteredAt,
	}
}
