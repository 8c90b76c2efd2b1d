package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
)

// policy is the authorization rule evaluator consulted by every mutating
// operation. Role checks resolve the caller's account and reduce every
// failure to ErrUnauthorized so a caller cannot probe the registry for
// accounts it is not allowed to see.
type policy struct {
	repo Repository
}

func (p policy) account(ctx context.Context, address string) (repository.Account, error) {
	account, err := p.repo.GetAccountByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, ErrAccountNotFound
		}
		return repository.Account{}, fmt.Errorf("get caller account: %w", err)
	}
	return account, nil
}

func (p policy) requireDeployer(ctx context.Context, caller string) error {
	account, err := p.account(ctx, caller)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	if Designation(account.Designation) != DesignationDeployer {
		return ErrUnauthorized
	}
	return nil
}

// requireAuthority passes for the deployer and second-level authorities.
func (p policy) requireAuthority(ctx context.Context, caller string) error {
	account, err := p.account(ctx, caller)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	switch Designation(account.Designation) {
	case DesignationDeployer, DesignationSecondLevelAuthority:
		return nil
	default:
		return ErrUnauthorized
	}
}

func (p policy) requireInspector(ctx context.Context, caller string) error {
	account, err := p.account(ctx, caller)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	if Designation(account.Designation) != DesignationLandInspector {
		return ErrUnauthorized
	}
	return nil
}

// requireVerified passes for any verified account and returns it.
func (p policy) requireVerified(ctx context.Context, caller string) (repository.Account, error) {
	account, err := p.account(ctx, caller)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return repository.Account{}, ErrUnauthorized
		}
		return repository.Account{}, err
	}
	if !account.IsVerified {
		return repository.Account{}, ErrUnauthorized
	}
	return account, nil
}

// requireOwner passes when the caller owns the land and returns the
// record.
func (p policy) requireOwner(ctx context.Context, caller string, landID uint64) (repository.LandRecord, error) {
	record, err := p.repo.GetLandByID(ctx, landID)
	if err != nil {
		if errors.Is(err, repository.ErrLandNotFound) {
			return repository.LandRecord{}, ErrLandNotFound
		}
		return repository.LandRecord{}, fmt.Errorf("get land record: %w", err)
	}
	if record.Owner != caller {
		return repository.LandRecord{}, ErrUnauthorized
	}
	return record, nil
}
