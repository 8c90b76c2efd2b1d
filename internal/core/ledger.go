package core

import (
	"context"
	"errors"
	"fmt"
	"landledger/internal/repository"
	tokenIssuer "landledger/pkg/jwt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const sessionDuration = 24 * time.Hour

// Ledger is the authoritative land-registry core: account registry, land
// record store, buy-request ledger and the ownership transfer engine.
// Every mutating operation consults the authorization policy first and
// runs inside a per-key write section.
type Ledger struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer JWTIssuer
	auth      policy
	locks     *keyMutex
}

func NewLedger(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer) *Ledger {
	return &Ledger{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		auth:      policy{repo: repo},
		locks:     newKeyMutex(),
	}
}

// Authenticate checks the account passphrase and issues a session token
// whose subject is the account address.
func (l *Ledger) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	address, err := normalizeAddress(msg.Address)
	if err != nil {
		return "", err
	}

	account, err := l.repo.GetAccountByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("get account: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PassphraseHash), []byte(msg.Passphrase)); err != nil {
		return "", ErrIncorrectPassphrase
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   account.Username,
		Subject:    account.Address,
		Expiration: sessionDuration,
	}
	token := l.jwtIssuer.Generate(tokenInfo)
	signed, err := l.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Identify resolves a session token to the caller's account address.
func (l *Ledger) Identify(token string) (string, error) {
	claims, err := l.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", tokenIssuer.ErrInvalidToken
	}

	return subject, nil
}

// normalizeAddress validates an address and brings it to its canonical
// checksummed form so identities compare equal regardless of input case.
func normalizeAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Hex(), nil
}
