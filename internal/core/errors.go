package core

import "errors"

// Authorization failures. Fatal to the call, never retried.
var ErrUnauthorized error = errors.New("caller is not authorized for this operation")

// Missing entities.
var ErrAccountNotFound error = errors.New("account not found")
var ErrLandNotFound error = errors.New("land record not found")
var ErrRequestNotFound error = errors.New("buy request not found")

// Structural constraint violations. Non-retryable without changing input.
var ErrAlreadyRegistered error = errors.New("account already registered")
var ErrDuplicateNationalID error = errors.New("national id already in use")
var ErrCannotModifyDeployer error = errors.New("deployer privileges cannot be modified")
var ErrIncorrectPassphrase error = errors.New("incorrect passphrase")
var ErrInvalidAddress error = errors.New("invalid account address")

// Invalid state transitions. The caller must re-check state before
// retrying.
var ErrNotVerified error = errors.New("land record is not verified")
var ErrNotForSale error = errors.New("land record is not for sale")
var ErrDuplicateRequest error = errors.New("an active buy request for this land already exists")
var ErrAlreadyAccepted error = errors.New("buy request already accepted")
var ErrRequestRejected error = errors.New("buy request already rejected")
var ErrNotAccepted error = errors.New("buy request is not accepted")
var ErrAlreadyPaymentDone error = errors.New("payment already marked as done")
var ErrNotPaymentDone error = errors.New("payment is not marked as done")
var ErrAlreadyCompleted error = errors.New("ownership transfer already completed")
