package repository

import "time"

// Account is a registered participant keyed by Ethereum address.
type Account struct {
	Address        string    `gorm:"primaryKey;size:42"` // 0x + 40 hex
	Username       string    `gorm:"size:255;not null"`
	NationalID     string    `gorm:"size:64;uniqueIndex;not null"`
	PassphraseHash string    `gorm:"not null"`
	Designation    int       `gorm:"not null;default:0"`
	IsVerified     bool      `gorm:"not null;default:false"`
	RegisteredAt   time.Time `gorm:"not null"`
}

// LandRecord is a registered parcel. HashKey is the Keccak-256 digest of
// the identifier tuple and is the uniqueness key; LandID is the stable
// public id handed to callers.
type LandRecord struct {
	LandID              uint64 `gorm:"primaryKey;autoIncrement"`
	HashKey             string `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex
	State               string `gorm:"size:255;not null"`
	Division            string `gorm:"size:255;not null"`
	District            string `gorm:"size:255;not null"`
	Taluka              string `gorm:"size:255;not null"`
	Village             string `gorm:"size:255;not null"`
	SurveyNumber        string `gorm:"size:64;not null"`
	Subdivision         string `gorm:"size:64;not null"`
	Owner               string `gorm:"size:42;not null;index"`
	Area                uint64 `gorm:"not null"`
	PurchaseDate        int64  `gorm:"not null"` // unix seconds
	PurchasePrice       uint64 `gorm:"not null"`
	LandValueAtPurchase uint64 `gorm:"not null"`
	IsVerified          bool   `gorm:"not null;default:false"`
	IsForSale           bool   `gorm:"not null;default:false"`
}

// PreviousOwner is one entry of a land's ownership history, appended on
// every completed transfer. ID preserves append order.
type PreviousOwner struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	LandID uint64 `gorm:"not null;index"`
	Owner  string `gorm:"size:42;not null"`
}

// BuyRequest is a buyer's interest in one for-sale land, tracked through
// the request status lifecycle.
type BuyRequest struct {
	RequestID uint64 `gorm:"primaryKey;autoIncrement"`
	LandID    uint64 `gorm:"not null;index"`
	Buyer     string `gorm:"size:42;not null;index"`
	Seller    string `gorm:"size:42;not null;index"`
	Status    int    `gorm:"not null;default:0"`
}

// AccountVerification is a pending account-verification entry keyed by
// national id.
type AccountVerification struct {
	NationalID string `gorm:"primaryKey;size:64"`
}

// LandVerification is a pending land-verification entry.
type LandVerification struct {
	LandID uint64 `gorm:"primaryKey;autoIncrement:false"`
}
