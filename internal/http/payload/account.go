package payload

import (
	"errors"
	"landledger/internal/core"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// validAddress accepts 0x-prefixed 20-byte hex addresses.
var validAddress = validation.By(func(value interface{}) error {
	address, _ := value.(string)
	if !common.IsHexAddress(address) {
		return errors.New("must be a valid hex address")
	}
	return nil
})

type AuthRequest struct {
	Address    string `json:"address"`
	Passphrase string `json:"passphrase"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validAddress),
		validation.Field(&a.Passphrase, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Address:    a.Address,
		Passphrase: a.Passphrase,
	}
}

type RegisterAccountRequest struct {
	Address    string `json:"address"`
	Username   string `json:"username"`
	NationalID string `json:"nationalId"`
	Passphrase string `json:"passphrase"`
}

func (r RegisterAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required, validAddress),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.NationalID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Passphrase, validation.Required, validation.Length(8, 72)),
	)
}

func (r RegisterAccountRequest) ToMessage() core.RegisterAccountMessage {
	return core.RegisterAccountMessage{
		Address:    r.Address,
		Username:   r.Username,
		NationalID: r.NationalID,
		Passphrase: r.Passphrase,
	}
}

type AddOfficialRequest struct {
	Address    string `json:"address"`
	Username   string `json:"username"`
	NationalID string `json:"nationalId"`
	Passphrase string `json:"passphrase"`
}

func (r AddOfficialRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Address, validation.Required, validAddress),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.NationalID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Passphrase, validation.Required, validation.Length(8, 72)),
	)
}

func (r AddOfficialRequest) ToMessage() core.AddOfficialMessage {
	return core.AddOfficialMessage{
		Address:    r.Address,
		Username:   r.Username,
		NationalID: r.NationalID,
		Passphrase: r.Passphrase,
	}
}

type VerificationRequest struct {
	NationalID string `json:"nationalId"`
}

func (r VerificationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NationalID, validation.Required, validation.Length(1, 64)),
	)
}
