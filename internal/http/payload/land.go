package payload

import (
	"landledger/internal/core"

	"github.com/jellydator/validation"
)

type AddLandRequest struct {
	State               string `json:"state"`
	Division            string `json:"division"`
	District            string `json:"district"`
	Taluka              string `json:"taluka"`
	Village             string `json:"village"`
	SurveyNumber        string `json:"surveyNumber"`
	Subdivision         string `json:"subdivision"`
	Area                uint64 `json:"area"`
	PurchaseDate        int64  `json:"purchaseDate"`
	PurchasePrice       uint64 `json:"purchasePrice"`
	LandValueAtPurchase uint64 `json:"landValueAtPurchase"`
}

func (r AddLandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.State, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Division, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.District, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Taluka, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Village, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.SurveyNumber, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Subdivision, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Area, validation.Required),
	)
}

func (r AddLandRequest) ToMessage() core.AddLandMessage {
	return core.AddLandMessage{
		Identifier: core.LandIdentifier{
			State:        r.State,
			Division:     r.Division,
			District:     r.District,
			Taluka:       r.Taluka,
			Village:      r.Village,
			SurveyNumber: r.SurveyNumber,
			Subdivision:  r.Subdivision,
		},
		Area:                r.Area,
		PurchaseDate:        r.PurchaseDate,
		PurchasePrice:       r.PurchasePrice,
		LandValueAtPurchase: r.LandValueAtPurchase,
	}
}

// LandIdentifierQuery is the identifier tuple passed as query parameters
// on the land id lookup.
type LandIdentifierQuery struct {
	State        string
	Division     string
	District     string
	Taluka       string
	Village      string
	SurveyNumber string
	Subdivision  string
}

func (q LandIdentifierQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.State, validation.Required),
		validation.Field(&q.Division, validation.Required),
		validation.Field(&q.District, validation.Required),
		validation.Field(&q.Taluka, validation.Required),
		validation.Field(&q.Village, validation.Required),
		validation.Field(&q.SurveyNumber, validation.Required),
		validation.Field(&q.Subdivision, validation.Required),
	)
}

func (q LandIdentifierQuery) ToIdentifier() core.LandIdentifier {
	return core.LandIdentifier{
		State:        q.State,
		Division:     q.Division,
		District:     q.District,
		Taluka:       q.Taluka,
		Village:      q.Village,
		SurveyNumber: q.SurveyNumber,
		Subdivision:  q.Subdivision,
	}
}

type BuyLandRequest struct {
	LandID uint64 `json:"landId"`
}

func (r BuyLandRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.LandID, validation.Required),
	)
}
