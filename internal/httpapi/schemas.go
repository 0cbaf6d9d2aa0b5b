package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/nyaruka/phonenumbers"
)

// phoneRegion anchors parsing of phone numbers without a country prefix.
const phoneRegion = "US"

// validPhone accepts an empty value; presence is a per-schema decision.
func validPhone(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	parsed, err := phonenumbers.Parse(raw, phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return validation.NewError("validation_phone", "must be a valid phone number")
	}
	return nil
}

// AccountPayload is the credential half of signup, and the whole of login.
type AccountPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p AccountPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, validation.Length(6, 254), is.EmailFormat),
		validation.Field(&p.Password, validation.Required, validation.Length(8, 72)),
	)
}

// ProfilePayload covers both role variants: users need only a name, donation
// centers may also carry an address and phone.
type ProfilePayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (p ProfilePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&p.Address, validation.Length(0, 255)),
		validation.Field(&p.Phone, validation.By(validPhone)),
	)
}

// SignupBody is the signup request body. Both halves validate independently
// through ozzo's nested struct support.
type SignupBody struct {
	Account AccountPayload `json:"account"`
	Profile ProfilePayload `json:"profile"`
}

func (b SignupBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Account, validation.Required),
		validation.Field(&b.Profile, validation.Required),
	)
}

// SignupQuery selects the profile role. The query section is strict: the
// route only accepts the role key.
type SignupQuery struct {
	Role string `query:"role" json:"role"`
}

func (q SignupQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Role, validation.Required, validation.In("donation_center", "user")),
	)
}

// LoginBody doubles as the re-authentication body of the delete route.
type LoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (b LoginBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Email, validation.Required, is.EmailFormat),
		validation.Field(&b.Password, validation.Required),
	)
}

// IDParam is the numeric :id route parameter, validated before conversion.
type IDParam struct {
	ID string `params:"id"`
}

func (p IDParam) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, is.Digit),
	)
}

// ItemBody is the create-item payload.
type ItemBody struct {
	DonationCenterID int64  `json:"donation_center_id"`
	CategoryID       int64  `json:"category_id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
}

func (b ItemBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.DonationCenterID, validation.Required, validation.Min(int64(1))),
		validation.Field(&b.CategoryID, validation.Required, validation.Min(int64(1))),
		validation.Field(&b.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&b.Quantity, validation.Required, validation.Min(1)),
	)
}

// ItemPatchBody is the partial update payload; absent fields stay untouched.
type ItemPatchBody struct {
	CategoryID *int64  `json:"category_id"`
	Name       *string `json:"name"`
	Quantity   *int    `json:"quantity"`
}

func (b ItemPatchBody) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.CategoryID, validation.Min(int64(1))),
		validation.Field(&b.Name, validation.Length(1, 128)),
		validation.Field(&b.Quantity, validation.Min(1)),
	)
}
