// Package model holds the persisted entities shared by the auth core and the
// item catalog. Accounts carry the credentials; each account owns exactly one
// role profile (donation center or user) keyed by the same id.
package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Role discriminates the two profile variants plus the middleware-only
// "account" role used by routes that only need an authenticated identity.
type Role string

const (
	RoleAccount        Role = "account"
	RoleDonationCenter Role = "donation_center"
	RoleUser           Role = "user"
)

// ProfileRoles are the roles a signup may select.
var ProfileRoles = []Role{RoleDonationCenter, RoleUser}

// IsProfileRole reports whether r names one of the two profile tables.
func (r Role) IsProfileRole() bool {
	return r == RoleDonationCenter || r == RoleUser
}

// Account is the authentication identity. Password holds the bcrypt hash and
// is never serialized.
type Account struct {
	bun.BaseModel `bun:"table:account,alias:acc"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Email     string    `bun:"email,notnull,unique" json:"email"`
	Password  string    `bun:"password,notnull" json:"-"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at,omitempty"`
}

// DonationCenter is the profile of an account acting as a donation center.
// Its id is the owning account's id.
type DonationCenter struct {
	bun.BaseModel `bun:"table:donation_center,alias:dc"`

	ID      int64  `bun:"id,pk" json:"id"`
	Name    string `bun:"name,notnull,unique" json:"name"`
	Address string `bun:"address,notnull" json:"address,omitempty"`
	Phone   string `bun:"phone,notnull" json:"phone,omitempty"`
}

// User is the profile of a regular donor account. Its id is the owning
// account's id.
type User struct {
	bun.BaseModel `bun:"table:user,alias:usr"`

	ID   int64  `bun:"id,pk" json:"id"`
	Name string `bun:"name,notnull" json:"name"`
}

// Profile is the closed sum over the two role profiles. The only
// implementations are *DonationCenter and *User; the sealed method keeps the
// set closed so role switches stay exhaustive.
type Profile interface {
	ProfileID() int64
	ProfileRole() Role
	sealedProfile()
}

func (d *DonationCenter) ProfileID() int64  { return d.ID }
func (d *DonationCenter) ProfileRole() Role { return RoleDonationCenter }
func (d *DonationCenter) sealedProfile()    {}

func (u *User) ProfileID() int64  { return u.ID }
func (u *User) ProfileRole() Role { return RoleUser }
func (u *User) sealedProfile()    {}

var (
	_ Profile = (*DonationCenter)(nil)
	_ Profile = (*User)(nil)
)

// Item is a catalog entry owned by exactly one donation center. Mutations
// require the authenticated donation center to match DonationCenterID.
type Item struct {
	bun.BaseModel `bun:"table:item,alias:itm"`

	ID               int64  `bun:"id,pk,autoincrement" json:"id"`
	DonationCenterID int64  `bun:"donation_center_id,notnull" json:"donation_center_id"`
	CategoryID       int64  `bun:"category_id,notnull" json:"category_id"`
	Name             string `bun:"name,notnull" json:"name"`
	Quantity         int    `bun:"quantity,notnull" json:"quantity"`
}

// ItemPatch is a partial item update. Nil fields are left untouched.
type ItemPatch struct {
	CategoryID *int64
	Name       *string
	Quantity   *int
}

// IsZero reports whether the patch changes nothing.
func (p ItemPatch) IsZero() bool {
	return p.CategoryID == nil && p.Name == nil && p.Quantity == nil
}

// ItemCategory is a lookup row. The seed set (food, medication, clothes,
// other) is only a starting point; categories can be added or removed in the
// database.
type ItemCategory struct {
	bun.BaseModel `bun:"table:item_category,alias:cat"`

	ID   int64  `bun:"id,pk,autoincrement" json:"id"`
	Name string `bun:"name,notnull,unique" json:"name"`
}
