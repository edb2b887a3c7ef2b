package db_models

// Role is a closed enumeration. Anything outside it is rejected at the
// mutation boundary and denied by the authorization policy.
type Role string

const (
	RoleUser    Role = "user"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePremium, RoleAdmin:
		return true
	}
	return false
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

type Subscription string

const (
	SubscriptionFree    Subscription = "free"
	SubscriptionPremium Subscription = "premium"
)

func (s Subscription) Valid() bool {
	return s == SubscriptionFree || s == SubscriptionPremium
}

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Avatar       string
	Role         Role         `gorm:"type:varchar(16);default:user"`
	Subscription Subscription `gorm:"type:varchar(16);default:free"`

	// Generation allowance consumed by content-producing actions on the
	// free tier. Never goes negative; replenishment is out of scope.
	GenerationsLeft  int `gorm:"default:20"`
	GenerationsTotal int `gorm:"default:20"`

	Posts       []Post       `gorm:"foreignKey:AuthorID"`
	Collections []Collection `gorm:"foreignKey:UserID"`
	SavedPosts  []SavedPost  `gorm:"foreignKey:UserID"`
}
