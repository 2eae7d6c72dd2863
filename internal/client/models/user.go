// Package models defines the backend records as seen by the client. All of
// them are owned and persisted server-side; the client only holds transient,
// per-view copies decoded from JSON responses.
package models

// User roles as reported by the backend.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the authenticated account record. The password never appears here;
// it only exists as transient prompt input.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserListItem is a row of the admin user list, a User plus per-user
// aggregate counts.
type UserListItem struct {
	User
	ProductCount int64 `json:"product_count"`
	SaleCount    int64 `json:"sale_count"`
}
