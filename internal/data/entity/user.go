package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
)

type User struct {
	BaseSimple
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
}
