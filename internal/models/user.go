package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is the directory record for one account. Email is stored exactly as
// entered at signup; every lookup folds case instead.
type User struct {
	ID           string
	Email        string
	Name         string
	Contact      string
	PasswordHash []byte
	Teach        []string
	Learn        []string
	StudyYear    string
	Branch       string
	SkillPoints  int
	Rating       float64
	Reviews      int
	AvatarURL    *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate carries the mutable profile fields. Nil means leave the
// stored value alone.
type ProfileUpdate struct {
	Name      *string
	Contact   *string
	Teach     *[]string
	Learn     *[]string
	StudyYear *string
	Branch    *string
	AvatarURL *string
}
