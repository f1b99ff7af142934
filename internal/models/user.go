package models

import (
	"golang.org/x/crypto/bcrypt"
)

// ===========================================================================
// User (school member)
// Students, staff and administrators of the organization
// ===========================================================================

// Profile literals. The first three are stored by the schema and seed,
// the rest are offered by the admin form.
const (
	ProfileAluno       = "aluno"
	ProfileFuncionario = "funcionario"
	ProfileAdmin       = "admin"
	ProfileTeacher     = "teacher"
	ProfileStudent     = "student"
	ProfileParent      = "parent"
	ProfileStaff       = "staff"
)

// User status literals
const (
	UserStatusCadastrado    = "cadastrado"
	UserStatusNaoCadastrado = "não cadastrado"
	UserStatusOnline        = "online"
	UserStatusOffline       = "offline"
	UserStatusAway          = "away"
	UserStatusBusy          = "busy"
)

// User a member of the organization
type User struct {
	BaseModel

	// Username login name, unique
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`

	// Password bcrypt hash (NEVER serialized)
	Password string `gorm:"size:255;not null" json:"-"`

	// FullName display name
	FullName string `gorm:"size:255;not null" json:"fullName"`

	// Email contact address
	Email string `gorm:"size:255;not null" json:"email"`

	// Avatar avatar URL
	Avatar *string `gorm:"size:500" json:"avatar,omitempty"`

	// Profile aluno, funcionario, admin, ...
	Profile string `gorm:"size:50;not null;default:'aluno';index" json:"profile"`

	// Status cadastrado or "não cadastrado"
	Status string `gorm:"size:50;not null;default:'não cadastrado';index" json:"status"`
}

// TableName returns the table name
func (User) TableName() string {
	return "users"
}

// SetPassword hashes and stores password with the default bcrypt cost
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsRegistered user completed the registration
func (u *User) IsRegistered() bool {
	return u.Status == UserStatusCadastrado
}
