package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents member roles
type UserRole string

const (
	UserRoleUser       UserRole = "user"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

// UserStatus represents the account approval state
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusRejected UserStatus = "rejected"
)

// AuthProvider identifies how an account was registered
type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

// Visibility controls who can see a profile field in the directory
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// AuthAccount represents the authentication principal. It survives profile
// deletion, which is how the "account removed" state is expressed.
type AuthAccount struct {
	ID            uuid.UUID    `json:"id"`
	Email         string       `json:"email"`
	Provider      AuthProvider `json:"provider"`
	PasswordHash  string       `json:"-"`
	EmailVerified bool         `json:"emailVerified"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// FieldVisibility holds per-field directory visibility flags
type FieldVisibility struct {
	Email      Visibility `json:"email"`
	Phone      Visibility `json:"phone"`
	Address    Visibility `json:"address"`
	BloodGroup Visibility `json:"bloodGroup"`
}

// DefaultVisibility hides contact fields until the member opts in.
func DefaultVisibility() FieldVisibility {
	return FieldVisibility{
		Email:      VisibilityPrivate,
		Phone:      VisibilityPrivate,
		Address:    VisibilityPrivate,
		BloodGroup: VisibilityPublic,
	}
}

// User represents a member profile
type User struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"-"`
	Email          string          `json:"email,omitempty"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Profession     string          `json:"profession,omitempty"`
	Company        string          `json:"company,omitempty"`
	BloodGroup     string          `json:"bloodGroup,omitempty"`
	Address        string          `json:"address,omitempty"`
	GraduationYear int             `json:"graduationYear,omitempty"`
	PhotoURL       null.String     `json:"photoUrl,omitempty"`
	Role           UserRole        `json:"role"`
	Status         UserStatus      `json:"status"`
	Provider       AuthProvider    `json:"provider"`
	Visibility     FieldVisibility `json:"visibility"`
	ApprovedBy     uuid.NullUUID   `json:"-"`
	ApprovedAt     null.Time       `json:"approvedAt,omitempty"`
	LastLoginAt    null.Time       `json:"lastLoginAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsAdmin reports whether the user holds an administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin || u.Role == UserRoleSuperAdmin
}

// ProfileCompletion returns the filled percentage of the profile fields
// shown on the member card.
func (u *User) ProfileCompletion() int {
	fields := []string{u.Name, u.Phone, u.Profession, u.Company, u.BloodGroup, u.Address, u.PhotoURL.String}
	total := len(fields) + 1 // graduation year counts too
	filled := 0
	for _, f := range fields {
		if f != "" {
			filled++
		}
	}
	if u.GraduationYear > 0 {
		filled++
	}
	return filled * 100 / total
}

// RegisterInput represents input for email/password registration
type RegisterInput struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Password       string `json:"password" binding:"required,min=8"`
	Phone          string `json:"phone" binding:"required,min=8,max=20"`
	Profession     string `json:"profession"`
	Company        string `json:"company"`
	BloodGroup     string `json:"bloodGroup"`
	Address        string `json:"address"`
	GraduationYear int    `json:"graduationYear"`
}

// GoogleSignInInput represents input for Google sign-in. IDToken is the
// token issued by Google; RegisterIntent must be set for first-time
// sign-ups, otherwise an unknown account is not created.
type GoogleSignInInput struct {
	IDToken        string `json:"idToken" binding:"required"`
	RegisterIntent bool   `json:"registerIntent"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	GraduationYear int    `json:"graduationYear"`
}

// LoginInput represents input for email/password login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// UpdateProfileInput represents a member profile update
type UpdateProfileInput struct {
	Name           string           `json:"name" binding:"omitempty,min=2,max=100"`
	Phone          string           `json:"phone" binding:"omitempty,min=8,max=20"`
	Profession     string           `json:"profession"`
	Company        string           `json:"company"`
	BloodGroup     string           `json:"bloodGroup"`
	Address        string           `json:"address"`
	GraduationYear int              `json:"graduationYear"`
	PhotoURL       string           `json:"photoUrl"`
	Visibility     *FieldVisibility `json:"visibility"`
}

// ReapplyInput represents a re-approval request from an account whose
// profile was removed. Credentials prove ownership of the surviving
// auth account; the rest rebuilds the profile.
type ReapplyInput struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password"`
	IDToken        string `json:"idToken"`
	Name           string `json:"name" binding:"required,min=2,max=100"`
	Phone          string `json:"phone" binding:"required,min=8,max=20"`
	Profession     string `json:"profession"`
	Company        string `json:"company"`
	BloodGroup     string `json:"bloodGroup"`
	Address        string `json:"address"`
	GraduationYear int    `json:"graduationYear"`
}

// ChangePasswordInput represents input for changing the account password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken       string `json:"accessToken,omitempty"`
	RefreshToken      string `json:"refreshToken,omitempty"`
	SessionID         string `json:"sessionId,omitempty"`
	User              *User  `json:"user,omitempty"`
	ProfileCompletion int    `json:"profileCompletion"`
}

// DirectorySort enumerates supported directory orderings
type DirectorySort string

const (
	SortByName       DirectorySort = "name"
	SortByBloodGroup DirectorySort = "blood_group"
	SortByCreatedAt  DirectorySort = "created_at"
)

// DirectoryQuery holds directory listing parameters
type DirectoryQuery struct {
	Search    string        `form:"search"`
	SortBy    DirectorySort `form:"sortBy"`
	Ascending bool          `form:"asc"`
	Page      int           `form:"page"`
	Limit     int           `form:"limit"`
}
