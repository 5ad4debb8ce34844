package entities

import (
	"testing"

	"github.com/volatiletech/null/v8"
)

func TestUser_ProfileCompletion(t *testing.T) {
	empty := &User{}
	if got := empty.ProfileCompletion(); got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}

	full := &User{
		Name:           "Karim Ahmed",
		Phone:          "+8801712345678",
		Profession:     "Engineer",
		Company:        "Acme",
		BloodGroup:     "O+",
		Address:        "Dhaka",
		PhotoURL:       null.StringFrom("https://cdn.example.com/p.jpg"),
		GraduationYear: 2015,
	}
	if got := full.ProfileCompletion(); got != 100 {
		t.Fatalf("expected 100 got %d", got)
	}

	// 4 of 8 fields filled.
	half := &User{Name: "Karim", Phone: "+880", Profession: "Engineer", GraduationYear: 2015}
	if got := half.ProfileCompletion(); got != 50 {
		t.Fatalf("expected 50 got %d", got)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	if (&User{Role: UserRoleUser}).IsAdmin() {
		t.Fatal("expected member not admin")
	}
	if !(&User{Role: UserRoleAdmin}).IsAdmin() {
		t.Fatal("expected admin")
	}
	if !(&User{Role: UserRoleSuperAdmin}).IsAdmin() {
		t.Fatal("expected super admin")
	}
}

func TestDefaultVisibility(t *testing.T) {
	v := DefaultVisibility()
	if v.Email != VisibilityPrivate || v.Phone != VisibilityPrivate || v.Address != VisibilityPrivate {
		t.Fatalf("expected contact fields private got %+v", v)
	}
	if v.BloodGroup != VisibilityPublic {
		t.Fatal("expected blood group public for donor lookup")
	}
}
