package auth

import (
	"errors"
	"testing"

	"github.com/medfinder/medfinder-api/entities"
)

func TestLogin(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantErr  error
	}{
		{
			name:     "valid user credentials",
			email:    "demo@medfinder.com",
			password: "demo123",
			wantRole: entities.RoleUser,
		},
		{
			name:     "valid admin credentials",
			email:    "admin@medfinder.com",
			password: "admin123",
			wantRole: entities.RoleAdmin,
		},
		{
			name:     "email is case insensitive",
			email:    "Demo@MedFinder.com",
			password: "demo123",
			wantRole: entities.RoleUser,
		},
		{
			name:     "wrong password",
			email:    "demo@medfinder.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			email:    "nobody@medfinder.com",
			password: "demo123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "empty credentials",
			email:    "",
			password: "",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := service.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() unexpected error: %v", err)
			}
			if user.Role != tt.wantRole {
				t.Errorf("Role = %q, want %q", user.Role, tt.wantRole)
			}
			if user.Name == "" {
				t.Error("Name should be populated")
			}
		})
	}
}

func TestVerifyAdmin(t *testing.T) {
	service := NewService()

	if err := service.VerifyAdmin("admin@medfinder.com"); err != nil {
		t.Errorf("VerifyAdmin(admin) = %v, want nil", err)
	}

	if err := service.VerifyAdmin("demo@medfinder.com"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("VerifyAdmin(user) = %v, want ErrUnauthorized", err)
	}

	if err := service.VerifyAdmin("nobody@medfinder.com"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("VerifyAdmin(unknown) = %v, want ErrUnauthorized", err)
	}
}
