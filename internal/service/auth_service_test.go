package service

import (
	"errors"
	"testing"

	"go-mof-tracker/internal/model"
)

func TestLoginReturnsTokenAndUser(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "budi", model.RolePicking)

	resp, err := env.auth.Login("budi", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Username != "budi" || resp.User.Role != model.RolePicking {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "budi", model.RolePicking)

	if _, err := env.auth.Login("budi", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.Login("ghost", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginInactiveUser(t *testing.T) {
	env := newTestEnv(t)
	user := &model.User{
		Username: "budi",
		Email:    "budi@warehouse.example",
		FullName: "Budi",
		Role:     model.RolePicking,
		IsActive: false,
	}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := env.store.Users().Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := env.auth.Login("budi", "secret123"); !errors.Is(err, ErrUserInactive) {
		t.Fatalf("err = %v, want ErrUserInactive", err)
	}
}
