package service

import (
	"errors"
	"testing"

	"go-mof-tracker/internal/model"

	"github.com/google/uuid"
)

func TestCreateUserHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "budi", model.RolePicking)

	if user.Password == "secret123" {
		t.Fatal("password stored as plaintext")
	}
	if !user.CheckPassword("secret123") {
		t.Error("CheckPassword rejects the original password")
	}
	if user.CheckPassword("wrong") {
		t.Error("CheckPassword accepts a wrong password")
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "budi", model.RolePicking)

	_, err := env.users.CreateUser(&CreateUserRequest{
		Username: "budi",
		Email:    "other@warehouse.example",
		Password: "secret123",
		FullName: "Budi Kedua",
		Role:     string(model.RolePicking),
	})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "budi", model.RolePicking)

	_, err := env.users.CreateUser(&CreateUserRequest{
		Username: "budi2",
		Email:    "budi@warehouse.example",
		Password: "secret123",
		FullName: "Budi Kedua",
		Role:     string(model.RolePicking),
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateUserInvalidRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.CreateUser(&CreateUserRequest{
		Username: "budi",
		Email:    "budi@warehouse.example",
		Password: "secret123",
		FullName: "Budi",
		Role:     "SUPERVISOR",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
}

func TestGetUserByID(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "budi", model.RoleRequester)

	resp, err := env.users.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if resp.Username != "budi" || resp.Role != model.RoleRequester {
		t.Errorf("unexpected response: %+v", resp)
	}

	if _, err := env.users.GetUserByID(uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestGetAllUsers(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "budi", model.RolePicking)
	env.createUser(t, "sari", model.RoleRequester)

	users, err := env.users.GetAllUsers()
	if err != nil {
		t.Fatalf("GetAllUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
}
