package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abreai/abreai-api/models"
	"github.com/abreai/abreai-api/storage"
	"github.com/abreai/abreai-api/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// RegisterInput carries the signup form fields
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. Empty fields are
// left unchanged.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AuthService manages the credential table and the authenticated-user
// marker. Users persist under one key as a whole collection, the current
// user under its own key, matching the cart and order containers.
type AuthService struct {
	mu    sync.Mutex
	store storage.Store
	users []models.UserRecord
}

func NewAuthService(store storage.Store) *AuthService {
	s := &AuthService{store: store}
	if err := store.Get(storage.KeyUsers, &s.users); err != nil {
		s.users = nil
	}
	return s
}

func (s *AuthService) persist() {
	if err := s.store.Put(storage.KeyUsers, s.users); err != nil {
		utils.LogError("failed to persist users: %v", err)
	}
}

func validateRegisterInput(input RegisterInput) utils.FieldValidationErrors {
	var fieldErrs utils.FieldValidationErrors
	if ok, msg := utils.ValidateName(input.Name); !ok {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "name", Message: msg})
	}
	if ok, msg := utils.ValidateEmail(input.Email); !ok {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "email", Message: msg})
	}
	if input.Phone != "" {
		if ok, msg := utils.ValidatePhone(input.Phone); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "phone", Message: msg})
		}
	}
	if ok, msg := utils.ValidatePassword(input.Password); !ok {
		fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "password", Message: msg})
	}
	return fieldErrs
}

// Register creates a credential record. Email uniqueness is
// case-insensitive.
func (s *AuthService) Register(input RegisterInput) (models.User, error) {
	if fieldErrs := validateRegisterInput(input); len(fieldErrs) > 0 {
		return models.User{}, fieldErrs
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.users {
		if strings.EqualFold(record.Email, email) {
			return models.User{}, ErrEmailTaken
		}
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.LogError("failed to hash password: %v", err)
		return models.User{}, err
	}

	record := models.UserRecord{
		User: models.User{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(input.Name),
			Email:     email,
			Phone:     strings.TrimSpace(input.Phone),
			Address:   strings.TrimSpace(input.Address),
			CreatedAt: time.Now(),
		},
		PasswordHash: hash,
	}
	s.users = append(s.users, record)
	s.persist()

	utils.LogInfo("user registered: %s", record.ID)
	return record.User, nil
}

// Login verifies credentials, marks the user as current and issues a
// token. The stored current-user marker is what the storefront restores
// on load.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.users {
		if !strings.EqualFold(record.Email, strings.TrimSpace(email)) {
			continue
		}
		if !utils.CheckPassword(password, record.PasswordHash) {
			return models.User{}, "", ErrInvalidCredentials
		}
		token, err := utils.GenerateToken(record.ID, record.Email)
		if err != nil {
			utils.LogError("failed to issue token: %v", err)
			return models.User{}, "", err
		}
		if err := s.store.Put(storage.KeyUser, record.User); err != nil {
			utils.LogError("failed to persist current user: %v", err)
		}
		utils.LogInfo("user logged in: %s", record.ID)
		return record.User, token, nil
	}
	return models.User{}, "", ErrInvalidCredentials
}

// Logout clears the current-user marker
func (s *AuthService) Logout() {
	if err := s.store.Delete(storage.KeyUser); err != nil {
		utils.LogError("failed to clear current user: %v", err)
	}
}

// CurrentUser returns the persisted authenticated user, if any
func (s *AuthService) CurrentUser() (models.User, bool) {
	var user models.User
	if err := s.store.Get(storage.KeyUser, &user); err != nil || user.ID == "" {
		return models.User{}, false
	}
	return user, true
}

// UpdateProfile applies non-empty fields to the user's record and
// refreshes the current-user marker when it points at the same user.
func (s *AuthService) UpdateProfile(userID string, update ProfileUpdate) (models.User, error) {
	var fieldErrs utils.FieldValidationErrors
	if update.Name != "" {
		if ok, msg := utils.ValidateName(update.Name); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "name", Message: msg})
		}
	}
	if update.Phone != "" {
		if ok, msg := utils.ValidatePhone(update.Phone); !ok {
			fieldErrs = append(fieldErrs, utils.FieldValidationError{Field: "phone", Message: msg})
		}
	}
	if len(fieldErrs) > 0 {
		return models.User{}, fieldErrs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != userID {
			continue
		}
		if update.Name != "" {
			s.users[i].Name = strings.TrimSpace(update.Name)
		}
		if update.Phone != "" {
			s.users[i].Phone = strings.TrimSpace(update.Phone)
		}
		if update.Address != "" {
			s.users[i].Address = strings.TrimSpace(update.Address)
		}
		s.persist()

		if current, ok := s.currentUserLocked(); ok && current.ID == userID {
			if err := s.store.Put(storage.KeyUser, s.users[i].User); err != nil {
				utils.LogError("failed to refresh current user: %v", err)
			}
		}
		return s.users[i].User, nil
	}
	return models.User{}, ErrUserNotFound
}

// currentUserLocked reads the marker without taking the service mutex;
// callers already hold it.
func (s *AuthService) currentUserLocked() (models.User, bool) {
	var user models.User
	if err := s.store.Get(storage.KeyUser, &user); err != nil || user.ID == "" {
		return models.User{}, false
	}
	return user, true
}

// UserByID looks a user up by id
func (s *AuthService) UserByID(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.users {
		if record.ID == id {
			return record.User, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UserByEmail looks a user up by email, case-insensitively
func (s *AuthService) UserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.users {
		if strings.EqualFold(record.Email, email) {
			return record.User, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
