package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"workgroup/internal/cache"
	"workgroup/internal/credentials"
	apperrors "workgroup/internal/errors"
	"workgroup/internal/model"
	"workgroup/internal/repository"
)

const listCacheKey = "users:all"

// UserPatch carries a partial update. Only non-empty fields overwrite
// the stored user; a zero-value patch is a no-op merge.
type UserPatch struct {
	Name     string
	Email    string
	Password string
	Bio      string
	Profile  []byte
	Resume   []byte
}

// UserService exposes the directory operations.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	ListUsersPage(ctx context.Context, req model.PageRequest) (*model.UserPage, error)
	UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
	Login(ctx context.Context, email, password string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfileImage(ctx context.Context, id uint, encoded string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Manager
	codec credentials.Codec
}

// NewUserService builds a UserService over repository, cache and codec.
func NewUserService(repo repository.UserRepository, cache *cache.Manager, codec credentials.Codec) UserService {
	return &userService{repo: repo, cache: cache, codec: codec}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// invalidate clears every cache view. A single row change can alter
// the by-id entry, the full list, and any page's membership or count.
func (s *userService) invalidate() {
	s.cache.EvictEverything()
}

// CreateUser hashes the password, persists the user and returns it
// with the store-assigned id.
func (s *userService) CreateUser(ctx context.Context, user *model.User, password string) (*model.User, error) {
	if strings.TrimSpace(password) == "" {
		return nil, apperrors.ErrPasswordRequired
	}

	taken, err := s.repo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := s.codec.Hash(password)
	if err != nil {
		return nil, err
	}
	user.ID = 0
	user.PasswordHash = hash

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.invalidate()
	return user, nil
}

// GetUser retrieves a user by id, cache first.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, ok := s.cache.Get(cache.UserByID, s.cacheKey(id)); ok {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		s.cache.Put(cache.UserByID, s.cacheKey(id), payload)
	}
	return user, nil
}

// ListUsers returns every user, cache first. An empty store yields an
// empty list, not an error.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	if data, ok := s.cache.Get(cache.UserList, listCacheKey); ok {
		var cached []model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}

	if payload, err := json.Marshal(users); err == nil {
		s.cache.Put(cache.UserList, listCacheKey, payload)
	}
	return users, nil
}

// ListUsersPage returns one page of users plus totals, cache first.
func (s *userService) ListUsersPage(ctx context.Context, req model.PageRequest) (*model.UserPage, error) {
	req = req.Normalize()
	key := req.CacheKey()

	if data, ok := s.cache.Get(cache.UserPages, key); ok {
		var cached model.UserPage
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	users, total, err := s.repo.FindPage(ctx, req.Offset(), req.Size, req.OrderClause())
	if err != nil {
		return nil, fmt.Errorf("page users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}

	page := &model.UserPage{
		Items:      users,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: int((total + int64(req.Size) - 1) / int64(req.Size)),
	}

	if payload, err := json.Marshal(page); err == nil {
		s.cache.Put(cache.UserPages, key, payload)
	}
	return page, nil
}

// UpdateUser merges the patch into the stored user field by field.
// Empty patch fields leave the stored values untouched; a non-blank
// password is re-hashed before it overwrites.
func (s *userService) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != "" {
		// A case-only change is still the same registered address, so
		// only genuinely new addresses go through the uniqueness probe.
		if !strings.EqualFold(patch.Email, user.Email) {
			taken, err := s.repo.ExistsByEmail(ctx, patch.Email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, apperrors.ErrEmailTaken
			}
		}
		user.Email = patch.Email
	}
	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Bio != "" {
		user.Bio = patch.Bio
	}
	if strings.TrimSpace(patch.Password) != "" {
		hash, err := s.codec.Hash(patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if len(patch.Profile) > 0 {
		user.Profile = patch.Profile
	}
	if len(patch.Resume) > 0 {
		user.Resume = patch.Resume
	}

	if err := s.repo.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.invalidate()
	return user, nil
}

// DeleteUser removes the user. Deleting an absent id is the store's
// concern and not re-validated here.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.invalidate()
	return nil
}

// Login validates credentials against the store. The lookup is never
// cached so a stale hash can't be served. Unknown email and wrong
// password report the same error, and the unknown-email path still
// pays for one digest comparison.
func (s *userService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.codec.Verify(password, credentials.DummyDigest)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find by email: %w", err)
	}

	if !s.codec.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// EmailExists reports whether the email is registered. Blank input is
// answered false without touching the store.
func (s *userService) EmailExists(ctx context.Context, email string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, nil
	}
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// UpdateProfileImage replaces the stored profile image with the
// decoded payload. A blank payload clears the image.
func (s *userService) UpdateProfileImage(ctx context.Context, id uint, encoded string) (*model.User, error) {
	user, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		user.Profile = nil
	} else {
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, apperrors.ErrInvalidImageEncoding
		}
		user.Profile = decoded
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile image: %w", err)
	}

	s.invalidate()
	return user, nil
}

func (s *userService) findByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
