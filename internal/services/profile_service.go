package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xiaogao007/Stickplanet/internal/models"
	"github.com/xiaogao007/Stickplanet/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingIdentity  = errors.New("missing identity subject")
	ErrSyncKeyForbidden = errors.New("sync key requires admin role")
	ErrSyncKeyNotFound  = errors.New("sync key not found")
)

const (
	syncKeyLength   = 32
	syncKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

type ProfileRepository interface {
	CountProfiles() (int64, error)
	FindByID(profileID string) (models.Profile, bool, error)
	FindByOpenID(openID string) (models.Profile, bool, error)
	Create(profile *models.Profile) error
	UpdateByID(profileID string, updates map[string]any) error
	ListAdminsWithSyncKeyHash() ([]models.Profile, error)
}

type LoginInfo struct {
	Nickname  string
	AvatarURL string
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// LoginOrRegister resolves an identity subject to a profile, creating
// one on first sight. The very first profile in the store is granted
// the admin role; returning users only get their nickname and avatar
// refreshed, never their role or progression counters.
func (service *ProfileService) LoginOrRegister(openID string, info LoginInfo) (models.Profile, error) {
	openID = strings.TrimSpace(openID)
	if openID == "" {
		return models.Profile{}, ErrMissingIdentity
	}

	profile, found, err := service.profiles.FindByOpenID(openID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("find profile: %w", err)
	}

	if found {
		updates := map[string]any{}
		if nickname := strings.TrimSpace(info.Nickname); nickname != "" {
			updates["nickname"] = nickname
			profile.Nickname = nickname
		}
		if avatar := strings.TrimSpace(info.AvatarURL); avatar != "" {
			updates["avatar_url"] = avatar
			profile.AvatarURL = avatar
		}
		if len(updates) > 0 {
			if err := service.profiles.UpdateByID(profile.ID, updates); err != nil {
				return models.Profile{}, fmt.Errorf("refresh profile: %w", err)
			}
		}
		return profile, nil
	}

	count, err := service.profiles.CountProfiles()
	if err != nil {
		return models.Profile{}, fmt.Errorf("count profiles: %w", err)
	}

	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}
	nickname := strings.TrimSpace(info.Nickname)
	if nickname == "" {
		nickname = models.DefaultNickname
	}

	profile = models.Profile{
		OpenID:    openID,
		Nickname:  nickname,
		AvatarURL: strings.TrimSpace(info.AvatarURL),
		Role:      role,
		Level:     1,
	}
	if err := service.profiles.Create(&profile); err != nil {
		return models.Profile{}, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

func (service *ProfileService) FindByID(profileID string) (models.Profile, bool, error) {
	return service.profiles.FindByID(profileID)
}

// RegenerateSyncKey issues a fresh catalog sync key for an admin and
// stores only its bcrypt hash. The plaintext is returned exactly once.
func (service *ProfileService) RegenerateSyncKey(profileID string) (string, error) {
	profile, found, err := service.profiles.FindByID(profileID)
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}
	if !found || !profile.IsAdmin() {
		return "", ErrSyncKeyForbidden
	}

	key, err := security.RandomString(syncKeyLength, syncKeyAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate sync key: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash sync key: %w", err)
	}
	if err := service.profiles.UpdateByID(profile.ID, map[string]any{"sync_key_hash": string(hash)}); err != nil {
		return "", fmt.Errorf("store sync key: %w", err)
	}
	return key, nil
}

// ResolveSyncKey finds the admin profile whose stored hash matches the
// presented key.
func (service *ProfileService) ResolveSyncKey(key string) (models.Profile, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.Profile{}, ErrSyncKeyNotFound
	}

	admins, err := service.profiles.ListAdminsWithSyncKeyHash()
	if err != nil {
		return models.Profile{}, fmt.Errorf("list admins: %w", err)
	}
	for index := range admins {
		hash := strings.TrimSpace(admins[index].SyncKeyHash)
		if hash == "" {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil {
			return admins[index], nil
		}
	}
	return models.Profile{}, ErrSyncKeyNotFound
}
