// Package checkers is the authorization core: a catalogue of predicate
// routines that guard every state-changing operation. Routines only read from
// the database; on refusal they return a typed, localized *Error, and the
// first failing sub-check wins.
package checkers

import (
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/proxy"
	"github.com/grovesocial/grove/pkg/internal/security"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type Config struct {
	MaxFollows     int
	MaxConnections int
}

// ConfigFromSettings reads the process-wide limits once; routines never
// consult settings at call time.
func ConfigFromSettings() Config {
	return Config{
		MaxFollows:     viper.GetInt("users.max_follows"),
		MaxConnections: viper.GetInt("users.max_connections"),
	}
}

type Checkers struct {
	db     *gorm.DB
	cfg    Config
	tokens *security.Tokens
	proxy  *proxy.Policy
}

func New(db *gorm.DB, cfg Config, tokens *security.Tokens) *Checkers {
	return &Checkers{
		db:     db,
		cfg:    cfg,
		tokens: tokens,
		proxy:  proxy.NewPolicy(db),
	}
}

// Tokens exposes the signer so callers issuing reset or change-email links
// share the verifier the checkers use.
func (k *Checkers) Tokens() *security.Tokens {
	return k.tokens
}

func (k *Checkers) exists(model any, query string, args ...any) bool {
	var count int64
	if err := k.db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (k *Checkers) countOf(model any, query string, args ...any) int64 {
	var count int64
	if err := k.db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return 0
	}
	return count
}

func (k *Checkers) isFollowing(userID, targetID uint) bool {
	return k.exists(&models.Follow{}, "user_id = ? AND followed_user_id = ?", userID, targetID)
}

func (k *Checkers) isConnectedWith(userID, targetID uint) bool {
	return k.exists(&models.Connection{}, "user_id = ? AND target_user_id = ?", userID, targetID)
}

func (k *Checkers) hasBlockEitherWay(userID, targetID uint) bool {
	return k.exists(&models.Block{},
		"(blocker_id = ? AND blocked_user_id = ?) OR (blocker_id = ? AND blocked_user_id = ?)",
		userID, targetID, targetID, userID)
}

func (k *Checkers) membershipOf(userID, communityID uint) (models.CommunityMembership, bool) {
	var membership models.CommunityMembership
	if err := k.db.Where("user_id = ? AND community_id = ?", userID, communityID).
		First(&membership).Error; err != nil {
		return membership, false
	}
	return membership, true
}

func (k *Checkers) isMemberOf(userID, communityID uint) bool {
	_, ok := k.membershipOf(userID, communityID)
	return ok
}

func (k *Checkers) isBannedFrom(userID, communityID uint) bool {
	return k.exists(&models.CommunityBan{}, "user_id = ? AND community_id = ?", userID, communityID)
}

// isStaffOf reports whether the user is a moderator, administrator, or the
// creator of the community.
func (k *Checkers) isStaffOf(userID uint, community models.Community) bool {
	if community.CreatorID == userID {
		return true
	}
	membership, ok := k.membershipOf(userID, community.ID)
	if !ok {
		return false
	}
	return membership.IsAdministrator || membership.IsModerator
}

func (k *Checkers) isAdministratorOf(userID uint, community models.Community) bool {
	if community.CreatorID == userID {
		return true
	}
	membership, ok := k.membershipOf(userID, community.ID)
	return ok && membership.IsAdministrator
}

func (k *Checkers) isModeratorOf(userID uint, community models.Community) bool {
	membership, ok := k.membershipOf(userID, community.ID)
	return ok && membership.IsModerator
}
