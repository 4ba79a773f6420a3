package types

import "errors"

var (
	ErrNotSuperAdmin    = errors.New("only the super admin may call this")
	ErrNotAuthority     = errors.New("caller is not the game authority")
	ErrGameExists       = errors.New("a game with this id already exists")
	ErrGameNotFound     = errors.New("game does not exist")
	ErrColleagueExists  = errors.New("colleague is already registered")
	ErrColleagueMissing = errors.New("colleague is not registered")
	ErrRewardCount      = errors.New("too many reward buckets in one game")
	ErrDuplicateRarity  = errors.New("a bucket with this rarity already exists")
	ErrRewardNotFound   = errors.New("reward bucket does not exist")
	ErrRewardNotEmpty   = errors.New("reward bucket still has stock")
	ErrRewardStock      = errors.New("reward bucket has not enough stock")
	ErrRewardSymbol     = errors.New("reward symbol does not match the bucket")
	ErrPendingFull      = errors.New("too many players waiting for a payout")
	ErrAlreadyPending   = errors.New("player already has an unresolved flip")
	ErrPlayerNotPending = errors.New("player has no unresolved flip")
	ErrFlipStarvation   = errors.New("bucket stock does not cover the pending players")
)
