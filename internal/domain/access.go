package domain

import (
	"fmt"
	"strings"
	"time"
)

// AccessLevel is the effective permission of a caller on an inventory.
// Levels are totally ordered: NONE < READ < WRITE < OWNER.
type AccessLevel int

const (
	LevelNone AccessLevel = iota
	LevelRead
	LevelWrite
	LevelOwner
)

const (
	AccessLevelNone  = "NONE"
	AccessLevelRead  = "READ"
	AccessLevelWrite = "WRITE"
	AccessLevelOwner = "OWNER"
)

func (l AccessLevel) String() string {
	switch l {
	case LevelRead:
		return AccessLevelRead
	case LevelWrite:
		return AccessLevelWrite
	case LevelOwner:
		return AccessLevelOwner
	default:
		return AccessLevelNone
	}
}

// CanRead reports whether the level allows viewing the inventory and its children.
func (l AccessLevel) CanRead() bool { return l >= LevelRead }

// CanWrite reports whether the level allows mutating items and posting.
func (l AccessLevel) CanWrite() bool { return l >= LevelWrite }

// IsOwner reports whether the level is the owner's.
func (l AccessLevel) IsOwner() bool { return l == LevelOwner }

// AtLeast reports whether l satisfies the required level.
func (l AccessLevel) AtLeast(required AccessLevel) bool { return l >= required }

// MarshalText encodes the level as its upper-case name.
func (l AccessLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts any level name, case-insensitively.
func (l *AccessLevel) UnmarshalText(text []byte) error {
	switch strings.ToUpper(strings.TrimSpace(string(text))) {
	case AccessLevelNone:
		*l = LevelNone
	case AccessLevelRead:
		*l = LevelRead
	case AccessLevelWrite:
		*l = LevelWrite
	case AccessLevelOwner:
		*l = LevelOwner
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAccessLevel, string(text))
	}
	return nil
}

// ParseGrantLevel parses a level that can be stored on an access grant (READ or WRITE).
func ParseGrantLevel(s string) (AccessLevel, error) {
	var l AccessLevel
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return LevelNone, err
	}
	if l != LevelRead && l != LevelWrite {
		return LevelNone, fmt.Errorf("%w: %s cannot be granted", ErrInvalidAccessLevel, l)
	}
	return l, nil
}

// InventoryACL is the slice of an inventory the access rules look at.
type InventoryACL struct {
	InventoryID string
	OwnerID     string
	IsPublic    bool
}

// InventoryAccess is an explicit grant of a level on an inventory to a user.
type InventoryAccess struct {
	InventoryID string      `json:"inventoryId"`
	UserID      string      `json:"userId"`
	UserName    string      `json:"userName,omitempty"`
	UserEmail   string      `json:"userEmail,omitempty"`
	Level       AccessLevel `json:"accessLevel"`
	CreatedAt   time.Time   `json:"createdAt"`
}
