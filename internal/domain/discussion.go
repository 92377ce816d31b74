package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Post limits
const (
	MaxPostLength    = 2000
	PostHistoryLimit = 200
)

// Post is an immutable discussion message on an inventory.
type Post struct {
	ID          string      `json:"id"`
	InventoryID string      `json:"inventoryId"`
	AuthorID    string      `json:"userId"`
	Author      UserSummary `json:"user"`
	Content     string      `json:"content"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NormalizePostContent trims content and enforces the length bounds.
func NormalizePostContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxPostLength {
		return "", ErrContentTooLong
	}
	return content, nil
}

// RecentLikesLimit is how many likers a like summary lists.
const RecentLikesLimit = 10

// Like records that a user liked an item.
type Like struct {
	UserID    string      `json:"userId"`
	ItemID    string      `json:"itemId"`
	User      UserSummary `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
}

// LikeInfo summarizes the likes of an item from a caller's perspective.
type LikeInfo struct {
	ItemID    string `json:"itemId"`
	LikeCount int    `json:"likeCount"`
	IsLiked   bool   `json:"isLiked"`
	Recent    []Like `json:"recentLikes"`
}
