package cache

import (
	"github.com/bornholm/mustdo/internal/core/model"
)

type CacheableUser struct {
	model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		getUserIDCacheKey(u.ID()),
		getUsernameCacheKey(u.Username()),
	}
}

func NewCacheableUser(user model.User) *CacheableUser {
	return &CacheableUser{user}
}

var (
	_ model.User = &CacheableUser{}
	_ Cacheable  = &CacheableUser{}
)

func getUserIDCacheKey(userID model.UserID) string {
	return "id|" + string(userID)
}

func getUsernameCacheKey(username string) string {
	return "username|" + username
}
