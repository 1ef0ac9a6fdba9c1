package helper

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ProfilePics are the placeholder avatars assigned at signup.
var ProfilePics = []string{"/avatar1.png", "/avatar2.png", "/avatar3.png"}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomIndex returns a uniform index in [0, n). n must be positive.
func RandomIndex(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

func RandomAvatar() string {
	return ProfilePics[RandomIndex(len(ProfilePics))]
}

// NormalizeEmail lowercases and trims an address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
