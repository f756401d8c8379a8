package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(), "test-secret", "shopfront_session", time.Hour)
}

func TestManager_RoundTrip(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	sess := manager.New()
	sess.SetUser(1, "user1")
	sess.SetCart(map[string]int{"3": 2})
	require.NoError(t, manager.Save(ctx, sess))

	cookie, err := manager.CookieValue(sess)
	require.NoError(t, err)

	loaded := manager.Load(ctx, cookie)
	assert.False(t, loaded.Fresh())
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, uint(1), loaded.UserID())
	assert.Equal(t, "user1", loaded.Username())
	assert.Equal(t, map[string]int{"3": 2}, loaded.Cart())
}

func TestManager_Load_EmptyCookie(t *testing.T) {
	manager := newTestManager()

	sess := manager.Load(context.Background(), "")
	assert.True(t, sess.Fresh())
	assert.False(t, sess.LoggedIn())
	assert.Empty(t, sess.Cart())
}

func TestManager_Load_TamperedCookie(t *testing.T) {
	manager := newTestManager()
	ctx := context.Background()

	sess := manager.New()
	sess.SetUser(1, "user1")
	require.NoError(t, manager.Save(ctx, sess))

	// A token signed with a different secret is rejected and the visitor
	// gets a fresh anonymous session.
	other := NewManager(manager.store, "wrong-secret", "shopfront_session", time.Hour)
	cookie, err := other.CookieValue(sess)
	require.NoError(t, err)

	loaded := manager.Load(ctx, cookie)
	assert.True(t, loaded.Fresh())
	assert.False(t, loaded.LoggedIn())
	assert.NotEqual(t, sess.ID, loaded.ID)
}

func TestManager_Load_GarbageCookie(t *testing.T) {
	manager := newTestManager()

	loaded := manager.Load(context.Background(), "not-a-jwt")
	assert.True(t, loaded.Fresh())
}

func TestManager_Load_ExpiredToken(t *testing.T) {
	store := NewMemoryStore()
	manager := NewManager(store, "test-secret", "shopfront_session", -time.Minute)

	sess := manager.New()
	cookie, err := manager.CookieValue(sess)
	require.NoError(t, err)

	loaded := manager.Load(context.Background(), cookie)
	assert.True(t, loaded.Fresh())
	assert.NotEqual(t, sess.ID, loaded.ID)
}

func TestManager_Load_UnknownSessionID(t *testing.T) {
	manager := newTestManager()

	// Valid signature but nothing stored under the ID.
	sess := manager.New()
	cookie, err := manager.CookieValue(sess)
	require.NoError(t, err)

	loaded := manager.Load(context.Background(), cookie)
	assert.True(t, loaded.Fresh())
}

func TestManager_ParseToken_RejectsNonHMAC(t *testing.T) {
	manager := newTestManager()

	// alg=none tokens must never be accepted.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "some-id"})
	value, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.parseToken(value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession_FlashLifecycle(t *testing.T) {
	sess := &Session{}

	assert.Nil(t, sess.PopFlashes())

	sess.Flash("Added to cart")
	sess.Flash("Cart updated")

	flashes := sess.PopFlashes()
	assert.Equal(t, []string{"Added to cart", "Cart updated"}, flashes)
	assert.Nil(t, sess.PopFlashes())
}

func TestSession_ClearKeepsNothing(t *testing.T) {
	sess := &Session{}
	sess.SetUser(7, "user1")
	sess.SetCart(map[string]int{"1": 1})
	sess.Flash("Logged in")

	sess.Clear()

	assert.False(t, sess.LoggedIn())
	assert.Empty(t, sess.Cart())
	assert.Nil(t, sess.PopFlashes())
	assert.True(t, sess.Modified())
}

func TestSession_CartReturnsCopy(t *testing.T) {
	sess := &Session{}
	sess.SetCart(map[string]int{"1": 1})

	cart := sess.Cart()
	cart["1"] = 99

	assert.Equal(t, 1, sess.Cart()["1"])
}
