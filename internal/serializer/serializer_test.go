package serializer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/openfab/printhub/internal/access"
	"github.com/openfab/printhub/internal/model"
	"github.com/openfab/printhub/internal/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScopes(t *testing.T) {
	assert.Equal(t, []string{"admin", "operator"}, serializer.ParseScopes("scope:admin,operator"))
	assert.Equal(t, []string{"always"}, serializer.ParseScopes("always"))
	assert.Nil(t, serializer.ParseScopes("something-else"))
}

func TestViewerFor(t *testing.T) {
	userID := uuid.New()

	t.Run("global admin holds every scope", func(t *testing.T) {
		v := serializer.ViewerFor(access.Principal{UserID: userID, Admin: true}, access.Memberships{})

		assert.True(t, v.Can("admin"))
		assert.True(t, v.Can("operator"))
		assert.True(t, v.Can("group_admin"))
	})

	t.Run("shop admin holds admin and operator", func(t *testing.T) {
		v := serializer.ViewerFor(access.Principal{UserID: userID}, access.Memberships{
			Shop: &model.UserShop{AccountType: model.AccountAdmin, Active: true},
		})

		assert.True(t, v.Can("admin"))
		assert.True(t, v.Can("operator"))
		assert.False(t, v.Can("group_admin"))
	})

	t.Run("deactivated membership grants nothing", func(t *testing.T) {
		v := serializer.ViewerFor(access.Principal{UserID: userID}, access.Memberships{
			Shop: &model.UserShop{AccountType: model.AccountAdmin, Active: false},
		})

		assert.False(t, v.Can("admin"))
	})

	t.Run("customer holds no scopes", func(t *testing.T) {
		v := serializer.ViewerFor(access.Principal{UserID: userID}, access.Memberships{
			Shop: &model.UserShop{AccountType: model.AccountCustomer, Active: true},
		})

		assert.False(t, v.Can("admin"))
		assert.False(t, v.Can("operator"))
	})
}

func TestSanitize(t *testing.T) {
	shop := &model.Shop{
		ID:      uuid.New(),
		Name:    "North Shop",
		Balance: 12500,
		Active:  true,
	}

	adminViewer := serializer.ViewerFor(access.Principal{UserID: uuid.New()}, access.Memberships{
		Shop: &model.UserShop{AccountType: model.AccountAdmin, Active: true},
	})
	customerViewer := serializer.ViewerFor(access.Principal{UserID: uuid.New()}, access.Memberships{
		Shop: &model.UserShop{AccountType: model.AccountCustomer, Active: true},
	})

	t.Run("guarded fields hidden from customers", func(t *testing.T) {
		out, ok := serializer.Sanitize(shop, customerViewer).(map[string]any)
		require.True(t, ok)

		assert.Equal(t, "North Shop", out["name"])
		assert.NotContains(t, out, "balance")
	})

	t.Run("guarded fields visible to shop admins", func(t *testing.T) {
		out, ok := serializer.Sanitize(shop, adminViewer).(map[string]any)
		require.True(t, ok)

		assert.Equal(t, int64(12500), out["balance"])
	})

	t.Run("uuids become strings", func(t *testing.T) {
		out := serializer.Sanitize(shop, adminViewer).(map[string]any)
		assert.Equal(t, shop.ID.String(), out["id"])
	})

	t.Run("email is hidden from customers on user rows", func(t *testing.T) {
		user := &model.User{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com"}

		out := serializer.Sanitize(user, customerViewer).(map[string]any)
		assert.NotContains(t, out, "email")

		out = serializer.Sanitize(user, adminViewer).(map[string]any)
		assert.Equal(t, "ada@example.com", out["email"])
	})

	t.Run("slices are walked", func(t *testing.T) {
		shops := []*model.Shop{shop, shop}

		out, ok := serializer.Sanitize(shops, customerViewer).([]any)
		require.True(t, ok)
		require.Len(t, out, 2)
		assert.NotContains(t, out[0].(map[string]any), "balance")
	})

	t.Run("nil passes through", func(t *testing.T) {
		var nilShop *model.Shop
		assert.Nil(t, serializer.Sanitize(nilShop, adminViewer))
	})
}
