package twitterclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserMapsProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/users/by/username/testuser", r.URL.Path)
		assert.Equal(t, USER_FIELDS, r.URL.Query().Get("user.fields"))
		jsonResponse(w, `{
			"data": {
				"id": "123",
				"username": "testuser",
				"name": "Test User",
				"description": "a bio",
				"profile_image_url": "https://pbs.twimg.com/x.jpg",
				"public_metrics": {
					"followers_count": 1000,
					"following_count": 50,
					"tweet_count": 321
				},
				"created_at": "2020-01-02T03:04:05.000Z"
			}
		}`)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	user := client.GetUser(context.Background(), "testuser")
	require.NotNil(t, user)

	assert.Equal(t, "123", user.Id)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "Test User", user.DisplayName)
	assert.Equal(t, "a bio", user.Bio)
	assert.Equal(t, "https://pbs.twimg.com/x.jpg", user.AvatarUrl)
	assert.Equal(t, 1000, user.FollowersCount)
	assert.Equal(t, 50, user.FollowingCount)
	assert.Equal(t, 321, user.TweetCount)
	// verified absent upstream defaults to false
	assert.False(t, user.Verified)
	assert.Equal(t, 2020, user.CreatedAt.Year())
}

func TestGetUserFailureReturnsNil(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	assert.Nil(t, client.GetUser(context.Background(), "testuser"))
}

func TestGetUserEmptyUsernameReturnsNil(t *testing.T) {
	client := New(Credentials{BearerToken: "b"}, AUTH_OAUTH2_APP)
	assert.Nil(t, client.GetUser(context.Background(), ""))
}

func TestGetUserMissingDataReturnsNil(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, `{"errors":[{"title":"Not Found Error"}]}`)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	assert.Nil(t, client.GetUser(context.Background(), "ghost"))
}

func TestGetUserByIdMapsProfile(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/users/123", r.URL.Path)
		jsonResponse(w, `{
			"data": {
				"id": "123",
				"username": "testuser",
				"name": "Test User",
				"verified": true
			}
		}`)
	})
	client := newTestClient(t, AUTH_OAUTH2_APP, handler)

	user := client.GetUserById(context.Background(), "123")
	require.NotNil(t, user)

	assert.Equal(t, "123", user.Id)
	assert.True(t, user.Verified)
	// counts absent upstream are zero-filled
	assert.Equal(t, 0, user.FollowersCount)
	assert.Equal(t, 0, user.FollowingCount)
	assert.Equal(t, 0, user.TweetCount)
	assert.Equal(t, "", user.Bio)
	assert.False(t, user.CreatedAt.IsZero())
}
