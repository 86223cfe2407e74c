package mlbb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSession(t *testing.T, roleID, zoneID string) *Session {
	t.Helper()
	return newSession(testJWT(t, time.Now().Add(time.Hour)), roleID, zoneID)
}

func TestFetchProfile_Success(t *testing.T) {
	session := activeSession(t, "123456789", "2001")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+session.JWT, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "123456789", r.PostFormValue("roleId"))
		assert.Equal(t, "2001", r.PostFormValue("zoneId"))

		w.Write([]byte(`{"code":0,"message":"ok","data":{
			"avatar":"https://cdn.example.com/a.png",
			"historyRankLevel":"Mythic",
			"level":45,
			"name":"Hero1",
			"reg_country":"ID",
			"roleId":"123456789",
			"zoneId":"2001"
		}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), session)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Hero1", profile.Name)
	assert.Equal(t, 45, profile.Level)
	assert.Equal(t, "Mythic", profile.RankLevel)
	assert.Equal(t, "ID", profile.Country)
	assert.Equal(t, "123456789", profile.RoleID)
	assert.Equal(t, "2001", profile.ZoneID)
	assert.Equal(t, "https://cdn.example.com/a.png", profile.Avatar)
}

func TestFetchProfile_NumericIDs(t *testing.T) {
	session := activeSession(t, "123456789", "2001")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":0,"message":"ok","data":{
			"name":"Hero1","level":45,"historyRankLevel":"Mythic",
			"reg_country":"ID","roleId":123456789,"zoneId":2001
		}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, "123456789", profile.RoleID)
	assert.Equal(t, "2001", profile.ZoneID)
}

func TestFetchProfile_TokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":401,"message":"token expired","data":null}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), activeSession(t, "123456789", "2001"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, profile)
}

func TestFetchProfile_EnvelopeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":2005,"message":"invalid token","data":null}`))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), activeSession(t, "123456789", "2001"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, profile)
}

func TestFetchProfile_LocallyExpired(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	expired := newSession(testJWT(t, time.Now().Add(-time.Hour)), "123456789", "2001")

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), expired)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Nil(t, profile)
	assert.Zero(t, calls.Load(), "no request should be made with an expired session")
}

func TestFetchProfile_ParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: srv.URL})
	profile, err := c.FetchProfile(context.Background(), activeSession(t, "123456789", "2001"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, profile)
}

func TestFetchProfile_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, Config{BaseInfoURL: url})
	profile, err := c.FetchProfile(context.Background(), activeSession(t, "123456789", "2001"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Nil(t, profile)
}
