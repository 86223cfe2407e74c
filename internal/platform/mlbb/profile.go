package mlbb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FetchProfile retrieves the account's base info using the session's bearer
// token. The returned Profile mirrors the response fields with no
// transformation beyond type coercion; a partial Profile is never returned.
func (c *Client) FetchProfile(ctx context.Context, session *Session) (*Profile, error) {
	if !session.Valid() {
		return nil, fmt.Errorf("%w: session is no longer valid", ErrSessionExpired)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+session.JWT).
		SetFormData(map[string]string{
			"roleId": session.RoleID,
			"zoneId": session.ZoneID,
		}).
		Post(c.baseInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base info request: %v", ErrNetwork, err)
	}

	env, decErr := decodeEnvelope(resp)
	switch sc := resp.StatusCode(); {
	case sc == http.StatusUnauthorized || sc == http.StatusForbidden:
		c.log.Error().Int("status", sc).Msg("base info token rejected")
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, apiError(resp, env))
	case sc >= 400:
		c.log.Error().Int("status", sc).Msg("base info unavailable")
		return nil, fmt.Errorf("%w: %s", ErrNetwork, apiError(resp, env))
	}
	if decErr != nil {
		return nil, decErr
	}
	// The service reports a stale token through the envelope, not the
	// HTTP status, so any non-zero code on this endpoint means the
	// session no longer authorizes the account.
	if env.Code != 0 {
		c.log.Error().Int("code", env.Code).Str("message", env.Message).Msg("base info rejected")
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, apiError(resp, env))
	}

	var data baseInfoData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: decode base info: %v", ErrParse, err)
	}

	profile := &Profile{
		Name:      data.Name,
		Level:     data.Level,
		RankLevel: data.HistoryRankLevel,
		Country:   data.RegCountry,
		RoleID:    string(data.RoleID),
		ZoneID:    string(data.ZoneID),
		Avatar:    data.Avatar,
	}

	c.log.Info().Str("name", profile.Name).Int("level", profile.Level).Msg("profile fetched")
	return profile, nil
}
