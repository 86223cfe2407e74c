package mlbb

import (
	"context"
	"encoding/json"
	"fmt"
)

// SendVerificationCode asks the service to email a one-time code to the
// address bound to the given role/zone pair.
func (c *Client) SendVerificationCode(ctx context.Context, roleID, zoneID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"roleId": roleID,
			"zoneId": zoneID,
		}).
		Post(c.sendVcURL)
	if err != nil {
		return fmt.Errorf("%w: send verification code: %v", ErrNetwork, err)
	}

	env, decErr := decodeEnvelope(resp)
	if resp.StatusCode() >= 400 {
		c.log.Error().Int("status", resp.StatusCode()).Msg("sendVc rejected")
		return fmt.Errorf("%w: %s", ErrAuthentication, apiError(resp, env))
	}
	if decErr != nil {
		return decErr
	}
	if env.Code != 0 {
		c.log.Error().Int("code", env.Code).Str("message", env.Message).Msg("sendVc rejected")
		return fmt.Errorf("%w: %s", ErrAuthentication, apiError(resp, env))
	}

	c.log.Info().Str("role_id", roleID).Str("zone_id", zoneID).Msg("verification code sent")
	return nil
}

// Login exchanges the emailed verification code for a Session. The referer
// argument is the numeric pair the web login page generates per attempt.
// No Session is produced on any error path.
func (c *Client) Login(ctx context.Context, roleID, zoneID, code, referer string) (*Session, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"roleId":  roleID,
			"zoneId":  zoneID,
			"vc":      code,
			"referer": referer,
			"type":    "web",
		}).
		Post(c.loginURL)
	if err != nil {
		return nil, fmt.Errorf("%w: login request: %v", ErrNetwork, err)
	}

	env, decErr := decodeEnvelope(resp)
	if resp.StatusCode() >= 400 {
		c.log.Error().Int("status", resp.StatusCode()).Msg("login rejected")
		return nil, fmt.Errorf("%w: %s", ErrAuthentication, apiError(resp, env))
	}
	if decErr != nil {
		return nil, decErr
	}
	if env.Code != 0 {
		c.log.Error().Int("code", env.Code).Str("message", env.Message).Msg("login rejected")
		return nil, fmt.Errorf("%w: %s", ErrAuthentication, apiError(resp, env))
	}

	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: decode login data: %v", ErrParse, err)
	}
	if data.JWT == "" {
		return nil, fmt.Errorf("%w: login response carries no token", ErrParse)
	}

	session := newSession(data.JWT, roleID, zoneID)
	c.log.Info().Str("role_id", roleID).Str("zone_id", zoneID).
		Time("expires_at", session.ExpiresAt).Msg("login successful")

	return session, nil
}
