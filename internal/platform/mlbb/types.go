package mlbb

import "encoding/json"

// envelope is the wrapper every MLBB web endpoint answers with.
// code 0 means success; data holds the endpoint-specific payload.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// loginData is the payload of a successful base/login response.
type loginData struct {
	JWT string `json:"jwt"`
}

// baseInfoData is the payload of a successful base/getBaseInfo response.
// roleId and zoneId arrive as either JSON numbers or strings depending on
// the API region, hence the flexible type.
type baseInfoData struct {
	Avatar           string     `json:"avatar"`
	HistoryRankLevel string     `json:"historyRankLevel"`
	Level            int        `json:"level"`
	Name             string     `json:"name"`
	RegCountry       string     `json:"reg_country"`
	RoleID           flexString `json:"roleId"`
	ZoneID           flexString `json:"zoneId"`
}

// flexString decodes a JSON string or number into its string form.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

// Profile is the account record returned by FetchProfile. It is only ever
// built from a complete, authenticated getBaseInfo response.
type Profile struct {
	Name      string
	Level     int
	RankLevel string
	Country   string
	RoleID    string
	ZoneID    string
	Avatar    string
}
