package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteProvider exchanges login codes against a code2session-style
// HTTP endpoint.
type RemoteProvider struct {
	endpoint   string
	httpClient *http.Client
}

func NewRemoteProvider(endpoint string) *RemoteProvider {
	return &RemoteProvider{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type remoteSessionResponse struct {
	OpenID  string `json:"openid"`
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (provider *RemoteProvider) Resolve(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrCodeRejected
	}

	requestURL := provider.endpoint
	if strings.Contains(requestURL, "?") {
		requestURL += "&js_code=" + url.QueryEscape(code)
	} else {
		requestURL += "?js_code=" + url.QueryEscape(code)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("build session request: %w", err)
	}

	response, err := provider.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("call identity provider: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity provider returned %d", response.StatusCode)
	}

	session := remoteSessionResponse{}
	if err := json.NewDecoder(response.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("decode session response: %w", err)
	}
	if session.ErrCode != 0 || session.OpenID == "" {
		return "", fmt.Errorf("%w: %s", ErrCodeRejected, session.ErrMsg)
	}
	return session.OpenID, nil
}
