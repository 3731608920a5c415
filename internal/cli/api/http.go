package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ShopAdmin/internal/cli/repo"
)

const cookieName = "auth_token"

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req, token)
}

// GetJSON sends a GET request with the auth cookie when token is non-empty.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Accept", "application/json")
	return do(req, token)
}

func do(req *http.Request, token string) (*http.Response, []byte, error) {
	if token != "" {
		req.Header.Set("Cookie", cookieName+"="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его в store.
func PersistAuthFromResponse(resp *http.Response, store repo.TokenStore) error {
	for _, c := range resp.Cookies() {
		if c.Name == cookieName && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

// FieldErrors decodes a 422 body of the form {"errors": {"field": ["msg"]}}.
func FieldErrors(body []byte) (map[string][]string, error) {
	var v struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v.Errors, nil
}
