package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// KeycloakClient is a client for interacting with the Keycloak API.
type KeycloakClient struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Realm        string
	HTTPClient   *http.Client

	// The client is shared by concurrent requests.
	mu    sync.RWMutex
	token string
}

type TokenResponse struct {
	Access           string `json:"access_token"`
	Refresh          string `json:"refresh_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
	Scope            string `json:"scope"`
}

type KeycloakError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorMessage     string `json:"errorMessage"`
}

// KeycloakUser is a user representation from the admin API.
type KeycloakUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Enabled   bool   `json:"enabled"`
}

type keycloakCredential struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Temporary bool   `json:"temporary"`
}

type keycloakNewUser struct {
	Username    string               `json:"username"`
	Email       string               `json:"email"`
	FirstName   string               `json:"firstName"`
	LastName    string               `json:"lastName"`
	Enabled     bool                 `json:"enabled"`
	Credentials []keycloakCredential `json:"credentials"`
}

type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewKeycloakClient creates a new instance of KeycloakClient.
func NewKeycloakClient(baseURL, clientID, clientSecret, realm string) *KeycloakClient {
	return &KeycloakClient{
		BaseURL:      strings.TrimRight(baseURL, "/"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Realm:        realm,
		HTTPClient:   &http.Client{},
	}
}

func (kc *KeycloakClient) tokenURL() string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", kc.BaseURL, kc.Realm)
}

func (kc *KeycloakClient) adminURL(format string, args ...interface{}) string {
	return fmt.Sprintf("%s/admin/realms/%s", kc.BaseURL, kc.Realm) + fmt.Sprintf(format, args...)
}

// GetToken retrieves a Keycloak access token using client_credentials.
func (kc *KeycloakClient) GetToken() error {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", kc.ClientID)
	data.Set("client_secret", kc.ClientSecret)

	tokens, err := kc.postForm(kc.tokenURL(), data)
	if err != nil {
		return fmt.Errorf("failed to obtain admin token: %w", err)
	}

	kc.mu.Lock()
	kc.token = tokens.Access
	kc.mu.Unlock()
	return nil
}

// Token returns the last admin token obtained by GetToken.
func (kc *KeycloakClient) Token() string {
	kc.mu.RLock()
	defer kc.mu.RUnlock()
	return kc.token
}

// CreateUser registers a user whose username is their email address and
// returns the new user id.
func (kc *KeycloakClient) CreateUser(email, password, firstName, lastName string) (string, error) {
	if err := kc.GetToken(); err != nil {
		return "", err
	}

	body, _ := json.Marshal(keycloakNewUser{
		Username:  email,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Enabled:   true,
		Credentials: []keycloakCredential{
			{Type: "password", Value: password, Temporary: false},
		},
	})

	respBody, statusCode, err := kc.makeRequest(http.MethodPost, kc.adminURL("/users"), "application/json", body)
	if statusCode == http.StatusConflict {
		return "", &HTTPError{Message: "An account with this email already exists.", Status: http.StatusConflict}
	}
	if err != nil {
		return "", err
	}
	if statusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to create user, status: %d, response: %s", statusCode, respBody)
	}

	user, err := kc.GetUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %s not found after creation", email)
	}
	return user.ID, nil
}

// GetUserByEmail looks a user up by exact email. Returns nil if there is none.
func (kc *KeycloakClient) GetUserByEmail(email string) (*KeycloakUser, error) {
	if err := kc.GetToken(); err != nil {
		return nil, err
	}

	endpoint := kc.adminURL("/users?exact=true&email=%s", url.QueryEscape(email))
	respBody, statusCode, err := kc.makeRequest(http.MethodGet, endpoint, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch user, status: %d", statusCode)
	}

	var users []KeycloakUser
	if err := json.Unmarshal(respBody, &users); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

// DeleteUser removes a user. A user that no longer exists is not an error.
func (kc *KeycloakClient) DeleteUser(userID string) error {
	if err := kc.GetToken(); err != nil {
		return err
	}

	respBody, statusCode, err := kc.makeRequest(http.MethodDelete,
		kc.adminURL("/users/%s", url.PathEscape(userID)), "application/json", nil)
	if statusCode == http.StatusNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if statusCode != http.StatusNoContent && statusCode != http.StatusOK {
		return fmt.Errorf("failed to delete user, status: %d, response: %s", statusCode, respBody)
	}
	return nil
}

// SendResetPassword emails the user a link to choose a new password.
func (kc *KeycloakClient) SendResetPassword(userID string) error {
	if err := kc.GetToken(); err != nil {
		return err
	}

	body, _ := json.Marshal([]string{"UPDATE_PASSWORD"})
	respBody, statusCode, err := kc.makeRequest(http.MethodPut,
		kc.adminURL("/users/%s/execute-actions-email", url.PathEscape(userID)), "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to send reset password email: %w", err)
	}
	if statusCode != http.StatusNoContent && statusCode != http.StatusOK {
		return fmt.Errorf("failed to send reset password email, status: %d, response: %s", statusCode, respBody)
	}
	return nil
}

// Login exchanges a username and password for tokens.
func (kc *KeycloakClient) Login(email, password string) (*TokenResponse, error) {
	data := url.Values{}
	data.Set("client_id", kc.ClientID)
	data.Set("client_secret", kc.ClientSecret)
	data.Set("grant_type", "password")
	data.Set("username", email)
	data.Set("password", password)
	data.Set("scope", "openid")

	return kc.postForm(kc.tokenURL(), data)
}

// Refresh exchanges a refresh token for a new token pair.
func (kc *KeycloakClient) Refresh(refreshToken string) (*TokenResponse, error) {
	data := url.Values{}
	data.Set("client_id", kc.ClientID)
	data.Set("client_secret", kc.ClientSecret)
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	return kc.postForm(kc.tokenURL(), data)
}

// Logout ends the session the refresh token belongs to.
func (kc *KeycloakClient) Logout(refreshToken string) error {
	data := url.Values{}
	data.Set("client_id", kc.ClientID)
	data.Set("client_secret", kc.ClientSecret)
	data.Set("refresh_token", refreshToken)

	resp, err := kc.HTTPClient.PostForm(
		fmt.Sprintf("%s/realms/%s/protocol/openid-connect/logout", kc.BaseURL, kc.Realm), data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return keycloakHTTPError(resp)
	}
	return nil
}

// postForm posts to a token endpoint and decodes the token response.
func (kc *KeycloakClient) postForm(endpoint string, data url.Values) (*TokenResponse, error) {
	resp, err := kc.HTTPClient.PostForm(endpoint, data)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, keycloakHTTPError(resp)
	}

	var tokenResponse TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, err
	}

	return &tokenResponse, nil
}

// keycloakHTTPError converts an error response into an HTTPError. Keycloak
// reports bad credentials and expired tokens as 400 invalid_grant, which
// is returned as 401.
func keycloakHTTPError(resp *http.Response) *HTTPError {
	bodyBytes, _ := io.ReadAll(resp.Body)

	var body KeycloakError
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		body.Error = resp.Status
		body.ErrorDescription = string(bodyBytes)
	}

	message := body.ErrorDescription
	if message == "" {
		message = body.ErrorMessage
	}
	if message == "" {
		message = body.Error
	}

	status := resp.StatusCode
	if body.Error == "invalid_grant" || (status == http.StatusBadRequest && body.ErrorDescription == "Invalid token") {
		status = http.StatusUnauthorized
	}

	return &HTTPError{Message: message, Status: status}
}

// Helper function for making HTTP requests to keycloak API.
func (kc *KeycloakClient) makeRequest(method, url, contentType string, body []byte) ([]byte, int, error) {
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", kc.Token()))
	req.Header.Set("Content-Type", contentType)

	resp, err := kc.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return respBody, resp.StatusCode, fmt.Errorf("error response: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return respBody, resp.StatusCode, nil
}
