package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"iretro/core"
)

// Supabase implements Service over Supabase's GoTrue auth API and the
// PostgREST data API, with one liked_songs row per user.
type Supabase struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	deviceID   string
}

var _ Service = (*Supabase)(nil)

// NewSupabase constructs a Supabase-backed Service. Empty url or key
// yields a Disabled-equivalent client via Configured().
func NewSupabase(httpClient *http.Client, baseURL, anonKey, deviceID string) *Supabase {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Supabase{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		deviceID:   deviceID,
	}
}

// NewService returns the Supabase client when credentials are present and
// the Disabled gate otherwise.
func NewService(httpClient *http.Client, baseURL, anonKey, deviceID string) Service {
	s := NewSupabase(httpClient, baseURL, anonKey, deviceID)
	if !s.Configured() {
		return Disabled{}
	}
	return s
}

func (s *Supabase) Configured() bool {
	return s.baseURL != "" && s.anonKey != ""
}

// serviceError is the error body GoTrue and PostgREST return. Its message
// is surfaced verbatim to the user.
type serviceError struct {
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e serviceError) text(status int) string {
	for _, m := range []string{e.ErrorDescription, e.Msg, e.Message} {
		if m != "" {
			return m
		}
	}
	return fmt.Sprintf("service returned status %d", status)
}

func decodeServiceError(status int, body []byte) error {
	var se serviceError
	_ = json.Unmarshal(body, &se)
	return fmt.Errorf("%s", se.text(status))
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse covers both GoTrue shapes: the token endpoint returns the
// session fields at the top level, signup nests user/session depending on
// whether email confirmation is required.
type authResponse struct {
	AccessToken string   `json:"access_token"`
	User        *User    `json:"user"`
	Session     *Session `json:"session"`
	ID          string   `json:"id"`
	Email       string   `json:"email"`
}

func (s *Supabase) SignUp(ctx context.Context, email, password string) (SignUpResult, error) {
	if !s.Configured() {
		return SignUpResult{}, ErrNotConfigured
	}

	body, status, err := s.authPost(ctx, "/auth/v1/signup", credentials{Email: email, Password: password}, "")
	if err != nil {
		return SignUpResult{}, err
	}
	if status < 200 || status > 299 {
		return SignUpResult{}, decodeServiceError(status, body)
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return SignUpResult{}, fmt.Errorf("sign up: parsing response: %w", err)
	}

	result := SignUpResult{}
	switch {
	case resp.AccessToken != "" && resp.User != nil:
		// Confirmation disabled: GoTrue returns a full session inline.
		result.Session = &Session{AccessToken: resp.AccessToken, User: *resp.User}
		result.User = resp.User
	case resp.Session != nil && resp.Session.AccessToken != "":
		result.Session = resp.Session
		result.User = resp.User
	case resp.User != nil:
		result.User = resp.User
	case resp.ID != "":
		// Confirmation required: the body is the bare user object.
		result.User = &User{ID: resp.ID, Email: resp.Email}
	}
	return result, nil
}

func (s *Supabase) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	body, status, err := s.authPost(ctx, "/auth/v1/token?grant_type=password", credentials{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, decodeServiceError(status, body)
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("sign in: parsing response: %w", err)
	}
	if resp.AccessToken == "" || resp.User == nil {
		return nil, fmt.Errorf("sign in: no session in response")
	}
	return &Session{AccessToken: resp.AccessToken, User: *resp.User}, nil
}

func (s *Supabase) SignOut(ctx context.Context, session *Session) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if session == nil {
		return nil
	}

	body, status, err := s.authPost(ctx, "/auth/v1/logout", nil, session.AccessToken)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return decodeServiceError(status, body)
	}
	return nil
}

func (s *Supabase) GetUser(ctx context.Context, session *Session) (*User, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if session == nil {
		return nil, fmt.Errorf("no session")
	}

	req, err := s.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil, session.AccessToken)
	if err != nil {
		return nil, err
	}

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, decodeServiceError(status, body)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("get user: parsing response: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("get user: empty identity in response")
	}
	return &user, nil
}

// likedRow is the single per-user record in the liked_songs table.
type likedRow struct {
	UserID   string       `json:"user_id"`
	Songs    []core.Track `json:"songs"`
	DeviceID string       `json:"device_id,omitempty"`
}

func (s *Supabase) FetchLikedSongs(ctx context.Context, session *Session) ([]core.Track, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	if session == nil {
		return nil, fmt.Errorf("no session")
	}

	path := "/rest/v1/liked_songs?select=songs&user_id=eq." + url.QueryEscape(session.User.ID)
	req, err := s.newRequest(ctx, http.MethodGet, path, nil, session.AccessToken)
	if err != nil {
		return nil, err
	}

	body, status, err := s.do(req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, decodeServiceError(status, body)
	}

	var rows []likedRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("fetch liked songs: parsing response: %w", err)
	}
	// No row yet: the user has never synced. Not an error.
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Songs, nil
}

func (s *Supabase) SyncLikedSongs(ctx context.Context, session *Session, songs []core.Track) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if session == nil {
		return fmt.Errorf("no session")
	}

	row := likedRow{UserID: session.User.ID, Songs: songs, DeviceID: s.deviceID}
	payload, err := json.Marshal([]likedRow{row})
	if err != nil {
		return fmt.Errorf("sync liked songs: %w", err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, "/rest/v1/liked_songs?on_conflict=user_id", bytes.NewReader(payload), session.AccessToken)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	body, status, err := s.do(req)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return decodeServiceError(status, body)
	}
	return nil
}

func (s *Supabase) newRequest(ctx context.Context, method, path string, body io.Reader, token string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("cloud: %w", err)
	}
	req.Header.Set("apikey", s.anonKey)
	if token == "" {
		token = s.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (s *Supabase) authPost(ctx context.Context, path string, payload any, token string) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("cloud: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader([]byte("{}"))
	}

	req, err := s.newRequest(ctx, http.MethodPost, path, body, token)
	if err != nil {
		return nil, 0, err
	}
	return s.do(req)
}

func (s *Supabase) do(req *http.Request) ([]byte, int, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("cloud: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("cloud: %w", err)
	}
	return body, resp.StatusCode, nil
}
