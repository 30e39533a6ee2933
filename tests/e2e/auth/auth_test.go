//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"solar-dispatch/internal/domain/user"
	"solar-dispatch/internal/handler/dto/request"
	resdto "solar-dispatch/internal/handler/dto/response"
	"solar-dispatch/tests/common/authtest"
	"solar-dispatch/tests/common/dbtest"
	"solar-dispatch/tests/common/httptest"
	"solar-dispatch/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "manager@example.com", string(user.RoleDispatchManager))
	dbtest.CreateTestUser(s.T(), s.DB, "team@example.com", string(user.RoleConstructionTeam))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleWarehouse))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "manager@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "a known user logs in",
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown users are rejected like a bad password",
		},
		{
			name:           "wrong password",
			email:          "manager@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "a wrong password is rejected",
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "inactive accounts cannot log in",
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "an empty email is a bad request",
		},
		{
			name:           "empty password",
			email:          "manager@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty password is a bad request",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus != http.StatusOK {
				require.Nil(t, httptest.ExtractCookie(w, "access_token"))
				return
			}

			var loginRes resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
			require.NotEmpty(t, loginRes.AccessToken)
			require.NotNil(t, loginRes.User)
			require.Equal(t, tt.email, loginRes.User.Email)
			require.Equal(t, string(user.RoleDispatchManager), loginRes.User.Role)

			accessCookie := httptest.ExtractCookie(w, "access_token")
			require.NotNil(t, accessCookie)
			require.Equal(t, loginRes.AccessToken, accessCookie.Value)

			var lastLogin any
			err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login not updated")
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "valid token",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "manager@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "invalid token",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.setupToken())
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
		})
	}

	s.Run("cookie session is cleared", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "team@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "seeded admin",
			setupUser: func() (string, string, string) {
				return "admin@example.com", string(user.RoleAdmin),
					authtest.LoginUser(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "construction team",
			setupUser: func() (string, string, string) {
				email, role := "team2@example.com", string(user.RoleConstructionTeam)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid token",
			setupUser:      func() (string, string, string) { return "", "", "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setupUser:      func() (string, string, string) { return "", "", "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email)
				require.Contains(t, body, role)
				require.NotContains(t, body, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleDispatchManager))
		expired := s.jwt.CreateExpiredToken(t, userID, user.RoleDispatchManager)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token for a removed user", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), user.RoleDispatchManager)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodPost, "/api/dispatch/codes"},
			{http.MethodPost, "/api/dispatch/draws"},
			{http.MethodGet, "/api/warehouse/customers"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, endpoint.path)
		}
	})
}
