//go:build e2e

package dispatch_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"solar-dispatch/internal/domain/user"
	resdto "solar-dispatch/internal/handler/dto/response"
	"solar-dispatch/internal/pkg/notify"
	"solar-dispatch/internal/pkg/ptr"
	"solar-dispatch/tests/common/authtest"
	"solar-dispatch/tests/common/dbtest"
	"solar-dispatch/tests/common/httptest"
	"solar-dispatch/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	codesURL     = "/api/dispatch/codes"
	validateURL  = "/api/dispatch/codes/validate"
	drawsURL     = "/api/dispatch/draws"
	blocklistURL = "/api/dispatch/blocked-salesmen"
	poolURL      = "/api/dispatch/pool"
)

type dispatchSuite struct {
	e2e.SharedSuite

	managerID    uuid.UUID
	managerToken string
	teamID       uuid.UUID
	teamToken    string
}

func TestDispatchSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(dispatchSuite))
}

func (s *dispatchSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.managerID, s.managerToken = authtest.CreateAndLoginWithID(s.T(), s.DB, s.Router,
		"manager@example.com", string(user.RoleDispatchManager))
	s.teamID, s.teamToken = authtest.CreateAndLoginWithID(s.T(), s.DB, s.Router,
		"team@example.com", string(user.RoleConstructionTeam))
}

func (s *dispatchSuite) issue(blocked []string) resdto.GeneratedCodeResponse {
	t := s.T()
	var body any
	if blocked != nil {
		body = map[string]any{"blocked_salesmen": blocked}
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, codesURL, body, s.managerToken)

	var res resdto.GeneratedCodeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	require.Len(t, res.Code, 4)
	return res
}

func (s *dispatchSuite) draw(code, town string) (int, resdto.DrawResponse, string) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, drawsURL, map[string]any{
		"code":       code,
		"team_name":  "北城施工队",
		"team_phone": "13900000000",
		"town":       town,
	}, s.teamToken)

	var res resdto.DrawResponse
	if w.Code == http.StatusOK || w.Code == http.StatusCreated {
		httptest.AssertSuccessResponse(s.T(), w, w.Code, &res)
	}
	return w.Code, res, w.Body.String()
}

func (s *dispatchSuite) codeUsed(id uuid.UUID) (bool, *uuid.UUID) {
	var used bool
	var usedBy *uuid.UUID
	err := s.DB.QueryRow(s.T().Context(), "SELECT used, used_by FROM verification_codes WHERE id = $1", id).Scan(&used, &usedBy)
	require.NoError(s.T(), err)
	return used, usedBy
}

func (s *dispatchSuite) TestDrawFlow() {
	s.Run("issue, validate, draw and burn", func() {
		t := s.T()
		shipped := ptr.Of("2024-01-01")
		eligible := dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{
			Address: "吴城镇南街3号", Salesman: "王五", SquareSteelOutboundDate: shipped,
		})
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{
			Address: "吴城镇北街8号", Salesman: "李四", SquareSteelOutboundDate: shipped,
		})
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇西街1号", Salesman: "王五"})

		issued := s.issue([]string{"李四"})
		require.Equal(t, []string{"李四"}, issued.BlockedSalesmen)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateURL, map[string]any{"code": issued.Code}, s.teamToken)
		var validation resdto.ValidationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &validation)
		require.True(t, validation.Valid)
		require.Equal(t, []string{"李四"}, validation.BlockedSalesmen)

		used, _ := s.codeUsed(issued.CodeID)
		require.False(t, used, "validation must not consume the code")

		status, res, body := s.draw(issued.Code, "吴城镇")
		require.Equal(t, http.StatusCreated, status, body)
		require.True(t, res.Drawn)
		require.NotNil(t, res.Winner)
		require.Equal(t, eligible, res.Winner.ID)
		require.Equal(t, 1, res.PoolSize)
		require.Empty(t, res.Warning)
		require.NotEmpty(t, res.RevealTicks)
		require.Equal(t, eligible, res.RevealTicks[len(res.RevealTicks)-1])

		var team, phone, dispatchDate *string
		err := s.DB.QueryRow(t.Context(),
			"SELECT construction_team, construction_team_phone, dispatch_date FROM customers WHERE id = $1", eligible).
			Scan(&team, &phone, &dispatchDate)
		require.NoError(t, err)
		require.Equal(t, "北城施工队", ptr.Deref(team))
		require.Equal(t, "13900000000", ptr.Deref(phone))
		require.Equal(t, time.Now().In(s.Config.App.Location()).Format(time.DateOnly), ptr.Deref(dispatchDate))

		used, usedBy := s.codeUsed(issued.CodeID)
		require.True(t, used)
		require.NotNil(t, usedBy)
		require.Equal(t, s.teamID, *usedBy)

		var audits int
		err = s.DB.QueryRow(t.Context(), "SELECT count(*) FROM dispatch_audit_log WHERE customer_id = $1", eligible).Scan(&audits)
		require.NoError(t, err)
		require.Positive(t, audits)
	})

	s.Run("a burned code cannot draw again", func() {
		t := s.T()
		shipped := ptr.Of("2024-01-01")
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇", SquareSteelOutboundDate: shipped})
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇", SquareSteelOutboundDate: shipped})

		issued := s.issue([]string{})
		status, _, body := s.draw(issued.Code, "")
		require.Equal(t, http.StatusCreated, status, body)

		status, _, body = s.draw(issued.Code, "")
		require.Equal(t, http.StatusConflict, status, body)
		require.Contains(t, body, "already used")
	})

	s.Run("empty pool keeps the code usable", func() {
		t := s.T()
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇"})

		issued := s.issue(nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, drawsURL, map[string]any{
			"code":       issued.Code,
			"team_name":  "北城施工队",
			"team_phone": "13900000000",
		}, s.teamToken)

		var res resdto.DrawResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Drawn)
		require.Nil(t, res.Winner)
		httptest.AssertNotified(t, w, notify.LevelInfo, "No eligible customers")

		used, _ := s.codeUsed(issued.CodeID)
		require.False(t, used)

		var reserved *uuid.UUID
		err := s.DB.QueryRow(t.Context(), "SELECT reserved_by FROM verification_codes WHERE id = $1", issued.CodeID).Scan(&reserved)
		require.NoError(t, err)
		require.Nil(t, reserved, "reservation must be released")
	})

	s.Run("expired code", func() {
		t := s.T()
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{SquareSteelOutboundDate: ptr.Of("2024-01-01")})
		dbtest.CreateTestCode(t, s.DB, "4321", s.managerID, nil, time.Now().Add(-25*time.Hour))

		status, _, body := s.draw("4321", "")
		require.Equal(t, http.StatusGone, status, body)
	})

	s.Run("unknown code", func() {
		status, _, body := s.draw("9999", "")
		require.Equal(s.T(), http.StatusNotFound, status, body)
	})

	s.Run("unknown town", func() {
		issued := s.issue(nil)
		status, _, body := s.draw(issued.Code, "火星镇")
		require.Equal(s.T(), http.StatusBadRequest, status, body)
	})
}

func (s *dispatchSuite) TestBlocklistSnapshot() {
	s.Run("omitted list snapshots the saved one", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, blocklistURL,
			map[string]any{"salesmen": []string{"李四", " ", "李四", "赵六"}}, s.managerToken)
		var saved resdto.BlocklistResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &saved)
		require.Equal(t, []string{"李四", "赵六"}, saved.Salesmen)

		issued := s.issue(nil)
		require.ElementsMatch(t, []string{"李四", "赵六"}, issued.BlockedSalesmen)

		// later edits do not reach codes already issued
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, blocklistURL,
			map[string]any{"salesmen": []string{}}, s.managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var blocked []string
		err := s.DB.QueryRow(t.Context(), "SELECT blocked_salesmen FROM verification_codes WHERE id = $1", issued.CodeID).Scan(&blocked)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"李四", "赵六"}, blocked)
	})

	s.Run("pool summary honors the saved list", func() {
		t := s.T()
		shipped := ptr.Of("2024-01-01")
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇", Salesman: "王五", SquareSteelOutboundDate: shipped})
		dbtest.CreateTestCustomer(t, s.DB, dbtest.CustomerRow{Address: "吴城镇", Salesman: "李四", SquareSteelOutboundDate: shipped})

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, blocklistURL,
			map[string]any{"salesmen": []string{"李四"}}, s.managerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, poolURL, nil, s.teamToken)
		var pool map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pool)
		require.Equal(t, float64(1), pool["total"])
	})
}

func (s *dispatchSuite) TestListCodes() {
	s.Run("keyset pages newest first", func() {
		t := s.T()
		base := time.Now().Add(-time.Hour)
		for i, code := range []string{"1001", "1002", "1003"} {
			dbtest.CreateTestCode(t, s.DB, code, s.managerID, nil, base.Add(time.Duration(i)*time.Minute))
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, codesURL+"?mine=true&limit=2", nil, s.managerToken)
		var first resdto.CodeListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Codes, 2)
		require.Equal(t, "1003", first.Codes[0].Code)
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, codesURL+"?mine=true&limit=2&after="+url.QueryEscape(first.NextCursor), nil, s.managerToken)
		var second resdto.CodeListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Codes, 1)
		require.Equal(t, "1001", second.Codes[0].Code)
		require.Empty(t, second.NextCursor)
	})
}

func (s *dispatchSuite) TestRoleGates() {
	s.Run("teams cannot issue codes", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, codesURL, nil, s.teamToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("managers cannot draw", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, drawsURL, map[string]any{
			"code": "1234", "team_name": "北城施工队",
		}, s.managerToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})
}
