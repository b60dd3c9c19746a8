package router_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/controller"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/middleware"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/models"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/http/router"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/adapter/repository/memory"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/commons"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/domain"
	"github.com/zarrarrajput1010-byte/Brainwave-Matrix-Intern/src/internal/usecase/services"
	"golang.org/x/crypto/bcrypt"
)

const adminID = "AtmAdmin"
const adminKey = "AtmAdminKey001"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	seeds, err := memory.NewAccountSeedRepository().GetAll(context.Background())
	require.NoError(t, err)
	ledger, err := domain.NewLedger(seeds...)
	require.NoError(t, err)
	keyHash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.MinCost)
	require.NoError(t, err)

	sessions := services.NewSessionService(ledger, time.Minute)
	return router.New(
		controller.NewSessionController(sessions),
		controller.NewAccountController(sessions),
		controller.NewAdminController(services.NewAdminService(ledger)),
		middleware.BasicAuth(adminID, keyHash),
	)
}

func do[T any](t *testing.T, h http.Handler, method, path, token string, body any) (int, commons.Response[T]) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(middleware.SessionTokenHeader, token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var out commons.Response[T]
	if w.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestSwaggerDocument(t *testing.T) {
	h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/openapi.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Contains(t, doc["paths"], "/account/transfer")
}

func TestSessionFlow(t *testing.T) {
	h := newTestServer(t)

	status, login := do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1001", Pin: "1234"})
	require.Equal(t, http.StatusCreated, status)
	token := login.Data.SessionToken
	require.NotEmpty(t, token)

	status, busy := do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1002", Pin: "5678"})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, commons.MsgSessionActive, busy.Message)

	status, transfer := do[models.TransferResponse](t, h, http.MethodPost, "/account/transfer", token, models.TransferRequest{ToAccountID: "1002", Amount: "200"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "800.00", transfer.Data.Balance)

	status, _ = do[models.CashResponse](t, h, http.MethodPost, "/account/withdraw", token, models.AmountRequest{Amount: "900"})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = do[models.CashResponse](t, h, http.MethodPost, "/account/deposit", token, models.AmountRequest{Amount: "0"})
	require.Equal(t, http.StatusBadRequest, status)

	status, _ = do[models.TransferResponse](t, h, http.MethodPost, "/account/transfer", token, models.TransferRequest{ToAccountID: "4040", Amount: "1"})
	require.Equal(t, http.StatusNotFound, status)

	status, pin := do[models.ChangePinResponse](t, h, http.MethodPost, "/account/pin", token, models.ChangePinRequest{CurrentPin: "1234", NewPin: "1111", ConfirmPin: "2222"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, commons.MsgPinMismatch, pin.Message)

	status, history := do[models.HistoryResponse](t, h, http.MethodGet, "/account/history", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, history.Data.Transactions, 1)

	status, _ = do[models.LogoutResponse](t, h, http.MethodDelete, "/sessions", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = do[models.BalanceResponse](t, h, http.MethodGet, "/account/balance", token, nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestExponentAmountRejected(t *testing.T) {
	h := newTestServer(t)

	_, login := do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1004", Pin: "0101"})
	token := login.Data.SessionToken

	start := time.Now()
	status, resp := do[models.CashResponse](t, h, http.MethodPost, "/account/deposit", token, models.AmountRequest{Amount: "1e10000000"})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, commons.MsgValidationFailed, resp.Message)
	require.Less(t, time.Since(start), time.Second)
	for _, e := range resp.Errors {
		require.Less(t, len(e), 200)
	}

	status, balance := do[models.BalanceResponse](t, h, http.MethodGet, "/account/balance", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "15000.00", balance.Data.Balance)
}

func TestMissingSessionToken(t *testing.T) {
	h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/account/balance", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidRequestBody(t *testing.T) {
	h := newTestServer(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString("{")))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLockoutAndAdminUnlock(t *testing.T) {
	h := newTestServer(t)

	for i := 1; i < domain.MaxFailedAttempts; i++ {
		status, resp := do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1003", Pin: "0000"})
		require.Equal(t, http.StatusUnauthorized, status)
		require.Equal(t, domain.MaxFailedAttempts-i, resp.Data.AttemptsRemaining)
	}
	status, _ := do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1003", Pin: "0000"})
	require.Equal(t, http.StatusLocked, status)

	status, _ = do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1003", Pin: "9988"})
	require.Equal(t, http.StatusLocked, status)

	req := httptest.NewRequest(http.MethodPost, "/admin/accounts/1003/unlock", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/admin/accounts/1003/unlock", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(adminID+":"+adminKey)))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/admin/accounts/9999/unlock", nil)
	req.SetBasicAuth(adminID, adminKey)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	status, _ = do[models.LoginResponse](t, h, http.MethodPost, "/sessions", "", models.LoginRequest{AccountID: "1003", Pin: "9988"})
	require.Equal(t, http.StatusCreated, status)
}
