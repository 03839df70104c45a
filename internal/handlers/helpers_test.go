package handlers_test

import (
	"JewelryStore/internal/auth"
	"JewelryStore/internal/config"
	"JewelryStore/internal/handlers"
	"JewelryStore/internal/model"
	"JewelryStore/internal/repo"
	"JewelryStore/internal/repo/repotest"
	"JewelryStore/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// testEnv — роутер поверх in-memory SQLite с двумя филиалами и тремя учётными записями.
type testEnv struct {
	router http.Handler
	cfg    *config.Config
	repos  repo.Repositories

	branchA, branchB      *model.Branch
	admin, staffA, staffB *model.Account
}

func newTestEnv(t *testing.T, env string) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", Env: env, TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost}
	logger := zap.NewNop().Sugar()

	db := repotest.NewTestDB(t)
	repos := repo.NewRepositories(db)
	accountSvc := service.NewAccountService(repos.Accounts, repos.Branches, cfg.BcryptCost)
	branchSvc := service.NewBranchService(repos.Branches, repos.Accounts)
	jewelrySvc := service.NewJewelryService(repos.Jewelry, repos.Branches)
	transferSvc := service.NewTransferService(repos, repo.NewUnitOfWork(db), logger)
	h := handlers.NewHandler(accountSvc, branchSvc, jewelrySvc, transferSvc, logger, cfg)

	e := &testEnv{router: h.Router, cfg: cfg, repos: repos}
	ctx := context.Background()

	e.branchA = &model.Branch{Name: "Downtown", Location: "Main st 1"}
	e.branchB = &model.Branch{Name: "Uptown", Location: "Hill rd 9"}
	require.NoError(t, repos.Branches.Create(ctx, e.branchA))
	require.NoError(t, repos.Branches.Create(ctx, e.branchB))

	e.admin = e.addAccount(t, "admin", model.RoleAdmin, nil)
	e.staffA = e.addAccount(t, "anna", model.RoleStaff, &e.branchA.ID)
	e.staffB = e.addAccount(t, "boris", model.RoleStaff, &e.branchB.ID)
	return e
}

func (e *testEnv) addAccount(t *testing.T, username, role string, branchID *string) *model.Account {
	t.Helper()
	hash, err := auth.HashPassword("password", bcrypt.MinCost)
	require.NoError(t, err)
	a, err := e.repos.Accounts.CreateAccount(context.Background(), &model.Account{
		Username: username, PasswordHash: hash, Name: username, Role: role, BranchID: branchID,
	})
	require.NoError(t, err)
	return a
}

func (e *testEnv) addJewelry(t *testing.T, name, branchID string, qty int) *model.Jewelry {
	t.Helper()
	j := &model.Jewelry{Name: name, Category: "ring", Material: "gold", Price: decimal.NewFromInt(500), Quantity: qty, BranchID: branchID}
	require.NoError(t, e.repos.Jewelry.Create(context.Background(), j))
	return j
}

// do выполняет запрос от имени учётной записи (nil — анонимно) и возвращает ответ.
func (e *testEnv) do(t *testing.T, as *model.Account, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		token, err := auth.GenerateToken(e.cfg.AuthSecret, time.Hour, as)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
