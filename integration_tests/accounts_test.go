package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Jetixia-Updates/oddos-finance/controllers"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AccountTestSuite struct {
	suite.Suite
	service *service.FinanceService
	echo    *echo.Echo
}

func (suite *AccountTestSuite) SetupSuite() {
	svc, err := financeTestServiceInit(os.Getenv("DATABASE_URI"))
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho()
	accountCtrl := controllers.NewAccountController(svc)
	suite.echo.GET("/v2/accounts", accountCtrl.List)
	suite.echo.POST("/v2/accounts", accountCtrl.Create)
	suite.echo.PUT("/v2/accounts/:id", accountCtrl.Update)
	suite.echo.DELETE("/v2/accounts/:id", accountCtrl.Delete)
}

func (suite *AccountTestSuite) SetupTest() {
	assert.NoError(suite.T(), clearTables(suite.service, "journal_lines", "journal_entries", "accounts"))
}

func (suite *AccountTestSuite) TestCreateAccount() {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name": "Main Checking", "type": "bank", "balance": 1200.50}`)
	req := httptest.NewRequest(http.MethodPost, "/v2/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)

	account := &models.Account{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(account))
	assert.Equal(suite.T(), "Main Checking", account.Name)
	assert.Equal(suite.T(), "bank", account.Type)
	assert.Equal(suite.T(), 1200.50, account.Balance)
	assert.Regexp(suite.T(), `^ACC-\d{6}$`, account.Number)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v2/accounts", nil)
	suite.echo.ServeHTTP(rec, req)
	var accounts []models.Account
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&accounts))
	assert.Len(suite.T(), accounts, 1)
}

func (suite *AccountTestSuite) TestCreateAccountRejectsUnknownType() {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name": "Petty Cash", "type": "piggybank"}`)
	req := httptest.NewRequest(http.MethodPost, "/v2/accounts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AccountTestSuite) TestUpdateMissingAccountReturns404() {
	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name": "Renamed"}`)
	req := httptest.NewRequest(http.MethodPut, "/v2/accounts/999999", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)

	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func (suite *AccountTestSuite) TestUpdateAccountKeepsUnpatchedFields() {
	account, err := suite.service.CreateAccount(context.Background(), service.CreateAccountParams{
		Name: "Savings", Type: "bank", Balance: 900,
	})
	assert.NoError(suite.T(), err)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"name": "Reserve Savings"}`)
	httpReq := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/v2/accounts/%d", account.ID), body)
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, httpReq)

	updated := &models.Account{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(updated))
	assert.Equal(suite.T(), "Reserve Savings", updated.Name)
	assert.Equal(suite.T(), "bank", updated.Type)
	assert.Equal(suite.T(), 900.0, updated.Balance)
	assert.Equal(suite.T(), account.Number, updated.Number)
}

func (suite *AccountTestSuite) TestDeleteAccount() {
	account, err := suite.service.CreateAccount(context.Background(), service.CreateAccountParams{
		Name: "Obsolete", Type: "expense",
	})
	assert.NoError(suite.T(), err)

	rec := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/v2/accounts/%d", account.ID), nil)
	suite.echo.ServeHTTP(rec, httpReq)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	httpReq = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/v2/accounts/%d", account.ID), nil)
	suite.echo.ServeHTTP(rec, httpReq)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
}

func TestAccountSuite(t *testing.T) {
	if os.Getenv("DATABASE_URI") == "" {
		t.Skip("DATABASE_URI not set, skipping integration tests")
	}
	suite.Run(t, new(AccountTestSuite))
}
