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
	"time"

	"github.com/Jetixia-Updates/oddos-finance/common"
	"github.com/Jetixia-Updates/oddos-finance/controllers"
	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type JournalPostingTestSuite struct {
	suite.Suite
	service *service.FinanceService
	echo    *echo.Echo
	cash    *models.Account
	revenue *models.Account
}

func (suite *JournalPostingTestSuite) SetupSuite() {
	svc, err := financeTestServiceInit(os.Getenv("DATABASE_URI"))
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho()
	journalCtrl := controllers.NewJournalController(svc)
	suite.echo.GET("/v2/journal-entries", journalCtrl.List)
	suite.echo.POST("/v2/journal-entries", journalCtrl.Create)
	suite.echo.PUT("/v2/journal-entries/:id", journalCtrl.Update)
	suite.echo.DELETE("/v2/journal-entries/:id", journalCtrl.Delete)
	suite.echo.POST("/v2/journal-entries/:id/post", journalCtrl.Post)
}

func (suite *JournalPostingTestSuite) SetupTest() {
	ctx := context.Background()
	assert.NoError(suite.T(), clearTables(suite.service, "journal_lines", "journal_entries", "accounts"))

	cash, err := suite.service.CreateAccount(ctx, service.CreateAccountParams{
		Name: "Cash on Hand", Type: common.AccountTypeCash, Balance: 50,
	})
	assert.NoError(suite.T(), err)
	revenue, err := suite.service.CreateAccount(ctx, service.CreateAccountParams{
		Name: "Sales", Type: common.AccountTypeRevenue,
	})
	assert.NoError(suite.T(), err)
	suite.cash = cash
	suite.revenue = revenue
}

func (suite *JournalPostingTestSuite) createEntry(lines []service.JournalLineParams) *models.JournalEntry {
	entry, err := suite.service.CreateJournalEntry(context.Background(), service.CreateJournalEntryParams{
		EntryDate: time.Now(),
		Memo:      "cash sale",
		Lines:     lines,
	})
	assert.NoError(suite.T(), err)
	return entry
}

func (suite *JournalPostingTestSuite) TestPostBalancedEntryAppliesBalances() {
	entry := suite.createEntry([]service.JournalLineParams{
		{AccountID: suite.cash.ID, Debit: 100},
		{AccountID: suite.revenue.ID, Credit: 100},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v2/journal-entries/%d/post", entry.ID), nil)
	suite.echo.ServeHTTP(rec, req)

	posted := &models.JournalEntry{}
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(posted))
	assert.Equal(suite.T(), common.JournalStatusPosted, posted.Status)

	accounts, err := suite.service.Accounts(context.Background())
	assert.NoError(suite.T(), err)
	balances := map[int64]float64{}
	for _, account := range accounts {
		balances[account.ID] = account.Balance
	}
	// cash is debit normal, revenue credit normal, so both grow by 100
	assert.Equal(suite.T(), 150.0, balances[suite.cash.ID])
	assert.Equal(suite.T(), 100.0, balances[suite.revenue.ID])
}

func (suite *JournalPostingTestSuite) TestPostUnbalancedEntryFails() {
	entry := suite.createEntry([]service.JournalLineParams{
		{AccountID: suite.cash.ID, Debit: 100},
		{AccountID: suite.revenue.ID, Credit: 90},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v2/journal-entries/%d/post", entry.ID), nil)
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// balances stay untouched after a rejected posting
	accounts, err := suite.service.Accounts(context.Background())
	assert.NoError(suite.T(), err)
	for _, account := range accounts {
		if account.ID == suite.cash.ID {
			assert.Equal(suite.T(), 50.0, account.Balance)
		}
	}
}

func (suite *JournalPostingTestSuite) TestPostingTwiceFails() {
	entry := suite.createEntry([]service.JournalLineParams{
		{AccountID: suite.cash.ID, Debit: 25},
		{AccountID: suite.revenue.ID, Credit: 25},
	})

	url := fmt.Sprintf("/v2/journal-entries/%d/post", entry.ID)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, nil))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, nil))
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// the double post must not apply the lines a second time
	accounts, err := suite.service.Accounts(context.Background())
	assert.NoError(suite.T(), err)
	for _, account := range accounts {
		if account.ID == suite.cash.ID {
			assert.Equal(suite.T(), 75.0, account.Balance)
		}
	}
}

func (suite *JournalPostingTestSuite) TestUpdatePostedEntryFails() {
	entry := suite.createEntry([]service.JournalLineParams{
		{AccountID: suite.cash.ID, Debit: 10},
		{AccountID: suite.revenue.ID, Credit: 10},
	})
	_, err := suite.service.PostJournalEntry(context.Background(), entry.ID)
	assert.NoError(suite.T(), err)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"memo": "edited after posting"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/v2/journal-entries/%d", entry.ID), body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *JournalPostingTestSuite) TestDeleteEntryRemovesLines() {
	entry := suite.createEntry([]service.JournalLineParams{
		{AccountID: suite.cash.ID, Debit: 10},
		{AccountID: suite.revenue.ID, Credit: 10},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/v2/journal-entries/%d", entry.ID), nil)
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)

	count, err := suite.service.DB.NewSelect().Model((*models.JournalLine)(nil)).Count(context.Background())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, count)
}

func TestJournalPostingSuite(t *testing.T) {
	if os.Getenv("DATABASE_URI") == "" {
		t.Skip("DATABASE_URI not set, skipping integration tests")
	}
	suite.Run(t, new(JournalPostingTestSuite))
}
