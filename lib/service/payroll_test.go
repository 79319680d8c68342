package service

import (
	"testing"
	"time"

	"github.com/Jetixia-Updates/oddos-finance/db/models"
	"github.com/stretchr/testify/assert"
)

func TestDerivePay(t *testing.T) {
	record := models.PayrollRecord{
		BasicSalary: 5000,
		Allowances:  500,
		Deductions:  200,
		Tax:         300,
	}

	derivePay(&record)

	assert.Equal(t, 5500.0, record.GrossPay)
	assert.Equal(t, 5000.0, record.NetPay)
}

func TestDerivePayZeroRecord(t *testing.T) {
	record := models.PayrollRecord{}

	derivePay(&record)

	assert.Equal(t, 0.0, record.GrossPay)
	assert.Equal(t, 0.0, record.NetPay)
}

// A patch that only touches tax must not lose the stored salary fields when
// pay is re-derived.
func TestPartialPatchKeepsStoredSalary(t *testing.T) {
	record := models.PayrollRecord{
		BasicSalary: 5000,
		Allowances:  500,
		Deductions:  200,
		Tax:         300,
	}
	derivePay(&record)

	newTax := 350.0
	applyPayrollPatch(&record, PayrollPatch{Tax: &newTax})
	derivePay(&record)

	assert.Equal(t, 5000.0, record.BasicSalary)
	assert.Equal(t, 500.0, record.Allowances)
	assert.Equal(t, 5500.0, record.GrossPay)
	assert.Equal(t, 4950.0, record.NetPay)
}

func TestApplyPayrollPatchAllFields(t *testing.T) {
	record := models.PayrollRecord{
		EmployeeID:  7,
		BasicSalary: 4000,
		Status:      "draft",
	}

	employeeID := int64(9)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	basic := 4200.0
	allowances := 300.0
	deductions := 150.0
	tax := 420.0
	status := "approved"
	applyPayrollPatch(&record, PayrollPatch{
		EmployeeID:     &employeeID,
		PayPeriodStart: &start,
		PayPeriodEnd:   &end,
		BasicSalary:    &basic,
		Allowances:     &allowances,
		Deductions:     &deductions,
		Tax:            &tax,
		Status:         &status,
	})
	derivePay(&record)

	assert.Equal(t, int64(9), record.EmployeeID)
	assert.Equal(t, start, record.PayPeriodStart)
	assert.Equal(t, end, record.PayPeriodEnd)
	assert.Equal(t, "approved", record.Status)
	assert.Equal(t, 4500.0, record.GrossPay)
	assert.Equal(t, 3930.0, record.NetPay)
}

func TestEmptyPatchIsANoOp(t *testing.T) {
	record := models.PayrollRecord{
		BasicSalary: 5000,
		Allowances:  500,
		Deductions:  200,
		Tax:         300,
		Status:      "draft",
	}
	derivePay(&record)
	before := record

	applyPayrollPatch(&record, PayrollPatch{})
	derivePay(&record)

	assert.Equal(t, before, record)
}
