package salary_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"paydesk/internal/salary"
	"paydesk/internal/shared/apperror"

	salaryerrors "paydesk/internal/salary/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSalaryService struct {
	calculateFn   func(ctx context.Context, sessionID string, req salary.CalculateRequest) (salary.CalculationResponse, error)
	documentFn    func(ctx context.Context, sessionID, employeeID string) (salary.PayslipDocument, error)
	exportCSVFn   func(ctx context.Context, sessionID, employeeID, query string) (string, []byte, error)
	exportPDFFn   func(ctx context.Context, sessionID, employeeID string) (string, []byte, error)
	batchPDFFn    func(ctx context.Context, sessionID, query string) (string, []byte, error)
	exportSheetFn func(ctx context.Context, sessionID string) (string, []byte, error)
	sheetCellFn   func(ctx context.Context, sessionID string, req salary.SheetCellRequest) (salary.SheetCellResponse, error)
}

func (f *fakeSalaryService) Calculate(ctx context.Context, sessionID string, req salary.CalculateRequest) (salary.CalculationResponse, error) {
	return f.calculateFn(ctx, sessionID, req)
}

func (f *fakeSalaryService) Document(ctx context.Context, sessionID, employeeID string) (salary.PayslipDocument, error) {
	return f.documentFn(ctx, sessionID, employeeID)
}

func (f *fakeSalaryService) ExportCSV(ctx context.Context, sessionID, employeeID, query string) (string, []byte, error) {
	return f.exportCSVFn(ctx, sessionID, employeeID, query)
}

func (f *fakeSalaryService) ExportPDF(ctx context.Context, sessionID, employeeID string) (string, []byte, error) {
	return f.exportPDFFn(ctx, sessionID, employeeID)
}

func (f *fakeSalaryService) ExportBatchPDF(ctx context.Context, sessionID, query string) (string, []byte, error) {
	return f.batchPDFFn(ctx, sessionID, query)
}

func (f *fakeSalaryService) ExportSheet(ctx context.Context, sessionID string) (string, []byte, error) {
	return f.exportSheetFn(ctx, sessionID)
}

func (f *fakeSalaryService) CoerceSheetCell(ctx context.Context, sessionID string, req salary.SheetCellRequest) (salary.SheetCellResponse, error) {
	return f.sheetCellFn(ctx, sessionID, req)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func performRequest(h *salary.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	router := gin.New()
	router.POST("/sessions/:id/calculations", h.Calculate)
	router.GET("/sessions/:id/payslips/:employeeId", h.Document)
	router.PUT("/sessions/:id/sheet/cells", h.SheetCell)
	router.GET("/sessions/:id/exports/csv", h.ExportCSV)
	router.GET("/sessions/:id/exports/payslips/pdf", h.ExportBatchPDF)
	router.GET("/sessions/:id/exports/payslips/:employeeId/pdf", h.ExportPDF)
	router.GET("/sessions/:id/exports/sheet", h.ExportSheet)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSalaryHandler_Calculate(t *testing.T) {
	svc := &fakeSalaryService{
		calculateFn: func(ctx context.Context, sessionID string, req salary.CalculateRequest) (salary.CalculationResponse, error) {
			assert.Equal(t, "S1", sessionID)
			assert.Equal(t, "E1", req.EmployeeID)
			assert.Equal(t, 26, req.DutyDone)
			return salary.CalculationResponse{EmployeeID: "E1", Month: "01-2024", NetSalary: "17180.00"}, nil
		},
	}
	h := salary.NewHandler(svc)

	body := []byte(`{"employee_id":"E1","duty_done":26}`)
	w := performRequest(h, http.MethodPost, "/sessions/S1/calculations", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		OK   bool                       `json:"ok"`
		Data salary.CalculationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.OK)
	assert.Equal(t, "17180.00", envelope.Data.NetSalary)
}

func TestSalaryHandler_Calculate_BindingError(t *testing.T) {
	svc := &fakeSalaryService{
		calculateFn: func(ctx context.Context, sessionID string, req salary.CalculateRequest) (salary.CalculationResponse, error) {
			t.Fatal("service must not be called on a binding error")
			return salary.CalculationResponse{}, nil
		},
	}
	h := salary.NewHandler(svc)

	// duty_done above the binding ceiling is rejected at the edge.
	body := []byte(`{"employee_id":"E1","duty_done":32}`)
	w := performRequest(h, http.MethodPost, "/sessions/S1/calculations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope struct {
		OK    bool `json:"ok"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.OK)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, apperror.CodeInvalidInput, envelope.Error.Code)
}

func TestSalaryHandler_Calculate_RemoteValidation(t *testing.T) {
	svc := &fakeSalaryService{
		calculateFn: func(ctx context.Context, sessionID string, req salary.CalculateRequest) (salary.CalculationResponse, error) {
			return salary.CalculationResponse{}, salaryerrors.RemoteValidation([]string{"Duty days exceed days in month"})
		},
	}
	h := salary.NewHandler(svc)

	body := []byte(`{"employee_id":"E1","duty_done":31}`)
	w := performRequest(h, http.MethodPost, "/sessions/S1/calculations", body)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var envelope struct {
		Error *struct {
			Code    string `json:"code"`
			Details struct {
				Messages []string `json:"messages"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, apperror.CodeRemoteValidation, envelope.Error.Code)
	assert.Equal(t, []string{"Duty days exceed days in month"}, envelope.Error.Details.Messages)
}

func TestSalaryHandler_Document_NotComputed(t *testing.T) {
	svc := &fakeSalaryService{
		documentFn: func(ctx context.Context, sessionID, employeeID string) (salary.PayslipDocument, error) {
			return salary.PayslipDocument{}, salaryerrors.ErrPayslipNotComputed
		},
	}
	h := salary.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/sessions/S1/payslips/E1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSalaryHandler_SheetCell(t *testing.T) {
	svc := &fakeSalaryService{
		sheetCellFn: func(ctx context.Context, sessionID string, req salary.SheetCellRequest) (salary.SheetCellResponse, error) {
			assert.Equal(t, "bonus", req.Column)
			assert.Equal(t, "abc", req.Value)
			return salary.SheetCellResponse{Column: "bonus", Value: nil}, nil
		},
	}
	h := salary.NewHandler(svc)

	body := []byte(`{"column":"bonus","value":"abc"}`)
	w := performRequest(h, http.MethodPut, "/sessions/S1/sheet/cells", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data salary.SheetCellResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "bonus", envelope.Data.Column)
	assert.Nil(t, envelope.Data.Value)
}

func TestSalaryHandler_ExportCSV(t *testing.T) {
	svc := &fakeSalaryService{
		exportCSVFn: func(ctx context.Context, sessionID, employeeID, query string) (string, []byte, error) {
			assert.Equal(t, "S1", sessionID)
			assert.Equal(t, "E1", employeeID)
			assert.Equal(t, "asha", query)
			return "Asha_Verma_payslip.csv", []byte("csv-bytes"), nil
		},
	}
	h := salary.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/sessions/S1/exports/csv?employee_id=E1&search=asha", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Asha_Verma_payslip.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "csv-bytes", w.Body.String())
}

func TestSalaryHandler_ExportPDF(t *testing.T) {
	svc := &fakeSalaryService{
		exportPDFFn: func(ctx context.Context, sessionID, employeeID string) (string, []byte, error) {
			return "Asha_Verma_payslip.pdf", []byte("%PDF-fake"), nil
		},
	}
	h := salary.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/sessions/S1/exports/payslips/E1/pdf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestSalaryHandler_ExportBatchPDF(t *testing.T) {
	svc := &fakeSalaryService{
		batchPDFFn: func(ctx context.Context, sessionID, query string) (string, []byte, error) {
			assert.Equal(t, "S1", sessionID)
			return "all_employees_payslip.pdf", []byte("%PDF-fake"), nil
		},
	}
	h := salary.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/sessions/S1/exports/payslips/pdf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="all_employees_payslip.pdf"`, w.Header().Get("Content-Disposition"))
}

func TestSalaryHandler_ExportSheet(t *testing.T) {
	svc := &fakeSalaryService{
		exportSheetFn: func(ctx context.Context, sessionID string) (string, []byte, error) {
			return "salary_sheet_01-2024.xlsx", []byte("xlsx-bytes"), nil
		},
	}
	h := salary.NewHandler(svc)

	w := performRequest(h, http.MethodGet, "/sessions/S1/exports/sheet", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="salary_sheet_01-2024.xlsx"`, w.Header().Get("Content-Disposition"))
}
