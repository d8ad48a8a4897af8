package http

import (
	"net/http"

	"github.com/empdesk/empdesk-backend-go/internal/domain/payroll"
	"github.com/empdesk/empdesk-backend-go/internal/handler/http/middleware"
	"github.com/empdesk/empdesk-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	GetEmployeePayslip(w http.ResponseWriter, r *http.Request)
	GetEmployeeHistory(w http.ResponseWriter, r *http.Request)
	GetEmployeeEstimate(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payslipService payroll.PayslipService
}

func NewPayrollHandler(payslipService payroll.PayslipService) PayrollHandler {
	return &payrollHandlerImpl{payslipService: payslipService}
}

func (h *payrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, year, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.GetPayslip(r.Context(), requestor, requestor.SubjectID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payslipService.History(r.Context(), requestor, requestor.SubjectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeePayslip(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	month, year, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.GetPayslip(r.Context(), requestor, employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.History(r.Context(), requestor, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) GetEmployeeEstimate(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	month, year, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.QuickEstimate(r.Context(), requestor, employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
