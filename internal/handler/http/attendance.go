package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/empdesk/empdesk-backend-go/internal/domain/attendance"
	"github.com/empdesk/empdesk-backend-go/internal/handler/http/middleware"
	"github.com/empdesk/empdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordMine(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	RecordForEmployee(w http.ResponseWriter, r *http.Request)
	ListForEmployee(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) RecordMine(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.record(w, r, requestor.SubjectID)
}

func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	requestor, err := middleware.RequestorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.list(w, r, requestor.SubjectID)
}

func (h *attendanceHandlerImpl) RecordForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	h.record(w, r, employeeID)
}

func (h *attendanceHandlerImpl) ListForEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDParam(w, r)
	if !ok {
		return
	}

	h.list(w, r, employeeID)
}

func (h *attendanceHandlerImpl) record(w http.ResponseWriter, r *http.Request, employeeID string) {
	var req attendance.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

func (h *attendanceHandlerImpl) list(w http.ResponseWriter, r *http.Request, employeeID string) {
	month, year, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.ListByEmployeeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parsePeriodQuery extracts the required month and year query parameters. It
// writes a BadRequest response and returns ok=false when either is missing or
// not a number; range checks belong to the services.
func parsePeriodQuery(w http.ResponseWriter, r *http.Request) (month, year int, ok bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" || yearStr == "" {
		response.BadRequest(w, "month and year are required", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return 0, 0, false
	}
	year, err = strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return 0, 0, false
	}

	return month, year, true
}
