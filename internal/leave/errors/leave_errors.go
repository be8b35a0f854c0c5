package leaveerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidLeavePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave period",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be sick or casual",
		http.StatusBadRequest,
	)
	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave form field",
		http.StatusBadRequest,
	)
	ErrFormNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave form not found",
		http.StatusNotFound,
	)
	ErrRequestListUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave request list is unavailable",
		http.StatusServiceUnavailable,
	)
)
