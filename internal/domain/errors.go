package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Service errors
var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceAlreadyExists = errors.New("service already exists")
	ErrInvalidServiceData   = errors.New("invalid service data")
)

// Car errors
var (
	ErrCarNotFound        = errors.New("car not found")
	ErrCarAlreadyExists   = errors.New("car already exists")
	ErrInvalidPlateNumber = errors.New("invalid plate number")
	ErrInvalidCarData     = errors.New("invalid car data")
)

// ServiceRecord errors
var (
	ErrRecordNotFound      = errors.New("service record not found")
	ErrRecordAlreadyExists = errors.New("service record already exists")
	ErrInvalidRecordData   = errors.New("invalid service record data")
)

// Payment errors
var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentAlreadyExists = errors.New("payment already exists")
	ErrRecordAlreadyPaid    = errors.New("service record already paid")
	ErrInvalidPaymentData   = errors.New("invalid payment data")
)

// Authorization errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// General errors
var (
	ErrInternal   = errors.New("internal server error")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrConflict   = errors.New("conflict")
)
