package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Account errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("no user is logged in")
)

// UserData errors
var (
	ErrUserDataNotFound   = errors.New("user data not found")
	ErrFineNotFound       = errors.New("fine not found")
	ErrInvalidBookingData = errors.New("invalid booking data")
)

// QR / verification errors
var (
	ErrInvalidQRCode      = errors.New("invalid QR code data")
	ErrScannerNotScanning = errors.New("scanner is not scanning")
	ErrNoQRCode           = errors.New("no QR code available")
)

// Assistant errors
var (
	ErrAssistantOffline = errors.New("assistant is offline")
	ErrEmptyMessage     = errors.New("empty message")
	ErrNoTrafficReports = errors.New("no traffic reports to summarize")
)

// Authorization errors
var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
