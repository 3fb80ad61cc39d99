package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountCreation    = errors.New("account creation failed")
	ErrEmailExists        = errors.New("email already exists")
)

// Validation errors
var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidEmail = errors.New("invalid email")
	ErrEmptyField   = errors.New("required field is empty")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// Upload and offer errors
var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrOfferNotGenerated = errors.New("offer not yet generated")
)
