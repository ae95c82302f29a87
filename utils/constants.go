package utils

// Application constants
const (
	// Application name
	AppName = "ABRE AÍ!"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// Minimum password length
	MinPasswordLength = 8

	// Minimum name length
	MinNameLength = 2

	// Maximum name length
	MaxNameLength = 80

	// Maximum order notes length
	MaxNotesLength = 500
)

// Store contact details shown on receipts and reports
const (
	StoreAddress = "Av. Paulista, 1000 - São Paulo, SP"
	StoreEmail   = "contato@abreai.com.br"
	StorePhone   = "+55 11 99999-9999"
)

// Error messages
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidToken       = "Invalid or expired token"
	MsgUnauthorized       = "Unauthorized access"
	MsgRecordNotFound     = "Record not found"
	MsgInternalServer     = "Internal server error"
)

// Success messages
const (
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "Logout successful"
	MsgRegisterSuccess = "Registration successful"
	MsgUpdateSuccess   = "Updated successfully"
)
