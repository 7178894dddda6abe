package services

import (
	"time"

	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/service_mocks.go -package=service_mocks

// AuthServiceInterface handles user registration and login
type AuthServiceInterface interface {
	// SignUp registers a new user. Validation failures come back as field
	// errors on the MutationResult rather than as an error return.
	SignUp(req *dto.SignUpRequest) (*dto.MutationResult, error)

	// Login authenticates a user and issues an access token
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// GetProfile returns the authenticated user's profile
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
}

// TokenServiceInterface handles JWT operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface handles password hashing and validation
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// CustomerServiceInterface handles customer management. Every operation is
// scoped to the owning user.
type CustomerServiceInterface interface {
	List(userID uuid.UUID, req *dto.ListCustomersRequest) (*dto.ListCustomersResponse, error)
	Get(userID, customerID uuid.UUID) (*dto.CustomerResponse, error)
	Create(userID uuid.UUID, req *dto.CreateCustomerRequest) (*dto.MutationResult, error)
	Update(userID, customerID uuid.UUID, req *dto.UpdateCustomerRequest) (*dto.MutationResult, error)
	Delete(userID, customerID uuid.UUID) (*dto.MutationResult, error)
}

// InvoiceServiceInterface handles invoice management. Every operation is
// scoped to the owning user.
type InvoiceServiceInterface interface {
	List(userID uuid.UUID, req *dto.ListInvoicesRequest) (*dto.ListInvoicesResponse, error)
	Get(userID, invoiceID uuid.UUID) (*dto.InvoiceResponse, error)
	Latest(userID uuid.UUID) (*dto.LatestInvoicesResponse, error)
	Create(userID uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.MutationResult, error)
	Update(userID, invoiceID uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.MutationResult, error)
	Delete(userID, invoiceID uuid.UUID) (*dto.MutationResult, error)
}

// DashboardServiceInterface provides the aggregated dashboard views
type DashboardServiceInterface interface {
	// Revenue returns the trailing twelve month revenue series with Y-axis labels
	Revenue(userID uuid.UUID) (*dto.RevenueResponse, error)

	// Cards returns the four summary card figures
	Cards(userID uuid.UUID) (*dto.CardsResponse, error)
}

// DemoDataServiceInterface seeds a user's workspace with generated data
type DemoDataServiceInterface interface {
	Seed(userID uuid.UUID, customerCount, invoiceCount int) error
}

// ViewInvalidator drops cached dashboard views under a path so the next read
// refetches. Mutation services call it after every successful write.
type ViewInvalidator interface {
	Invalidate(path string) int
}

// MetricsRecorderInterface provides methods for recording application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
