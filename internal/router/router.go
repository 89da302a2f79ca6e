package router

import (
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"workgroup/internal/handler"
)

// Register wires routes and middleware.
func Register(e *echo.Echo, userHandler *handler.UserHandler, employeeHandler *handler.EmployeeHandler) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	user := e.Group("/user")
	user.GET("", userHandler.Intro)
	user.POST("/create", userHandler.CreateUser)
	user.GET("/all", userHandler.ListUsers)
	user.GET("/page", userHandler.ListUsersPage)
	user.GET("/exists", userHandler.EmailExists)
	user.POST("/login", userHandler.Login)
	user.GET("/:id", userHandler.GetUser)
	user.PUT("/update/:id", userHandler.UpdateUser)
	user.PUT("/profile/:id", userHandler.UpdateProfileImage)
	user.DELETE("/delete/:id", userHandler.DeleteUser)

	employees := e.Group("/employees")
	employees.GET("", employeeHandler.ListEmployees)
	employees.POST("", employeeHandler.CreateEmployee)
	employees.GET("/:id", employeeHandler.GetEmployee)
	employees.PUT("/:id", employeeHandler.UpdateEmployee)
	employees.DELETE("/:id", employeeHandler.DeleteEmployee)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the password rule
// registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("password", validPassword)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// validPassword enforces at least 8 characters with an upper-case
// letter, a lower-case letter, a digit and a special character.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
