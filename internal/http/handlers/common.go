package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"globetrotter/internal/domain"
	"globetrotter/internal/http/middleware"
	"globetrotter/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// Deps is what the handlers need from the process. HashCost is the bcrypt
// cost for new passwords; zero means the library default.
type Deps struct {
	DB          *sqlx.DB
	Tokens      services.TokenManager
	HashCost    int
	ProjectName string
	Version     string
}

var (
	depsMu sync.RWMutex
	deps   Deps

	tagNamesOnce sync.Once
)

// Configure installs the handler dependencies. It is called once by the router.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
	useJSONFieldNames()
}

func currentDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

func base(c *gin.Context) services.Base {
	b := services.Base{DB: currentDeps().DB, RequestID: middleware.GetRequestID(c)}
	if id, ok := middleware.GetUserID(c); ok {
		b.CallerID = id
	}
	return b
}

// useJSONFieldNames makes validator report the json name of a field.
func useJSONFieldNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

func asValidation(err error) (domain.ValidationError, bool) {
	var ve domain.ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// bindJSON decodes and validates the body, answering 400 itself on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondDomainError(c, bindError(err))
		return false
	}
	return true
}

func bindError(err error) error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		timeErr   *time.ParseError
		numErr    *strconv.NumError
	)
	switch {
	case errors.As(err, &verrs):
		fields := make([]domain.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, domain.FieldError{Field: fe.Field(), Rule: fe.Tag(), Message: fieldMessage(fe)})
		}
		return domain.ValidationError{Msg: "request validation failed", Fields: fields, Err: err}
	case errors.Is(err, io.EOF):
		return domain.ValidationError{Msg: "request body is required", Err: err}
	case errors.As(err, &typeErr):
		return domain.ValidationError{Field: typeErr.Field, Msg: "must be of type " + typeErr.Type.String(), Err: err}
	case errors.As(err, &timeErr):
		return domain.ValidationError{Msg: "invalid datetime, expected RFC3339", Err: err}
	case errors.As(err, &syntaxErr):
		return domain.ValidationError{Msg: "malformed JSON body", Err: err}
	case errors.As(err, &numErr):
		return domain.ValidationError{Msg: "invalid number " + strconv.Quote(numErr.Num), Err: err}
	default:
		return domain.ValidationError{Msg: "invalid request", Err: err}
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "alpha":
		return "must contain letters only"
	case "url":
		return "must be a valid URL"
	}
	return "failed on " + fe.Tag()
}

func parsePositive(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.ValidationError{Field: field, Msg: "field required"}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationError{Field: field, Msg: "must be a positive integer", Err: err}
	}
	return id, nil
}

// pathID reads the :id path parameter, answering 400 itself on failure.
func pathID(c *gin.Context) (int64, bool) {
	id, err := parsePositive("id", c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := parsePositive(name, c.Query(name))
	if err != nil {
		RespondDomainError(c, err)
		return 0, false
	}
	return id, true
}

func bindPage(c *gin.Context) (domain.Page, bool) {
	var page domain.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		RespondDomainError(c, domain.ValidationError{Msg: "skip and limit must be integers", Err: err})
		return page, false
	}
	page, err := page.Normalize()
	if err != nil {
		RespondDomainError(c, err)
		return page, false
	}
	return page, true
}
