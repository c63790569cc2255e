package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/fieldstock/backend/internal/domain/inventory"
	"github.com/fieldstock/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ReturnReasonTag validates a return reason code
const ReturnReasonTag = "return_reason"

var setupOnce sync.Once

// SetupValidator reports fields by their json (or form) name and registers the
// return_reason tag on gin's validator. Safe to call more than once.
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
		_ = v.RegisterValidation(ReturnReasonTag, func(fl validator.FieldLevel) bool {
			return inventory.ReturnReason(fl.Field().String()).IsValid()
		})
	})
}

func wireName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}
	return ""
}

// FormatValidationErrors converts a binding error into the INVALID_INPUT envelope.
// Malformed JSON carries no field details.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			details = append(details, dto.ValidationDetail{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		details = append(details, dto.ValidationDetail{
			Field:   typeErr.Field,
			Message: "Must be of type " + typeErr.Type.Kind().String(),
		})
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError aborts with 400 and the formatted errors
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

// comparisonMessages prefix the tag parameter
var comparisonMessages = map[string]string{
	"oneof": "Must be one of: ",
	"gte":   "Must be greater than or equal to ",
	"lte":   "Must be less than or equal to ",
	"gt":    "Must be greater than ",
	"lt":    "Must be less than ",
}

func fieldMessage(fe validator.FieldError) string {
	if prefix, ok := comparisonMessages[fe.Tag()]; ok {
		return prefix + fe.Param()
	}
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Must be at least " + fe.Param() + unit
	case "max":
		return "Must be at most " + fe.Param() + unit
	case "len":
		return "Must be exactly " + fe.Param() + unit
	case "uuid":
		return "Invalid UUID format"
	case ReturnReasonTag:
		return "Must be one of: " + joinReasons()
	default:
		return "Invalid value"
	}
}

func joinReasons() string {
	reasons := inventory.ReturnReasons()
	codes := make([]string, len(reasons))
	for i, r := range reasons {
		codes[i] = string(r)
	}
	return strings.Join(codes, ", ")
}
