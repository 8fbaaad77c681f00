package helper

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"writings-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	keyError   = "error"
	keyDetails = "details"
)

// HTTPHelper ...
// Shared request validation and JSON error writing. Verbose adds a
// "details" field to every error body.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Verbose    bool
}

func NewHTTPHelper(verbose bool) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, found := uni.GetTranslator("en")
	if !found {
		log.Warn().Str("locale", "en").Msg("Translator not found, using fallback")
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Error().Err(err).Msg("Failed to register validation translations")
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		Verbose:    verbose,
	}
}

// ValidateStruct runs the struct's validate tags and returns an
// models.ErrorValidation carrying message and translated field errors.
func (u *HTTPHelper) ValidateStruct(s interface{}, message string) error {
	err := u.Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	details := map[string]string{}
	for _, fe := range validationErrors {
		details[fe.Field()] = fe.Translate(u.Translator)
	}
	return models.ErrorValidation{Message: message, Details: details, Err: err}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		unauthorized models.ErrorUnauthorized
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
		validation   models.ErrorValidation
	)
	switch {
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendError ...
// Maps err to a status code and writes {"error": message}. Server errors
// never leak their text unless Verbose is set.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	message := err.Error()
	var details interface{} = err.Error()
	if status == http.StatusInternalServerError {
		message = models.MsgInternalError
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("Request failed")
	}

	var validation models.ErrorValidation
	if errors.As(err, &validation) && len(validation.Details) > 0 {
		details = validation.Details
	}

	u.send(c, status, message, details)
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, cause error) {
	var details interface{}
	if cause != nil {
		details = cause.Error()
	}
	u.send(c, http.StatusBadRequest, message, details)
}

// SendUnauthorizedError ...
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context) {
	u.send(c, http.StatusUnauthorized, models.MsgUnauthorized, nil)
}

// SendNotFoundError ...
func (u *HTTPHelper) SendNotFoundError(c *gin.Context) {
	u.send(c, http.StatusNotFound, models.MsgWritingNotFound, nil)
}

// SendSuccess ...
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func (u *HTTPHelper) send(c *gin.Context, status int, message string, details interface{}) {
	body := gin.H{keyError: message}
	if u.Verbose && details != nil {
		body[keyDetails] = details
	}
	c.JSON(status, body)
}
