package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = newValidator()
)

// newValidator usa os nomes das tags query/json nas mensagens de erro
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("query"); name != "" {
			return name
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz erros dos casos de uso para a resposta padronizada da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error(fallback)
			apiErrors.WriteError(w, reportErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Error(fallback)
			apiErrors.WriteError(w, authErr.Code, fallback, nil)
			return
		}
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// validationDetails resume os erros do validator em campo -> regra
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		details[fe.Field()] = rule
	}
	return details
}
