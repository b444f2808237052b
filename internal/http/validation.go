package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"sales-crm-service/internal/model"
	"sales-crm-service/internal/service"
)

const queryDateLayout = "2006-01-02"

func newValidator() *validator.Validate {
	v := validator.New()

	// В сообщениях используем имена полей из JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("leadstatus", func(fl validator.FieldLevel) bool {
		return model.LeadStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("teamsize", func(fl validator.FieldLevel) bool {
		return model.TeamSize(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("fundingtype", func(fl validator.FieldLevel) bool {
		return model.FundingType(fl.Field().String()).Valid()
	})
	return v
}

// decodeAndValidate читает JSON-тело и прогоняет его через validator.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrBadRequest("invalid JSON")
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return service.ErrBadRequest(fieldMessage(verrs[0]))
		}
		return service.ErrBadRequest(err.Error())
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte", "gt":
		return fmt.Sprintf("%s must be %s %s", field, map[string]string{"gte": ">=", "gt": ">"}[fe.Tag()], fe.Param())
	case "min", "max":
		return fmt.Sprintf("%s length must be %s %s", field, map[string]string{"min": ">=", "max": "<="}[fe.Tag()], fe.Param())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", field, fe.Param())
	case "leadstatus", "teamsize", "fundingtype":
		return fmt.Sprintf("%s has unknown value %q", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parseID читает положительный целочисленный параметр пути.
func parseID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrBadRequest(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

func parseQueryDate(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(queryDateLayout, raw, loc)
	if err != nil {
		return nil, service.ErrBadRequest(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name))
	}
	return &t, nil
}

// parseActivityFilter разбирает query-параметры отчёта по активности:
// startDate, endDate, date, addedBy и search.
func (h *Handler) parseActivityFilter(r *http.Request) (model.ActivityFilter, error) {
	var (
		f   model.ActivityFilter
		err error
	)
	if f.StartDate, err = parseQueryDate(r, "startDate", h.cfg.Location); err != nil {
		return f, err
	}
	if f.EndDate, err = parseQueryDate(r, "endDate", h.cfg.Location); err != nil {
		return f, err
	}
	if f.Date, err = parseQueryDate(r, "date", h.cfg.Location); err != nil {
		return f, err
	}

	q := r.URL.Query()
	if raw := q.Get("addedBy"); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			return f, service.ErrBadRequest("addedBy must be a rep id or \"all\"")
		}
		f.AddedBy = id
	}
	f.SearchTerm = q.Get("search")
	return f, nil
}
