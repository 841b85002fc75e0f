package main

import (
	"net/http"

	"github.com/km-arc/go-strictdate/app"
	"github.com/km-arc/go-strictdate/routing"
	"github.com/km-arc/go-strictdate/strictdate"
	"github.com/km-arc/go-strictdate/validation"
)

func main() {
	application := app.New() // loads .env automatically
	registerRoutes(application)
	application.Run()
}

func registerRoutes(a *app.Application) {
	r := a.Router
	ctrl := &TimestampController{}

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := ctrl.Response(w)
		res.Success(map[string]any{"message": "Strict RFC 3339 timestamp validation service"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Post("/timestamps/validate", ctrl.Validate)
		api.Get("/timestamps/inspect", ctrl.Inspect)
	})
}

// TimestampController exposes the recognizer over HTTP.
type TimestampController struct {
	app.Controller
}

// Validate handles POST /api/v1/timestamps/validate.
//
// Body: {"timestamp": "..."} — returns 422 with a Laravel error bag when
// the value is not a strict date-time, 200 with the decomposed fields
// otherwise.
func (ctrl *TimestampController) Validate(w http.ResponseWriter, r *http.Request) {
	request := ctrl.Request(r)
	res := ctrl.Response(w)

	var body struct {
		Timestamp string `json:"timestamp"`
	}
	if err := request.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	v := validation.Make(map[string]string{
		"timestamp": body.Timestamp,
	}, validation.Rules{
		"timestamp": "required|datetime",
	})

	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	fields, _ := strictdate.Recognize(body.Timestamp)
	res.Success(fieldsPayload(fields))
}

// Inspect handles GET /api/v1/timestamps/inspect?value=...
// Same acceptance logic as Validate, reading from the query string.
func (ctrl *TimestampController) Inspect(w http.ResponseWriter, r *http.Request) {
	request := ctrl.Request(r)
	res := ctrl.Response(w)

	value := request.Query("value")

	v := validation.Make(map[string]string{
		"value": value,
	}, validation.Rules{
		"value": "required|datetime",
	})

	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	fields, _ := strictdate.Recognize(value)
	res.Success(fieldsPayload(fields))
}

func fieldsPayload(f strictdate.Fields) map[string]any {
	payload := map[string]any{
		"year":   f.Year,
		"month":  f.Month,
		"day":    f.Day,
		"hour":   f.Hour,
		"minute": f.Minute,
		"second": f.Second,
		"offset": f.Offset.String(),
	}
	if f.Fraction != "" {
		payload["fraction"] = f.Fraction
	}
	return payload
}
