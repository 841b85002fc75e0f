// Package http provides Laravel-style request and response helpers for
// the timestamp validation service.
//
// # Request
//
//	request := http.NewRequest(r)
//
//	var body struct {
//	    Timestamp string `json:"timestamp"`
//	}
//	if err := request.Bind(&body); err != nil { ... }
//
//	value := request.Query("value")        // ?value=...
//	value = request.Input("value", "none") // query or form, with fallback
//
// # Response
//
//	res := http.NewResponse(w)
//	res.Success(payload)                  // 200 {"data": ...}
//	res.Error(400, "Malformed body")      // 400 {"message": ...}
//	res.ValidationError(v.Errors())       // 422 {"errors": {...}}
//
// ValidationError emits the same JSON structure as Laravel's failed
// validation response, so clients written against a Laravel API can
// consume it unchanged.
package http
