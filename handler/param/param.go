package param

import (
	"encoding/json"
	"net/http"
)

// Binding decode request body into v
func Binding(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
