package handlers

import (
	"encoding/json"
	"net/http"
)

const maxBodyBytes = 1 << 16

func decodeJSON(r *http.Request, out any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	return dec.Decode(out)
}
