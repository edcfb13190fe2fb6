package youtube

import (
	"encoding/json"

	ythttp "ytresolve/http"
)

// Decode turns a raw API response into a value of type T.
// A non-2xx status yields a KindHTTP error carrying the status; a body that
// does not decode into T yields KindResponseNotParsed.
func Decode[T any](resp *ythttp.Response) (T, error) {
	var out T

	if resp == nil {
		return out, &RequestError{Kind: KindHTTP, Msg: "no response received"}
	}
	if !resp.Success() {
		return out, &RequestError{
			Kind:       KindHTTP,
			StatusCode: resp.StatusCode,
			Err:        &ythttp.HTTPError{StatusCode: resp.StatusCode, Body: resp.Body},
		}
	}

	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, notParsed("decode body", err)
	}
	return out, nil
}
