package server

import (
	"net/http"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// statusResponse is implemented by replies that answer with a status other than 200.
type statusResponse interface {
	HTTPStatus() int
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code     int32             `json:"code"`
	Reason   string            `json:"reason"`
	Error    string            `json:"error"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func contentType(subtype string) string {
	return "application/" + subtype
}

// encodeResponse writes v with the status it asks for; 204 replies have no body.
func encodeResponse(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if v == nil {
		return nil
	}
	status := http.StatusOK
	if sr, ok := v.(statusResponse); ok {
		status = sr.HTTPStatus()
	}
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		// An empty write flushes the status through kratos' buffered writer.
		_, err := w.Write(nil)
		return err
	}

	codec, _ := khttp.CodecForRequest(r, "Accept")
	data, err := codec.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", contentType(codec.Name()))
	w.WriteHeader(status)
	_, err = w.Write(data)
	return err
}

func encodeError(w http.ResponseWriter, r *http.Request, err error) {
	se := errors.FromError(err)
	codec, _ := khttp.CodecForRequest(r, "Accept")
	data, mErr := codec.Marshal(&errorBody{
		Code:     se.Code,
		Reason:   se.Reason,
		Error:    se.Message,
		Metadata: se.Metadata,
	})
	if mErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType(codec.Name()))
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(data)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	encodeError(w, r, errors.NotFound("NOT_FOUND", "not found"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	encodeError(w, r, errors.New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method "+r.Method+" not allowed"))
}
