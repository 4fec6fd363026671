package assetbook

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Op names a client operation.
type Op string

const (
	OpList    Op = "list"
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpSummary Op = "summary"
)

// Fallback is the message reported when the server gives no error message.
func (op Op) Fallback() string {
	switch op {
	case OpList:
		return "failed to fetch assets"
	case OpCreate:
		return "failed to create asset"
	case OpUpdate:
		return "failed to update asset"
	case OpDelete:
		return "failed to delete asset"
	case OpSummary:
		return "failed to fetch summary"
	}
	return "request failed"
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Op      Op
	Status  int
	Message string
}

// Error returns the server message, it is meant to be shown as is.
func (e *APIError) Error() string { return e.Message }

// TransportError is a request that never reached the server or whose answer
// could not be read.
type TransportError struct {
	Op  Op
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op.Fallback(), e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ErrNotEditing is returned by editor operations that require an open form.
var ErrNotEditing = errors.New("no asset is being edited")

// errorMessage extracts the "error" string of a JSON body, or returns fallback.
func errorMessage(body []byte, fallback string) string {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return fallback
	}
	jval, err := jsonpath.Get("$.error", jobj)
	if err != nil {
		return fallback
	}
	msg, ok := jval.(string)
	if !ok || msg == "" {
		return fallback
	}
	return msg
}
