package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxMessageRunes = 200

// ErrResponseTooLarge is the cause when a response body exceeds the read limit.
var ErrResponseTooLarge = errors.New("response body too large")

// RemoteError is a failed call to the remote API: either a transport
// failure (StatusCode 0) or a non-2xx response.
type RemoteError struct {
	Op         string
	StatusCode int
	Message    string // Message from the response body, if any
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: remote unreachable: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: remote returned %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: remote returned %d", e.Op, e.StatusCode)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Transport reports whether the request never got an HTTP response.
func (e *RemoteError) Transport() bool {
	return e.StatusCode == 0
}

// IsStatus reports whether err is a RemoteError with the given status.
func IsStatus(err error, status int) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == status
}

// errorBody covers the error shapes the remote API answers with.
type errorBody struct {
	Mensagem string `json:"mensagem"`
	Erro     string `json:"erro"`
	Error    string `json:"error"`
	Message  string `json:"message"`
}

func newStatusError(op string, status int, body []byte) *RemoteError {
	re := &RemoteError{Op: op, StatusCode: status}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, m := range []string{eb.Mensagem, eb.Erro, eb.Error, eb.Message} {
			if m != "" {
				re.Message = m
				break
			}
		}
	}
	if re.Message == "" {
		re.Message = strings.TrimSpace(string(body))
		re.Message = truncate(re.Message, maxMessageRunes)
	}
	re.Err = errors.New(http.StatusText(status))
	return re
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for count := 0; count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
