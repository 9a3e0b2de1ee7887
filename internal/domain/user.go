package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// UFs lists the Brazilian federative units a user can pick at registration.
var UFs = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG",
	"PA", "PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

const (
	DefaultUF    = "SP"
	DefaultLevel = "1"
)

// IsUF reports whether uf is one of UFs (case-sensitive, as the remote stores it).
func IsUF(uf string) bool {
	for _, u := range UFs {
		if u == uf {
			return true
		}
	}
	return false
}

// Identity holds the user claims carried inside a session token.
type Identity struct {
	UserID FlexInt    `json:"idUser"`
	Name   string     `json:"nome"`
	Email  string     `json:"email"`
	UF     string     `json:"uf"`
	Level  FlexString `json:"level"`
}

// Profile holds the user-editable fields of an account.
type Profile struct {
	ID       int    `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	UF       string `json:"uf"`
	Level    string `json:"level"`
	Password string `json:"password,omitempty"`
}

// FlexInt accepts a JSON number or a numeric JSON string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// accept float-encoded ids such as 7.0
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return err
		}
		n = int(fl)
	}
	*f = FlexInt(n)
	return nil
}

// FlexString accepts a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}
