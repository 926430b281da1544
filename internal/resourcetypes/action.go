package resourcetypes

import (
	"errors"
	"fmt"
	"strings"
)

// UpdateAction labels an edge of the graph.
type UpdateAction string

const (
	EditPassword UpdateAction = "EDIT_PASSWORD"
	AddTotp      UpdateAction = "ADD_TOTP"
	EditTotp     UpdateAction = "EDIT_TOTP"
	RemoveTotp   UpdateAction = "REMOVE_TOTP"
)

var ErrUnknownUpdateAction = errors.New("unknown update action")

var updateActions = []UpdateAction{EditPassword, AddTotp, EditTotp, RemoveTotp}

func (a UpdateAction) String() string { return string(a) }

// ParseUpdateAction accepts the action name in any case, with '-' or '_'.
func ParseUpdateAction(s string) (UpdateAction, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, a := range updateActions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUpdateAction, s)
}
