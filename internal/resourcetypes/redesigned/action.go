package redesigned

import (
	"errors"
	"fmt"
	"strings"
)

// UpdateAction labels an edge of the redesigned graph. It describes the
// edit a user makes to a resource rather than the secret field it touches.
type UpdateAction string

const (
	EditMetadata              UpdateAction = "EDIT_METADATA"
	AddPassword               UpdateAction = "ADD_PASSWORD"
	RemovePassword            UpdateAction = "REMOVE_PASSWORD"
	AddNote                   UpdateAction = "ADD_NOTE"
	RemoveNote                UpdateAction = "REMOVE_NOTE"
	AddTotp                   UpdateAction = "ADD_TOTP"
	RemoveTotp                UpdateAction = "REMOVE_TOTP"
	AddMetadataDescription    UpdateAction = "ADD_METADATA_DESCRIPTION"
	RemoveMetadataDescription UpdateAction = "REMOVE_METADATA_DESCRIPTION"
	RemovePasswordAndNote     UpdateAction = "REMOVE_PASSWORD_AND_NOTE"
)

var ErrUnknownUpdateAction = errors.New("unknown update action")

var updateActions = []UpdateAction{
	EditMetadata,
	AddPassword,
	RemovePassword,
	AddNote,
	RemoveNote,
	AddTotp,
	RemoveTotp,
	AddMetadataDescription,
	RemoveMetadataDescription,
	RemovePasswordAndNote,
}

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
