package sessionkeys

import "github.com/dmitrijs2005/teamkeeper/internal/common"

// Validator checks decrypted bundles before they are merged.
type Validator struct{}

// NewValidator returns a stateless Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// IsValid reports whether a decrypted bundle can be handed to Merge.
func (v *Validator) IsValid(b BundleDTO) bool {
	if b.ObjectType != common.SessionKeysObjectType {
		return false
	}
	for _, sk := range b.SessionKeys {
		if sk.ForeignModel == "" || sk.ForeignID == "" || sk.SessionKey == "" {
			return false
		}
		if sk.Modified == nil {
			return false
		}
		if _, err := ParseModified(*sk.Modified); err != nil {
			return false
		}
	}
	return true
}
