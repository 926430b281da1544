// Package contenttypes enumerates the resource shapes the client understands.
// A ContentType is identified by its slug, the same string the server uses
// in its resource types table.
package contenttypes

import (
	"errors"
	"fmt"
)

// ContentType is a resource shape, named by its slug.
type ContentType string

const (
	PasswordString          ContentType = "password-string"
	PasswordAndDescription  ContentType = "password-and-description"
	Totp                    ContentType = "totp"
	PasswordDescriptionTotp ContentType = "password-description-totp"
	V5TotpStandalone        ContentType = "v5-totp-standalone"
	V5Default               ContentType = "v5-default"
	V5DefaultWithTotp       ContentType = "v5-default-with-totp"
	V5PasswordString        ContentType = "v5-password-string"
)

// ErrUnsupportedSlug is returned by FromSlug for slugs outside All.
var ErrUnsupportedSlug = errors.New("unsupported content type slug")

// All lists every supported content type, v4 first.
var All = []ContentType{
	PasswordString,
	PasswordAndDescription,
	Totp,
	PasswordDescriptionTotp,
	V5TotpStandalone,
	V5Default,
	V5DefaultWithTotp,
	V5PasswordString,
}

func (c ContentType) Slug() string { return string(c) }

func (c ContentType) String() string { return string(c) }

func (c ContentType) IsSimplePassword() bool {
	return c == PasswordString || c == V5PasswordString
}

func (c ContentType) IsV5() bool {
	_, ok := V5Slugs[c.Slug()]
	return ok
}

func (c ContentType) HasTotp() bool {
	switch c {
	case Totp, PasswordDescriptionTotp, V5TotpStandalone, V5DefaultWithTotp:
		return true
	}
	return false
}

func (c ContentType) HasEncryptedDescription() bool {
	switch c {
	case PasswordAndDescription, PasswordDescriptionTotp, V5Default, V5DefaultWithTotp:
		return true
	}
	return false
}

func (c ContentType) HasPassword() bool {
	switch c {
	case PasswordString, PasswordAndDescription, PasswordDescriptionTotp,
		V5Default, V5DefaultWithTotp, V5PasswordString:
		return true
	}
	return false
}

// FromSlug maps a server slug to its ContentType.
func FromSlug(slug string) (ContentType, error) {
	for _, c := range All {
		if c.Slug() == slug {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSlug, slug)
}

// Slug sets used to filter resources per screen/feature.
var (
	HomeSlugs = slugSet(PasswordString, PasswordAndDescription, PasswordDescriptionTotp,
		V5PasswordString, V5Default, V5DefaultWithTotp)
	TotpSlugs             = slugSet(Totp, PasswordDescriptionTotp, V5TotpStandalone, V5DefaultWithTotp)
	AllSlugs              = slugSet(All...)
	V4Slugs               = slugSet(PasswordString, PasswordAndDescription, PasswordDescriptionTotp, Totp)
	V5Slugs               = slugSet(V5Default, V5PasswordString, V5DefaultWithTotp, V5TotpStandalone)
	SlugsSupportingExpiry = slugSet(PasswordString, PasswordAndDescription, PasswordDescriptionTotp,
		V5PasswordString, V5Default, V5DefaultWithTotp)
)

// ErrUnknownSlugSet is returned by SlugSet for names outside SlugSetNames.
var ErrUnknownSlugSet = errors.New("unknown slug set")

// SlugSetNames lists the names SlugSet accepts.
var SlugSetNames = []string{"all", "home", "totp", "v4", "v5", "expiry"}

// SlugSet returns the slug set registered under name.
func SlugSet(name string) (map[string]struct{}, error) {
	switch name {
	case "all":
		return AllSlugs, nil
	case "home":
		return HomeSlugs, nil
	case "totp":
		return TotpSlugs, nil
	case "v4":
		return V4Slugs, nil
	case "v5":
		return V5Slugs, nil
	case "expiry":
		return SlugsSupportingExpiry, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSlugSet, name)
}

// SupportsExpiry reports whether resources of this type can expire.
func (c ContentType) SupportsExpiry() bool {
	_, ok := SlugsSupportingExpiry[c.Slug()]
	return ok
}

func slugSet(types ...ContentType) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t.Slug()] = struct{}{}
	}
	return set
}
