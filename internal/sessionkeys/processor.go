package sessionkeys

import "strings"

// AES256Tag prefixes session keys on the wire.
const AES256Tag = "9"

// Processor converts session keys between the wire form "9:<MATERIAL>"
// and the bare runtime form.
type Processor struct{}

// NewProcessor returns a stateless Processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// PostFetch strips the algorithm tag, up to and including the first colon,
// from every session key. Untagged keys are left unchanged. Case is kept.
func (p *Processor) PostFetch(b BundleDTO) BundleDTO {
	return mapKeys(b, func(key string) string {
		if _, material, ok := strings.Cut(key, ":"); ok {
			return material
		}
		return key
	})
}

// PrePush tags every session key with AES256Tag, unless already tagged,
// and uppercases the result.
func (p *Processor) PrePush(b BundleDTO) BundleDTO {
	prefix := AES256Tag + ":"
	return mapKeys(b, func(key string) string {
		if !strings.HasPrefix(key, prefix) {
			key = prefix + key
		}
		return strings.ToUpper(key)
	})
}

func mapKeys(b BundleDTO, f func(string) string) BundleDTO {
	if b.SessionKeys == nil {
		return b
	}
	keys := make([]SessionKeyDTO, len(b.SessionKeys))
	for i, sk := range b.SessionKeys {
		sk.SessionKey = f(sk.SessionKey)
		keys[i] = sk
	}
	b.SessionKeys = keys
	return b
}
