package djkit

import (
	"fmt"
	"strings"
)

// Obfuscation defaults, matching the historical field behavior.
const (
	DefaultMaskChar   = '*'
	DefaultMaskCutoff = 4
)

// Masker applies content-aware masking.
type Masker interface {
	// Mask applies masking to the value.
	Mask(value string) string
}

// cutoffMasker masks a fixed number of characters at one end.
type cutoffMasker struct {
	char    rune
	cutoff  int
	fromEnd bool
}

// CutoffMasker returns a masker that replaces cutoff characters with
// char, at the end of the value when fromEnd is set, at the start
// otherwise. A cutoff of zero leaves values unchanged; values no longer
// than the cutoff are masked entirely. Negative cutoffs are rejected.
func CutoffMasker(char rune, cutoff int, fromEnd bool) (Masker, error) {
	if cutoff < 0 {
		return nil, fmt.Errorf("cutoff must not be negative, got %d", cutoff)
	}
	return &cutoffMasker{char: char, cutoff: cutoff, fromEnd: fromEnd}, nil
}

func (m *cutoffMasker) Mask(value string) string {
	if m.cutoff == 0 {
		return value
	}

	runes := []rune(value)
	if len(runes) <= m.cutoff {
		return strings.Repeat(string(m.char), len(runes))
	}

	masked := strings.Repeat(string(m.char), m.cutoff)
	if m.fromEnd {
		return string(runes[:len(runes)-m.cutoff]) + masked
	}
	return masked + string(runes[m.cutoff:])
}

// emailMasker masks the local part of an address, keeping the domain:
// alice@example.com -> a****@example.com
type emailMasker struct {
	local Masker
}

// EmailMasker returns a masker for email addresses. The local part is
// cutoff-masked with the defaults, the domain stays visible. Values
// without an @ are masked entirely.
func EmailMasker() Masker {
	local, _ := CutoffMasker(DefaultMaskChar, DefaultMaskCutoff, true)
	return &emailMasker{local: local}
}

func (m *emailMasker) Mask(value string) string {
	atIdx := strings.LastIndex(value, "@")
	if atIdx < 1 {
		return strings.Repeat(string(DefaultMaskChar), len([]rune(value)))
	}
	return m.local.Mask(value[:atIdx]) + value[atIdx:]
}

// ObfuscatedField passes values through on input and masks them on
// output, so sensitive values are stored intact but never leave the
// system in full.
type ObfuscatedField struct {
	masker Masker
}

// NewObfuscatedField creates an obfuscated field using m. A nil masker
// falls back to the default cutoff masker (asterisks over the last four
// characters).
func NewObfuscatedField(m Masker) *ObfuscatedField {
	if m == nil {
		m, _ = CutoffMasker(DefaultMaskChar, DefaultMaskCutoff, true)
	}
	return &ObfuscatedField{masker: m}
}

// Receive returns the inbound value unchanged.
func (f *ObfuscatedField) Receive(value string) string {
	return value
}

// Send returns the masked representation of value.
func (f *ObfuscatedField) Send(value string) string {
	return f.masker.Mask(value)
}
