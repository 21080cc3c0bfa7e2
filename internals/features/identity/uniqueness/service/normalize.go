// file: internals/features/identity/uniqueness/service/normalize.go
package service

import "strings"

type Kind string

const (
	KindPhone Kind = "phone"
	KindEmail Kind = "email"
)

// Normalize menyamakan bentuk nilai identitas sebelum dicek/disimpan:
// - phone: buang semua karakter non-digit ("+62 812-3456" → "628123456")
// - email: trim + lowercase
// Hasil kosong berarti tidak ada yang perlu dicek (bukan error).
func Normalize(kind Kind, raw string) string {
	switch kind {
	case KindPhone:
		var b strings.Builder
		b.Grow(len(raw))
		for _, r := range raw {
			if r >= '0' && r <= '9' {
				b.WriteRune(r)
			}
		}
		return b.String()
	case KindEmail:
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return ""
}
