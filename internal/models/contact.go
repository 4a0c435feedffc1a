package models

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Contact is a single entry in the contact book. Contacts are immutable once
// created; there is no update path.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ContactInput carries the fields collected by the add-contact form.
type ContactInput struct {
	Name  string
	Email string
	Phone string
}

func NewContact(input ContactInput) Contact {
	return Contact{
		ID:    generateContactID(),
		Name:  strings.TrimSpace(input.Name),
		Email: strings.TrimSpace(input.Email),
		Phone: strings.TrimSpace(input.Phone),
	}
}

// ContactMethod returns the phone number if set, otherwise the email.
func (c Contact) ContactMethod() string {
	if c.Phone != "" {
		return c.Phone
	}
	return c.Email
}

// Initials returns up to two upper-cased leading letters, one per word.
func Initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Split(name, " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		count++
		if count == 2 {
			break
		}
	}
	return b.String()
}

// AvatarColourIndex maps a name onto one of n palette slots. The hash is the
// classic 32-bit "h*31 + c" string hash, so the same name always lands on the
// same slot.
func AvatarColourIndex(name string, n int) int {
	if n <= 0 {
		return 0
	}

	var hash int32
	for _, r := range name {
		hash = int32(r) + ((hash << 5) - hash)
	}

	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

func generateContactID() string {
	return uuid.NewString()
}
