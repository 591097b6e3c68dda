// Package leads derives a deduplicated marketing contact list from
// registered customers and booking contact snapshots.
package leads

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/carxpresspanabo/carxpress-rental/internal/store"
)

// Lead is a distinct (name, phone) contact pair.
type Lead struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Service derives leads from the record store.
type Service struct {
	repo *store.Repository
}

// NewService creates a new leads service
func NewService(repo *store.Repository) *Service {
	return &Service{repo: repo}
}

// Leads returns the deduplicated contact list. Registered customers
// are collected first so their spelling wins over the contact snapshot
// frozen onto older bookings.
func (s *Service) Leads() []Lead {
	seen := map[string]bool{}
	out := []Lead{}

	add := func(name, phone string) {
		key := dedupKey(name, phone)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Lead{Name: name, Phone: phone})
	}

	for _, c := range s.repo.Customers() {
		add(c.Name, c.Phone)
	}
	for _, b := range s.repo.Bookings() {
		add(b.CustomerName, b.CustomerPhone)
	}
	return out
}

// WriteCSV writes the lead list as Name,Phone rows.
func (s *Service) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Phone"}); err != nil {
		return err
	}
	for _, lead := range s.Leads() {
		if err := cw.Write([]string{lead.Name, lead.Phone}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// dedupKey normalizes a contact to its phone with whitespace stripped,
// falling back to the lowercase name when the phone is absent.
func dedupKey(name, phone string) string {
	p := strings.Join(strings.Fields(phone), "")
	if p != "" {
		return "p:" + p
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if n != "" {
		return "n:" + n
	}
	return ""
}
