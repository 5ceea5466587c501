package ui

import (
	"net/url"
	"strings"

	"github.com/liontech/storefront/internal/logging"
)

// Section identifies one of the mutually exclusive top-level content views.
type Section int

const (
	SectionHome Section = iota
	SectionCatalog
	SectionCart
	SectionOrders
	SectionAccount
	SectionTestimonials
	SectionAbout

	sectionCount
)

// Valid reports whether the section is a member of the fixed set.
func (s Section) Valid() bool {
	return s >= SectionHome && s < sectionCount
}

// Label returns the section's display name.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionCatalog:
		return "Catalog"
	case SectionCart:
		return "Cart"
	case SectionOrders:
		return "Orders"
	case SectionAccount:
		return "Account"
	case SectionTestimonials:
		return "Testimonials"
	case SectionAbout:
		return "About"
	default:
		return "Unknown"
	}
}

// sectionOrder fixes the navigation bar ordering.
var sectionOrder = [...]Section{
	SectionHome,
	SectionCatalog,
	SectionCart,
	SectionOrders,
	SectionAccount,
	SectionTestimonials,
	SectionAbout,
}

// startRouteParams are the query parameters whose presence lands the client
// on the catalog at boot.
var startRouteParams = [...]string{"search", "filter", "page"}

// StartSection inspects the boot route the way the web client inspects its
// location: a product path or any catalog query parameter starts on
// Catalog, everything else on Home. Run exactly once at startup.
func StartSection(route string) Section {
	trimmed := strings.TrimSpace(route)
	if trimmed == "" {
		return SectionHome
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return SectionHome
	}
	if strings.Contains(u.Path, "/product/") {
		return SectionCatalog
	}
	query := u.Query()
	for _, key := range startRouteParams {
		if query.Has(key) {
			return SectionCatalog
		}
	}
	return SectionHome
}

// StartQuery extracts the catalog query carried by the boot route so the
// initial page matches what the route asked for.
func StartQuery(route string) (search, filter string) {
	u, err := url.Parse(strings.TrimSpace(route))
	if err != nil {
		return "", ""
	}
	query := u.Query()
	return query.Get("search"), query.Get("filter")
}

// showSection hides every other section and any open overlay, then makes
// the requested section current. Unknown sections are a logged no-op, and
// repeating the current section leaves the same final state.
func (m *Model) showSection(s Section) {
	if !s.Valid() {
		logging.Printf("sections: ignoring unknown section %d", int(s))
		return
	}
	// Explicit navigation discards the overlay without restoring.
	m.overlay.phase = overlayClosed
	m.previousSection = nil
	m.currentSection = s
	m.scrollBelowHeader()
}

// suspendSections captures the current section and hides all of them while
// the overlay is shown. The capture is read once by resumeSection.
func (m *Model) suspendSections() {
	if m.previousSection == nil {
		prev := m.currentSection
		m.previousSection = &prev
	}
}

// resumeSection restores the section captured when the overlay opened, if
// any, and clears the capture.
func (m *Model) resumeSection() {
	if m.previousSection == nil {
		return
	}
	restored := *m.previousSection
	m.previousSection = nil
	m.currentSection = restored
	m.scrollBelowHeader()
}

// VisibleSections lists the main sections currently visible: exactly one,
// unless the overlay covers them all.
func (m Model) VisibleSections() []Section {
	if m.overlay.phase == overlayShown {
		return nil
	}
	return []Section{m.currentSection}
}

// scrollBelowHeader resets content scroll so the section opens just under
// the fixed header chrome.
func (m *Model) scrollBelowHeader() {
	m.contentScroll = 0
}
