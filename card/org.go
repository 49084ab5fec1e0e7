package card

import "strings"

// applyOrganization reconciles one ORG value into the organization list.
//
// ORG and TITLE may arrive in either order and the source format carries no
// linkage key between them, so the rule is: fill the first entry whose
// company and department are both still nil (typically created by an earlier
// TITLE), otherwise append a new entry with a nil title for a later TITLE to
// claim.
func (c *Contact) applyOrganization(category OrganizationCategory, values []string, primary bool) {
	var company string
	var department *string
	switch len(values) {
	case 0:
		company = ""
	case 1:
		company = values[0]
	default:
		company = values[0]
		// No way to tell which trailing element is the department; keep
		// them all, joined.
		department = strptr(strings.Join(values[1:], " "))
	}

	for i := range c.organizations {
		entry := &c.organizations[i]
		// Empty strings count as filled; only nil marks an open entry.
		if entry.open() {
			entry.Company = strptr(company)
			entry.Department = department
			entry.Primary = primary
			return
		}
	}
	c.organizations = append(c.organizations, OrganizationEntry{
		Category:   category,
		Company:    strptr(company),
		Department: department,
		Primary:    primary,
	})
}

// applyTitle reconciles one TITLE value into the organization list: fill the
// first entry whose title is still nil, otherwise append a new work entry
// with nil company/department for a later ORG to claim.
func (c *Contact) applyTitle(title string) {
	for i := range c.organizations {
		entry := &c.organizations[i]
		if entry.Title == nil {
			entry.Title = strptr(title)
			return
		}
	}
	c.organizations = append(c.organizations, OrganizationEntry{
		Category: OrganizationWork,
		Title:    strptr(title),
	})
}
