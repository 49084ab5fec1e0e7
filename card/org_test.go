package card

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestOrgThenTitleMerge(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("ORG", "Acme", "R&D"))
	c.AddProperty(prop("TITLE", "Engineer"))

	orgs := c.Organizations()
	be.Equal(t, len(orgs), 1)
	be.Equal(t, deref(orgs[0].Company), "Acme")
	be.Equal(t, deref(orgs[0].Department), "R&D")
	be.Equal(t, deref(orgs[0].Title), "Engineer")
}

func TestTitleThenOrgMerge(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("TITLE", "Engineer"))
	c.AddProperty(prop("ORG", "Acme", "R&D"))

	orgs := c.Organizations()
	be.Equal(t, len(orgs), 1)
	be.Equal(t, deref(orgs[0].Company), "Acme")
	be.Equal(t, deref(orgs[0].Department), "R&D")
	be.Equal(t, deref(orgs[0].Title), "Engineer")
}

func TestMultipleOrganizations(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("ORG", "Acme"))
	c.AddProperty(prop("TITLE", "Engineer"))
	c.AddProperty(prop("ORG", "Globex"))
	c.AddProperty(prop("TITLE", "Advisor"))

	orgs := c.Organizations()
	be.Equal(t, len(orgs), 2)
	be.Equal(t, deref(orgs[0].Company), "Acme")
	be.Equal(t, deref(orgs[0].Title), "Engineer")
	be.Equal(t, deref(orgs[1].Company), "Globex")
	be.Equal(t, deref(orgs[1].Title), "Advisor")
}

func TestEmptyCompanyIsNotOpen(t *testing.T) {
	// An ORG with no segments still fills the entry with an empty company,
	// so a second ORG must append rather than overwrite.
	c := New(Config{})
	c.applyOrganization(OrganizationWork, nil, false)
	c.applyOrganization(OrganizationWork, []string{"Acme"}, false)

	orgs := c.Organizations()
	be.Equal(t, len(orgs), 2)
	be.Equal(t, deref(orgs[0].Company), "")
	be.Equal(t, deref(orgs[1].Company), "Acme")
}

func TestDepartmentJoinsTrailingSegments(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("ORG", "Acme", "R&D", "Platform"))
	orgs := c.Organizations()
	be.Equal(t, deref(orgs[0].Department), "R&D Platform")
}

func TestOrgPrefSetsPrimary(t *testing.T) {
	c := New(Config{})
	c.AddProperty(prop("TITLE", "Engineer"))
	c.AddProperty(typedProp("ORG", []string{"PREF"}, "Acme"))
	orgs := c.Organizations()
	be.Equal(t, len(orgs), 1)
	be.True(t, orgs[0].Primary)
}
