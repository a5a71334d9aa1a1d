package directory

import (
	"context"
	"crypto/tls"
	"fmt"
	"sort"
	"strings"
	"time"

	"assignment-workflow-backend/internal/config"
	apperrors "assignment-workflow-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// groupPrefix is prepended to a role to form the LDAP group CN
const groupPrefix = "assignment-"

// ldapClient is the subset of *ldap.Conn we use
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
	SetTimeout(d time.Duration)
}

var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// LDAPDirectory resolves approvers through LDAP group membership.
// Role R maps to group CN=assignment-R under the group base DN; the
// region of a user is read from the "l" attribute.
type LDAPDirectory struct {
	cfg *config.Config
}

// NewLDAPDirectory creates an LDAP backed identity directory
func NewLDAPDirectory(cfg *config.Config) *LDAPDirectory {
	return &LDAPDirectory{cfg: cfg}
}

func (d *LDAPDirectory) connect() (ldapClient, error) {
	addr := d.cfg.LDAPHost + ":" + d.cfg.LDAPPort

	l, err := dialLDAP("tcp", addr, &tls.Config{InsecureSkipVerify: d.cfg.LDAPInsecureSkipVerify})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ldap: %w", err)
	}
	if d.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(d.cfg.LDAPTimeoutSec) * time.Second)
	}
	if err := l.Bind(d.cfg.LDAPBindDN, d.cfg.LDAPBindPW); err != nil {
		l.Close()
		return nil, fmt.Errorf("failed to bind to ldap: %w", err)
	}
	return l, nil
}

func (d *LDAPDirectory) groupDN(role string) string {
	return "CN=" + groupPrefix + strings.ToLower(role) + "," + d.cfg.LDAPGroupBaseDN
}

func (d *LDAPDirectory) search(l ldapClient, filter string, attrs []string) ([]*ldap.Entry, error) {
	req := ldap.NewSearchRequest(
		d.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		d.cfg.LDAPTimeoutSec,
		false,
		filter,
		attrs,
		nil,
	)
	res, err := l.Search(req)
	if err != nil {
		return nil, fmt.Errorf("ldap search failed: %w", err)
	}
	return res.Entries, nil
}

// ResolveApprover returns the member of the role group with the lowest account name
func (d *LDAPDirectory) ResolveApprover(ctx context.Context, role, region string) (*Approver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, err := d.connect()
	if err != nil {
		return nil, err
	}
	defer l.Close()

	filter := "(&(objectClass=person)(memberOf=" + ldap.EscapeFilter(d.groupDN(role)) + ")"
	if region != "" {
		filter += "(l=" + ldap.EscapeFilter(region) + ")"
	}
	filter += ")"

	entries, err := d.search(l, filter, []string{"sAMAccountName", "displayName", "mail", "l"})
	if err != nil {
		return nil, err
	}

	candidates := make([]Approver, 0, len(entries))
	for _, e := range entries {
		id := e.GetAttributeValue("sAMAccountName")
		if id == "" {
			continue
		}
		candidates = append(candidates, Approver{
			ID:     id,
			Name:   e.GetAttributeValue("displayName"),
			Email:  e.GetAttributeValue("mail"),
			Role:   role,
			Region: e.GetAttributeValue("l"),
		})
	}
	if len(candidates) == 0 {
		return nil, apperrors.ErrApproverNotFound
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return &candidates[0], nil
}

// IsAuthorized derives the actor's roles from its group memberships
func (d *LDAPDirectory) IsAuthorized(ctx context.Context, actorID, action string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l, err := d.connect()
	if err != nil {
		return false, err
	}
	defer l.Close()

	filter := "(&(objectClass=person)(sAMAccountName=" + ldap.EscapeFilter(actorID) + "))"
	entries, err := d.search(l, filter, []string{"memberOf"})
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}

	return rolesGrant(rolesFromGroups(entries[0].GetAttributeValues("memberOf")), action), nil
}

// rolesFromGroups extracts role names from CN=assignment-<role>,... group DNs
func rolesFromGroups(groups []string) []string {
	roles := make([]string, 0, len(groups))
	for _, g := range groups {
		dn, err := ldap.ParseDN(g)
		if err != nil || len(dn.RDNs) == 0 {
			continue
		}
		for _, attr := range dn.RDNs[0].Attributes {
			if strings.EqualFold(attr.Type, "CN") && strings.HasPrefix(strings.ToLower(attr.Value), groupPrefix) {
				roles = append(roles, strings.TrimPrefix(strings.ToLower(attr.Value), groupPrefix))
			}
		}
	}
	return roles
}
