package directory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	apperrors "assignment-workflow-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// StaticIdentity is one entry of the identity file
type StaticIdentity struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Email   string   `yaml:"email"`
	Roles   []string `yaml:"roles"`
	Regions []string `yaml:"regions"` // empty means every region
}

type staticFile struct {
	Identities []StaticIdentity `yaml:"identities"`
}

// StaticDirectory serves identities from a YAML document
type StaticDirectory struct {
	identities []StaticIdentity
	byID       map[string]StaticIdentity
}

// NewStaticDirectory builds a directory from in-memory identities
func NewStaticDirectory(identities []StaticIdentity) *StaticDirectory {
	sorted := make([]StaticIdentity, len(identities))
	copy(sorted, identities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[string]StaticIdentity, len(sorted))
	for _, ident := range sorted {
		byID[ident.ID] = ident
	}
	return &StaticDirectory{identities: sorted, byID: byID}
}

// ParseStaticDirectory decodes the YAML identity document
func ParseStaticDirectory(data []byte) (*StaticDirectory, error) {
	var file staticFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse identity directory: %w", err)
	}
	for i, ident := range file.Identities {
		if ident.ID == "" {
			return nil, fmt.Errorf("identity %d has no id", i)
		}
	}
	return NewStaticDirectory(file.Identities), nil
}

// LoadStaticDirectory reads the YAML identity document from path
func LoadStaticDirectory(path string) (*StaticDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity directory %s: %w", path, err)
	}
	return ParseStaticDirectory(data)
}

// ResolveApprover returns the first identity, by id, holding role in region
func (d *StaticDirectory) ResolveApprover(_ context.Context, role, region string) (*Approver, error) {
	for _, ident := range d.identities {
		if !containsFold(ident.Roles, role) {
			continue
		}
		if region != "" && len(ident.Regions) > 0 && !containsFold(ident.Regions, region) {
			continue
		}
		return &Approver{ID: ident.ID, Name: ident.Name, Email: ident.Email, Role: role, Region: region}, nil
	}
	return nil, apperrors.ErrApproverNotFound
}

// IsAuthorized checks the actor's roles against action
func (d *StaticDirectory) IsAuthorized(_ context.Context, actorID, action string) (bool, error) {
	ident, ok := d.byID[actorID]
	if !ok {
		return false, nil
	}
	return rolesGrant(ident.Roles, action), nil
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
