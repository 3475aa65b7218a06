// Package tenant resolves tenant identifiers to isolated data partitions.
// Partition provisioning and migration is owned by an external system; this
// core only looks partitions up.
package tenant

import (
	"fmt"
	"regexp"

	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
)

// Directory maps a tenant identifier to its data partition key (the
// per-tenant Postgres schema name, also used to scope Redis keys).
type Directory interface {
	PartitionKey(tenantID string) (string, error)
}

// partitionKeyPattern guards against partition keys that cannot be safely
// interpolated as schema identifiers.
var partitionKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// StaticDirectory resolves tenants from a fixed map loaded at startup.
type StaticDirectory struct {
	partitions map[string]string
}

func NewStaticDirectory(partitions map[string]string) (*StaticDirectory, error) {
	for tenantID, key := range partitions {
		if !partitionKeyPattern.MatchString(key) {
			return nil, fmt.Errorf("invalid partition key %q for tenant %q", key, tenantID)
		}
	}
	return &StaticDirectory{partitions: partitions}, nil
}

func (d *StaticDirectory) PartitionKey(tenantID string) (string, error) {
	key, ok := d.partitions[tenantID]
	if !ok {
		return "", fmt.Errorf("%w: unknown tenant %q", apperrors.ErrNotFound, tenantID)
	}
	return key, nil
}
