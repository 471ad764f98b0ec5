package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/fogbyte/vbafog/internal/model"
)

// AuditStore persists and retrieves rewrite audits so a run's changes can be
// reviewed after the fact.
type AuditStore interface {
	Save(dir m.Path, audit m.Audit) error
	Load(dir m.Path) ([]m.Audit, error)
}

type auditStore struct{}

// NewAuditStore constructs an AuditStore writing one JSON file per rewritten
// input under the audit directory.
func NewAuditStore() AuditStore {
	return &auditStore{}
}

func (as *auditStore) Save(dir m.Path, audit m.Audit) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(audit, "", "  ")
	if err != nil {
		return err
	}

	name := auditFileName(audit.Origin)

	return os.WriteFile(filepath.Join(string(dir), name), data, 0o644)
}

func (as *auditStore) Load(dir m.Path) ([]m.Audit, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read audit dir %s: %w", dir, err)
	}

	var audits []m.Audit

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, err
		}

		var audit m.Audit
		if err := json.Unmarshal(data, &audit); err != nil {
			return nil, fmt.Errorf("parse audit %s: %w", entry.Name(), err)
		}

		audits = append(audits, audit)
	}

	sort.Slice(audits, func(i, j int) bool { return audits[i].Origin < audits[j].Origin })

	return audits, nil
}

// auditFileName flattens the origin path into a single file name so inputs
// from different directories do not collide.
func auditFileName(origin m.Path) string {
	flat := strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(string(origin))
	return flat + ".json"
}
