package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/fogbyte/vbafog/internal/model"
)

func sampleAudit(origin string) m.Audit {
	return m.Audit{
		Origin: m.Path(origin),
		Output: m.Path(origin + "_obf"),
		Renames: []m.RenameRecord{
			{
				Class:   m.IdentMethod,
				OldName: "Foo",
				NewName: "qQxZ",
				Line:    3,
				OldText: "Result = Foo(1)",
				NewText: "Result = qQxZ(1)",
			},
		},
		Mutations: []m.MutationRecord{
			{
				Strategy:    "split",
				Line:        5,
				Original:    `"abcdefghij"`,
				Replacement: `"abcde" & "fghij"`,
			},
		},
	}
}

func TestAuditStore_SaveAndLoad(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewAuditStore()

	require.NoError(t, store.Save(dir, sampleAudit("demo.bas")))

	audits, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, audits, 1)

	assert.Equal(t, sampleAudit("demo.bas"), audits[0])
}

func TestAuditStore_LoadSortsByOrigin(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewAuditStore()

	require.NoError(t, store.Save(dir, sampleAudit("zz.bas")))
	require.NoError(t, store.Save(dir, sampleAudit("aa.bas")))

	audits, err := store.Load(dir)
	require.NoError(t, err)
	require.Len(t, audits, 2)

	assert.Equal(t, m.Path("aa.bas"), audits[0].Origin)
	assert.Equal(t, m.Path("zz.bas"), audits[1].Origin)
}

func TestAuditStore_SaveFlattensOriginPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := NewAuditStore()

	require.NoError(t, store.Save(m.Path(dir), sampleAudit("some/dir/demo.bas")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "some_dir_demo.bas.json", entries[0].Name())
}

func TestAuditStore_LoadMissingDir(t *testing.T) {
	store := NewAuditStore()

	_, err := store.Load(m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestAuditStore_LoadSkipsNonJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	store := NewAuditStore()

	require.NoError(t, store.Save(m.Path(dir), sampleAudit("demo.bas")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	audits, err := store.Load(m.Path(dir))
	require.NoError(t, err)
	assert.Len(t, audits, 1)
}

func TestAuditStore_LoadRejectsMalformedJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644))

	_, err := NewAuditStore().Load(m.Path(dir))
	require.Error(t, err)
}
