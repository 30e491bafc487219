package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/resiliency/internal/catalog"
	"github.com/rpggio/resiliency/internal/domain/technology"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	records, err := catalog.Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, records)

	store, err := technology.NewStore(records)
	require.NoError(t, err)
	require.Equal(t, len(records), store.Len())

	for _, rec := range records {
		require.NotNil(t, rec.TechNeeds, rec.ID)
	}
}

func TestLoad_EmptyPathUsesEmbedded(t *testing.T) {
	embedded, err := catalog.Embedded()
	require.NoError(t, err)
	loaded, err := catalog.Load("")
	require.NoError(t, err)
	require.Equal(t, embedded, loaded)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"id":"x1","technology":"Solar","installation":"Fort A","vendor":"Sunny","status":"Planning","cost":500,"gapLevel":"Low","resiliencyImpact":2}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	store, err := catalog.Open(path)
	require.NoError(t, err)
	rec, err := store.Get("x1")
	require.NoError(t, err)
	require.Equal(t, "Fort A", rec.Installation)
	require.Empty(t, rec.TechNeeds)
}

func TestDecode_ImpactScale(t *testing.T) {
	data := `[
		{"id":"a","technology":"A","installation":"B","resiliencyImpact":12,"existingResiliencyScore":60},
		{"id":"b","technology":"C","installation":"B","resiliencyImpact":15}
	]`
	records, err := catalog.Decode([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, 12.0, records[0].ResiliencyImpact)
	require.Equal(t, float64(catalog.MaxImpact), records[1].ResiliencyImpact)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{`,
		"missing id":    `[{"technology":"A","installation":"B"}]`,
		"no technology": `[{"id":"a","installation":"B"}]`,
		"no install":    `[{"id":"a","technology":"A"}]`,
		"negative cost": `[{"id":"a","technology":"A","installation":"B","cost":-1}]`,
		"impact range":  `[{"id":"a","technology":"A","installation":"B","resiliencyImpact":16}]`,
		"score range":   `[{"id":"a","technology":"A","installation":"B","existingResiliencyScore":120}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Decode([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestOpen_DuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.json")
	data := `[{"id":"a","technology":"A","installation":"B"},{"id":"a","technology":"C","installation":"D"}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := catalog.Open(path)
	require.ErrorIs(t, err, technology.ErrDuplicateID)
}
