package cmd

import (
	"bytes"
	"errors"
	"testing"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/core/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDumpConfig(t *testing.T) {
	base := memgraph.Config{Source: memgraph.SourceFile, Path: "state.yaml", Object: "dumps/latest.yaml"}

	t.Run("NoFlags", func(t *testing.T) {
		assert.Equal(t, base, dumpConfig(base))
	})

	t.Run("Dump", func(t *testing.T) {
		dumpFlag, objectFlag = "/tmp/a.yaml", ""
		t.Cleanup(func() { dumpFlag = "" })

		cfg := dumpConfig(memgraph.Config{Source: memgraph.SourceBucket, Path: "state.yaml"})
		assert.Equal(t, memgraph.SourceFile, cfg.Source)
		assert.Equal(t, "/tmp/a.yaml", cfg.Path)
	})

	t.Run("Object", func(t *testing.T) {
		dumpFlag, objectFlag = "", "dumps/2026-10-01.yaml"
		t.Cleanup(func() { objectFlag = "" })

		cfg := dumpConfig(base)
		assert.Equal(t, memgraph.SourceBucket, cfg.Source)
		assert.Equal(t, "dumps/2026-10-01.yaml", cfg.Object)
	})
}

func TestReadSnapshot(t *testing.T) {
	img := memgraph.NewImage()
	img.Classes["CollectionManager"] = map[string]any{"s_instance": map[string]any{
		"m_collectibleCards": memgraph.List(memgraph.Object("CollectibleCard", map[string]any{
			"m_EntityDef":                 map[string]any{"m_cardIdInternal": "CS2_001"},
			"<OwnedCount>k__BackingField": 2,
			"m_PremiumType":               0,
		})),
	}}
	img.Caches["NetCacheCardBacks"] = map[string]any{"<CardBacks>k__BackingField": memgraph.Set(0, 4)}

	s, err := session.New(img, zap.NewNop())
	require.NoError(t, err)

	snap, err := readSnapshot(s)
	require.NoError(t, err)
	require.Len(t, snap.Collection, 1)
	assert.Equal(t, 2, snap.Collection[0].Count)
	assert.Equal(t, 2, snap.CollectionSize)
	assert.Len(t, snap.CardBacks, 2)
	assert.Empty(t, snap.HeroSkins)
	assert.Empty(t, snap.Dust)
	require.NotNil(t, snap.Mercenaries)
	assert.Nil(t, snap.Mercenaries.Map)
	assert.Nil(t, snap.PendingTreasure)
}

func TestReadSnapshot_AcquisitionFailure(t *testing.T) {
	img := memgraph.NewImage()
	img.Fail = errors.New("process exited")

	s, err := session.New(img, zap.NewNop())
	require.NoError(t, err)

	snap, err := readSnapshot(s)
	assert.Nil(t, snap)
	assert.ErrorContains(t, err, "process exited")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })

	require.NoError(t, printJSON(map[string]int{"count": 2}))
	assert.JSONEq(t, `{"count": 2}`, buf.String())
}
