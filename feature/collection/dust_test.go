package collection

import (
	"errors"
	"testing"

	"hearth-mirror/core/graph/memgraph"
	"hearth-mirror/feature/collection/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardDefinition(cardID string, premium int) map[string]any {
	return memgraph.Object("CardDefinition", map[string]any{fieldKeyName: cardID, fieldKeyPremium: premium})
}

func cardValue(buy, sell int, overrides map[string]any) map[string]any {
	fields := map[string]any{fieldBaseBuyValue: buy, fieldBaseSellValue: sell}
	for k, v := range overrides {
		fields[k] = v
	}
	return memgraph.Object("CardValue", fields)
}

func TestReadDustInfo(t *testing.T) {
	img := memgraph.NewImage()
	img.Caches[cacheCardValues] = map[string]any{fieldValues: memgraph.Dictionary(
		memgraph.Entry{Key: cardDefinition("EX1_001", 0), Value: cardValue(40, 5, nil)},
		memgraph.Entry{Key: cardDefinition("EX1_001", 1), Value: cardValue(400, 50, map[string]any{
			fieldBuyValueOverride:  100,
			fieldSellValueOverride: 100,
		})},
		memgraph.Entry{Key: cardDefinition("", 0), Value: cardValue(1, 1, nil)},
		memgraph.Entry{Key: cardDefinition("EX1_002", 0), Value: nil},
	)}

	cards, err := newService(t, img).ReadDustInfo()
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, models.DustInfoCard{CardID: "EX1_001", Premium: 0, BuyValue: 40, SellValue: 5}, cards[0])

	golden := cards[1]
	assert.Equal(t, "EX1_001", golden.CardID)
	assert.Equal(t, 1, golden.Premium)
	assert.Equal(t, 400, golden.BuyValue)
	assert.Equal(t, 50, golden.SellValue)
	require.NotNil(t, golden.BuyValueOverride)
	require.NotNil(t, golden.SellValueOverride)
	assert.Equal(t, 100, *golden.BuyValueOverride)
	assert.Equal(t, 100, *golden.SellValueOverride)
}

func TestReadDustInfo_Absent(t *testing.T) {
	cards, err := newService(t, memgraph.NewImage()).ReadDustInfo()
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestReadDustInfo_AcquisitionFailure(t *testing.T) {
	img := memgraph.NewImage()
	img.Fail = errors.New("handle closed")

	cards, err := newService(t, img).ReadDustInfo()
	assert.Nil(t, cards)
	assert.ErrorContains(t, err, "read dust info")
	assert.ErrorContains(t, err, "handle closed")
}
