package cards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	uuidMocks "github.com/KirkDiggler/imaginarium/internal/common/uuid/mocks"
	"github.com/KirkDiggler/imaginarium/internal/models"
)

func TestDefaultSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUUID := uuidMocks.NewMockUUID(ctrl)
	mockUUID.EXPECT().NewShortID().Return("abc123")

	src := NewDefault(&DefaultConfig{UUIDGenerator: mockUUID})
	ctx := context.Background()

	count, err := src.CardCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, Unlimited, count)
	assert.NoError(t, src.Validate(ctx))

	card, err := src.GetRandomCard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/seed/abc123/800/600", card.URL)
	assert.Equal(t, models.MediaTypePhoto, card.Type)
}

func TestDefaultSourceNeverRepeatsLink(t *testing.T) {
	src := NewDefault(nil)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		card, err := src.GetRandomCard(context.Background())
		require.NoError(t, err)
		assert.False(t, seen[card.URL])
		seen[card.URL] = true
	}
}
