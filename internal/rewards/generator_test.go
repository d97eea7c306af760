package rewards_test

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/internal/rewards"
)

var rewardCodePattern = regexp.MustCompile(`^(ZUMI|PET|SAVE|LUCKY|BONUS|VIP)(10|15|20|25|30)[A-Z0-9]{4}$`)

func TestGenerator_CodeFormat(t *testing.T) {
	g := rewards.NewGeneratorWithSeed(1)

	for i := 0; i < 100; i++ {
		reward := g.Generate()
		require.Regexp(t, rewardCodePattern, reward.Code)
		assert.Contains(t, domain.RewardDiscounts, reward.Discount)
	}
}

// Скидка в коде совпадает со скидкой в структуре
func TestGenerator_DiscountMatchesCode(t *testing.T) {
	g := rewards.NewGeneratorWithSeed(7)

	for i := 0; i < 100; i++ {
		reward := g.Generate()

		var prefix string
		for _, p := range domain.RewardPrefixes {
			if strings.HasPrefix(reward.Code, p) && len(p) > len(prefix) {
				prefix = p
			}
		}
		require.NotEmpty(t, prefix, "code=%s", reward.Code)

		encoded := strings.TrimPrefix(reward.Code, prefix)
		encoded = encoded[:len(encoded)-4] // отрезаем суффикс
		discount, err := strconv.Atoi(encoded)
		require.NoError(t, err, "code=%s", reward.Code)
		assert.Equal(t, reward.Discount, discount, "code=%s", reward.Code)
	}
}

func TestGenerator_DeterministicWithSeed(t *testing.T) {
	a := rewards.NewGeneratorWithSeed(42)
	b := rewards.NewGeneratorWithSeed(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}
