package rewards

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

const suffixCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const suffixLength = 4

// Reward наградной промокод для следующего бронирования пользователя
type Reward struct {
	Code     string
	Discount int // проценты
}

// Generator генерирует наградные промокоды вида {префикс}{скидка}{суффикс}.
// Криптографическая стойкость здесь не нужна - код является поощрением,
// а не секретом. Уникальность не гарантируется: коллизия с существующим
// купоном крайне маловероятна и не проверяется.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator создает генератор со случайным seed
func NewGenerator() *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorWithSeed создает генератор с фиксированным seed (для тестов)
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Generate выпускает новый наградной промокод
func (g *Generator) Generate() Reward {
	g.mu.Lock()
	defer g.mu.Unlock()

	prefix := domain.RewardPrefixes[g.rnd.Intn(len(domain.RewardPrefixes))]
	discount := domain.RewardDiscounts[g.rnd.Intn(len(domain.RewardDiscounts))]

	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixCharset[g.rnd.Intn(len(suffixCharset))]
	}

	return Reward{
		Code:     prefix + strconv.Itoa(discount) + string(suffix),
		Discount: discount,
	}
}
