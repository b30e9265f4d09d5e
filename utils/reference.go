package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var mu sync.Mutex
var seededRand *rand.Rand

func init() {
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateReference returns a short human-readable reference code for
// investment records and journal entries.
func GenerateReference() string {
	mu.Lock()
	defer mu.Unlock()

	nowNano := time.Now().UnixNano()
	nanoPart := nowNano % 1000000

	randPart := seededRand.Intn(900) + 100

	return fmt.Sprintf("EST-%06d%03d", nanoPart, randPart)
}
