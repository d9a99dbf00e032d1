package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the level's shared pseudo-random source.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
