package gamemath

import "math"

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// HomingVelocity returns velocity components of magnitude speed pointing
// from (fromX, fromY) toward (toX, toY). Zero when the points coincide.
func HomingVelocity(fromX, fromY, toX, toY, speed float64) (velX, velY float64) {
	dirX := toX - fromX
	dirY := toY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// DecayVelocity applies multiplicative friction for the given number of
// frames. Speeds at or below snap are zeroed.
func DecayVelocity(v, factor, snap, frames float64) float64 {
	if math.Abs(v) <= snap {
		return 0
	}
	return v * math.Pow(factor, frames)
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return ClampFloat(speed, -max, max)
}
