package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/ghostclimb/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraZoomToLevel(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		zoom          float64
	}{
		{"taller than canvas", 2400, 2300, 600.0 / 2300},
		{"wider than canvas", 4000, 1500, 800.0 / 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := &components.LevelData{Width: tt.width, Height: tt.height}
			camera := &components.CameraData{Zoom: 1, ViewWidth: 800, ViewHeight: 600}

			CameraZoomToLevel(camera, level)

			assert.Nil(t, camera.Target)
			assert.InDelta(t, tt.zoom, camera.Zoom, 1e-12)
			assert.Equal(t, tt.width/2, camera.Position.X)
			assert.Equal(t, tt.height/2, camera.Position.Y)

			// The whole level fits in the view.
			assert.GreaterOrEqual(t, camera.ViewWidth/camera.Zoom, tt.width-1e-9)
			assert.GreaterOrEqual(t, camera.ViewHeight/camera.Zoom, tt.height-1e-9)
		})
	}
}

func TestCameraFollowClampsToLevel(t *testing.T) {
	level := &components.LevelData{Width: 2000, Height: 1500}
	camera := &components.CameraData{Zoom: 1, ViewWidth: 800, ViewHeight: 600}

	tests := []struct {
		name string
		x, y float64 // target's bottom-right point
		want [2]float64
	}{
		{"bottom left corner", 130, 1500, [2]float64{400, 1200}},
		{"top right corner", 1990, 50, [2]float64{1600, 300}},
		{"middle", 1000, 800, [2]float64{1000, 800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			followFrame(camera, level, tt.x, tt.y)
			assert.Equal(t, tt.want[0], camera.Position.X)
			assert.Equal(t, tt.want[1], camera.Position.Y)
		})
	}
}

func TestCameraFitZoom(t *testing.T) {
	camera := &components.CameraData{Zoom: 1, ViewWidth: 800, ViewHeight: 600}

	fitZoom(camera, &components.LevelData{Width: 2000, Height: 1500})
	assert.Equal(t, 1.0, camera.Zoom)

	fitZoom(camera, &components.LevelData{Width: 600, Height: 400})
	assert.Equal(t, 1.5, camera.Zoom)
}

func TestCameraFollowsPlayerInLevel(t *testing.T) {
	e := newTestLevel(t)
	playerEntry, _, _ := mustPlayer(t, e)
	camera := getCamera(e)

	require.Equal(t, playerEntry, camera.Target)
	assert.Equal(t, 1.0, camera.Zoom)
	assert.Equal(t, 400.0, camera.Position.X)
	assert.Equal(t, 1200.0, camera.Position.Y)

	CameraZoomToLevel(camera, getLevel(e))
	step(e)
	assert.Nil(t, camera.Target)
	assert.Equal(t, 1000.0, camera.Position.X)

	CameraFollow(camera, playerEntry)
	step(e)
	assert.Equal(t, 1.0, camera.Zoom)
	assert.Equal(t, 400.0, camera.Position.X)
}

func TestCameraShakeDecays(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	camera := &components.CameraData{Zoom: 1, ViewWidth: 800, ViewHeight: 600}
	ShakeCamera(camera, 8, 500*time.Millisecond)
	assert.Equal(t, 16.0, camera.ShakeDecay)

	shakeFrame(camera, rng, 0.25)
	assert.InDelta(t, 4.0, camera.ShakePower, 1e-9)
	assert.InDelta(t, 0, camera.Position.X, 8)
	assert.InDelta(t, 0, camera.Position.Y, 8)

	shakeFrame(camera, rng, 1)
	assert.Zero(t, camera.ShakePower)

	// No more jitter once the power is spent.
	x, y := camera.Position.X, camera.Position.Y
	shakeFrame(camera, rng, 1)
	assert.Equal(t, x, camera.Position.X)
	assert.Equal(t, y, camera.Position.Y)
}

func TestCameraTransformCentersPosition(t *testing.T) {
	camera := &components.CameraData{Zoom: 2, ViewWidth: 800, ViewHeight: 600}
	camera.Position.X = 1000
	camera.Position.Y = 500

	geoM := CameraTransform(camera)
	x, y := geoM.Apply(1000, 500)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)

	x, y = geoM.Apply(1010, 500)
	assert.Equal(t, 420.0, x)
	assert.Equal(t, 300.0, y)
}
