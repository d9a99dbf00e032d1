package systems

import (
	"github.com/automoto/ghostclimb/components"
	cfg "github.com/automoto/ghostclimb/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePlayer and UpdateGhost in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveUp] = input.Current[cfg.ActionMoveUp] || up
	input.Current[cfg.ActionMoveDown] = input.Current[cfg.ActionMoveDown] || down
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// actionPressed reads an action from the singleton input, false when there
// is no input yet.
func actionPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Current[id]
}

func actionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return false
	}
	return GetAction(components.Input.Get(entry), id).JustPressed
}

// ActionJustPressed reports whether id went down this frame. Scenes use it
// for their own transitions.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return actionJustPressed(ecs, id)
}
