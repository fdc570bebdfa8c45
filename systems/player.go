package systems

import (
	"math"

	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/events"
	"github.com/hollowmoor/duskfang/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInput is the per-tick action snapshot the controller consumes.
// Decoupling it from the raw Input singleton lets tests drive the
// controller without a keyboard.
type PlayerInput struct {
	Left   components.ActionState
	Right  components.ActionState
	Jump   components.ActionState
	Attack components.ActionState
	Throw  components.ActionState
}

func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	var in PlayerInput
	if inputEntry, ok := components.Input.First(e.World); ok {
		input := components.Input.Get(inputEntry)
		in = PlayerInput{
			Left:   input.Action(cfg.ActionMoveLeft),
			Right:  input.Action(cfg.ActionMoveRight),
			Jump:   input.Action(cfg.ActionJump),
			Attack: input.Action(cfg.ActionAttack),
			Throw:  input.Action(cfg.ActionThrow),
		}
	}

	StepPlayer(e, playerEntry, in, cfg.TickDelta)
}

// StepPlayer advances the player controller by dt seconds.
func StepPlayer(e *ecs.ECS, playerEntry *donburi.Entry, in PlayerInput, dt float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	playerObject := components.Object.Get(playerEntry).Object

	if player.IsDead {
		// Motion freezes during the death sequence; the death system
		// owns the rest.
		physics.SpeedX = gamemath.Approach(physics.SpeedX, 0, cfg.Player.Acceleration*dt)
		return
	}

	state.StateTimer += dt

	grounded := physics.OnGround != nil
	if grounded && !player.WasGrounded {
		TriggerSquash(playerEntry)
	}
	player.WasGrounded = grounded

	tickPlayerClocks(player, physics, in, dt)

	handleJump(e, player, physics, state, in)
	handleAttack(player, physics, state, in)
	handleThrow(e, player, playerObject, in)
	handleMovement(player, physics, state, in, dt)

	updateFlicker(playerEntry, player, dt)
	trackSafeGround(player, physics, playerObject)
}

// tickPlayerClocks advances every player-side timer. The coyote clock is
// refilled while grounded and counts down in the air; the jump buffer is
// refilled on a jump press and counts down otherwise.
func tickPlayerClocks(player *components.PlayerData, physics *components.PhysicsData, in PlayerInput, dt float64) {
	if physics.OnGround != nil {
		player.Coyote.Set(cfg.Player.CoyoteTime)
	} else {
		player.Coyote.Tick(dt)
	}

	if in.Jump.JustPressed {
		player.JumpBuffer.Set(cfg.Player.JumpBufferTime)
	} else {
		player.JumpBuffer.Tick(dt)
	}

	player.AttackTimer.Tick(dt)
	player.InvulnTimer.Tick(dt)
	player.ThrowCooldown.Tick(dt)
}

func handleJump(e *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, in PlayerInput) {
	// A jump fires only when both windows are open: a recent press and
	// recent ground contact. Both are consumed so one press cannot
	// trigger twice.
	if player.Coyote.Active() && player.JumpBuffer.Active() {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
		player.Coyote.Stop()
		player.JumpBuffer.Stop()
		state.Enter(cfg.Jump)
		PlaySFX(e, SoundJump)
		return
	}

	// Releasing jump while still ascending cuts the arc short.
	if in.Jump.JustReleased && physics.SpeedY < 0 {
		physics.SpeedY *= cfg.Player.JumpCutFactor
	}
}

func handleAttack(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, in PlayerInput) {
	if !in.Attack.JustPressed || player.Attacking() {
		return
	}
	player.AttackTimer.Set(cfg.Player.AttackTime)
	player.AttackHit = map[*donburi.Entry]struct{}{}
	physics.SpeedX += cfg.Player.AttackBoost * player.Direction.X
	state.Enter(cfg.StateAttacking)
}

func handleThrow(e *ecs.ECS, player *components.PlayerData, playerObject *resolv.Object, in PlayerInput) {
	if !in.Throw.JustPressed || player.ThrowCooldown.Active() {
		return
	}
	player.ThrowCooldown.Set(cfg.Player.ThrowCooldown)

	cx := playerObject.X + playerObject.W/2
	cy := playerObject.Y + playerObject.H/2
	events.ProjectileThrownEvent.Publish(e.World, events.ProjectileThrown{
		X:           cx + player.Direction.X*playerObject.W/2,
		Y:           cy,
		FacingRight: player.FacingRight(),
	})
}

func handleMovement(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, in PlayerInput, dt float64) {
	target := 0.0
	switch {
	case in.Left.Pressed && !in.Right.Pressed:
		target = -cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionLeft
	case in.Right.Pressed && !in.Left.Pressed:
		target = cfg.Player.MoveSpeed
		player.Direction.X = cfg.DirectionRight
	}

	physics.SpeedX = gamemath.Approach(physics.SpeedX, target, cfg.Player.Acceleration*dt)

	if player.Attacking() {
		return
	}
	if physics.OnGround != nil {
		if math.Abs(physics.SpeedX) > 1 {
			state.Enter(cfg.Running)
		} else {
			state.Enter(cfg.Idle)
		}
	}
}

// updateFlicker toggles visibility while invincibility frames run.
func updateFlicker(playerEntry *donburi.Entry, player *components.PlayerData, dt float64) {
	if !player.Invincible() {
		player.FlickerClock = 0
		player.Visible = true
	} else {
		player.FlickerClock += dt
		player.Visible = int(player.FlickerClock/cfg.Player.FlickerPeriod)%2 == 0
	}
	if playerEntry.HasComponent(components.Sprite) {
		components.Sprite.Get(playerEntry).Hidden = !player.Visible
	}
}

// trackSafeGround remembers the last position where the player stood on a
// solid object, used to respawn out of pits without a full level reset.
func trackSafeGround(player *components.PlayerData, physics *components.PhysicsData, playerObject *resolv.Object) {
	if physics.OnGround == nil {
		return
	}
	player.LastSafeX = playerObject.X
	player.LastSafeY = playerObject.Y
}
