package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Platform  = donburi.NewTag().SetName("Platform")
	Wall      = donburi.NewTag().SetName("Wall")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Hitbox    = donburi.NewTag().SetName("Hitbox")
	Boomerang = donburi.NewTag().SetName("Boomerang")
	Shot      = donburi.NewTag().SetName("Shot")
	Coin      = donburi.NewTag().SetName("Coin")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
	ResolvBoomerang = "Boomerang"
	ResolvShot      = "Shot"
	ResolvCoin      = "coin"
	ResolvDeadZone  = "deadzone"
)
