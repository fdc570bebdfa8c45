package factory

import (
	"image/color"

	"github.com/hollowmoor/duskfang/archetypes"
	"github.com/hollowmoor/duskfang/components"
	cfg "github.com/hollowmoor/duskfang/config"
	"github.com/hollowmoor/duskfang/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const coinSize = 10.0

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := resolv.NewObject(x, y, coinSize, coinSize, tags.ResolvCoin)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})

	components.Coin.SetValue(coin, components.CoinData{Value: cfg.Combat.CoinValue})
	components.Sprite.SetValue(coin, components.SpriteData{
		Color: color.RGBA{R: 255, G: 210, B: 60, A: 255},
	})

	addToSpace(ecs, obj)
	return coin
}
